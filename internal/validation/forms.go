package validation

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FieldSpec declares the rules of one field. Rules use a tag-like syntax:
// "required", "email", "min=5", "compare=password".
type FieldSpec struct {
	Name  string   `yaml:"name"`
	Rules []string `yaml:"rules"`
}

// FormSpec declares the fields of one form, in evaluation order.
type FormSpec struct {
	Fields []FieldSpec `yaml:"fields"`
}

type formsDocument struct {
	Forms map[string]FormSpec `yaml:"forms"`
}

// LoadForms parses a YAML document of named forms and builds one composite
// per form. Rule order within a field and field order within a form are kept.
func LoadForms(raw []byte) (map[string]*Composite, error) {
	var doc formsDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("validation: parse forms: %w", err)
	}
	if len(doc.Forms) == 0 {
		return nil, fmt.Errorf("validation: no forms declared")
	}

	out := make(map[string]*Composite, len(doc.Forms))
	for name, spec := range doc.Forms {
		composite, err := spec.Composite()
		if err != nil {
			return nil, fmt.Errorf("validation: form %q: %w", name, err)
		}
		out[name] = composite
	}
	return out, nil
}

// Composite builds the composite declared by the form.
func (s FormSpec) Composite() (*Composite, error) {
	var rules []Rule
	for _, field := range s.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return nil, fmt.Errorf("field without name")
		}
		b := Field(name)
		for _, tag := range field.Rules {
			if err := b.Tag(tag); err != nil {
				return nil, err
			}
		}
		rules = append(rules, b.Build()...)
	}
	return NewComposite(rules...), nil
}

// ParseRule builds a rule for field from a single rule tag.
func ParseRule(field, tag string) (Rule, error) {
	b := Field(field)
	if err := b.Tag(tag); err != nil {
		return nil, err
	}
	return b.rules[0], nil
}
