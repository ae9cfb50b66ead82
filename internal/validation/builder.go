package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// Builder accumulates rules for one field, in call order.
//
//	rules := validation.Field("email").Required().Email().Build()
type Builder struct {
	field string
	rules []Rule
}

// Field starts a builder for the named field.
func Field(name string) *Builder {
	return &Builder{field: name}
}

// Required appends a Required rule.
func (b *Builder) Required() *Builder {
	b.rules = append(b.rules, Required(b.field))
	return b
}

// Min appends a MinLength rule.
func (b *Builder) Min(n int) *Builder {
	b.rules = append(b.rules, MinLength(b.field, n))
	return b
}

// Email appends an Email rule.
func (b *Builder) Email() *Builder {
	b.rules = append(b.rules, Email(b.field))
	return b
}

// SameAs appends a CompareFields rule against other.
func (b *Builder) SameAs(other string) *Builder {
	b.rules = append(b.rules, CompareFields(b.field, other))
	return b
}

// Tag appends the rule named by a form tag: "required", "email", "min=5"
// or "compare=password". Names are case-insensitive.
func (b *Builder) Tag(tag string) error {
	name, arg, _ := strings.Cut(strings.TrimSpace(tag), "=")
	name = strings.ToLower(strings.TrimSpace(name))
	arg = strings.TrimSpace(arg)

	switch name {
	case "required":
		b.Required()
	case "email":
		b.Email()
	case "min":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 {
			return fmt.Errorf("field %q: invalid min length %q", b.field, arg)
		}
		b.Min(n)
	case "compare":
		if arg == "" {
			return fmt.Errorf("field %q: compare needs a field name", b.field)
		}
		b.SameAs(arg)
	default:
		return fmt.Errorf("field %q: unknown rule %q", b.field, tag)
	}
	return nil
}

// Build returns the accumulated rules.
func (b *Builder) Build() []Rule {
	out := make([]Rule, len(b.rules))
	copy(out, b.rules)
	return out
}
