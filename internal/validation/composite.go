package validation

import "errors"

// Composite holds an ordered list of rules. Order is significant: for a given
// field the first registered failing rule decides the reported reason.
// A Composite is immutable after construction and safe for concurrent use.
type Composite struct {
	rules []Rule
}

// NewComposite builds a composite from rules in the given order.
func NewComposite(rules ...Rule) *Composite {
	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return &Composite{rules: owned}
}

// Validate returns the reason of the first rule targeting fieldName that
// fails on form, or "" when every such rule passes. A field with no rules is
// valid. Panics raised by a rule are not recovered.
func (c *Composite) Validate(fieldName string, form FormData) string {
	for _, rule := range c.rules {
		if rule.Field() != fieldName {
			continue
		}
		if err := rule.Validate(form); err != nil {
			return reasonOf(err)
		}
	}
	return ""
}

// Fields returns the distinct field names covered by the composite, in the
// order they were first registered.
func (c *Composite) Fields() []string {
	seen := make(map[string]struct{}, len(c.rules))
	fields := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		if _, ok := seen[rule.Field()]; ok {
			continue
		}
		seen[rule.Field()] = struct{}{}
		fields = append(fields, rule.Field())
	}
	return fields
}

// Errors validates every covered field and returns the failing ones.
// The result is nil when the whole form is valid.
func (c *Composite) Errors(form FormData) map[string]string {
	var out map[string]string
	for _, field := range c.Fields() {
		reason := c.Validate(field, form)
		if reason == "" {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[field] = reason
	}
	return out
}

// Len returns the number of rules owned by the composite.
func (c *Composite) Len() int {
	return len(c.rules)
}

func reasonOf(err error) string {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr.Reason
	}
	return err.Error()
}
