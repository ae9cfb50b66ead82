package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"survey_client/internal/validation"
)

// formField describes how one form field is collected.
type formField struct {
	Name    string
	Message string
	Secret  bool
	// Preset is the value given on the command line, if any.
	Preset string
}

// collectForm fills every field in order. Preset values are used as given;
// the rest are prompted, re-asking until the composite accepts the value.
// The whole form is validated once more at the end so preset values get the
// same checks as prompted ones.
func collectForm(ctx context.Context, p Prompter, composite *validation.Composite, fields []formField) (validation.FormData, error) {
	form := make(validation.FormData, len(fields))

	for _, field := range fields {
		if field.Preset != "" {
			form[field.Name] = field.Preset
			continue
		}

		name := field.Name
		value, err := p.Ask(ctx, PromptConfig{
			Message: field.Message,
			Secret:  field.Secret,
			Validate: func(value string) error {
				form[name] = value
				if reason := composite.Validate(name, form); reason != "" {
					return errors.New(reason)
				}
				return nil
			},
		})
		if err != nil {
			return nil, err
		}
		form[name] = value
	}

	if errs := composite.Errors(form); errs != nil {
		return nil, &FormError{Fields: errs}
	}
	return form, nil
}

// FormError lists the fields that failed validation with their reasons.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid form (" + strings.Join(parts, "; ") + ")"
}
