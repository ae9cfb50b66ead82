package cli

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrInterrupted is returned when the user aborts a prompt.
var ErrInterrupted = errors.New("prompt interrupted")

// PromptConfig configures one text prompt.
type PromptConfig struct {
	Message  string
	Secret   bool
	Validate func(string) error
}

// Prompter asks the user for field values. Tests swap in a scripted one.
type Prompter interface {
	Ask(ctx context.Context, cfg PromptConfig) (string, error)
}

type surveyPrompter struct{}

// NewSurveyPrompter returns a Prompter backed by interactive terminal prompts.
func NewSurveyPrompter() Prompter {
	return surveyPrompter{}
}

func (surveyPrompter) Ask(ctx context.Context, cfg PromptConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var prompt survey.Prompt = &survey.Input{Message: cfg.Message}
	if cfg.Secret {
		prompt = &survey.Password{Message: cfg.Message}
	}

	var opts []survey.AskOpt
	if cfg.Validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			value, _ := ans.(string)
			return cfg.Validate(value)
		}))
	}

	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrInterrupted
		}
		return "", err
	}
	return out, nil
}
