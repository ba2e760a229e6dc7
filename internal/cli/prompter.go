package cli

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/dmitrijs2005/authforms/internal/common"
)

// Validator checks a single field value and returns its error message, or ""
// when the value is valid.
type Validator func(value string) string

// Prompter reads one field value from the user.
//
// validate may be nil. Prompters that can validate while the user types
// attach it to the prompt; others ignore it and leave reporting to the form.
type Prompter interface {
	Text(ctx context.Context, label string, validate Validator) (string, error)
	Password(ctx context.Context, label string, validate Validator) (string, error)
}

// surveyPrompter reads fields with survey prompts, which re-ask until the
// attached validator accepts the value.
type surveyPrompter struct {
	opts []survey.AskOpt
}

func newSurveyPrompter(opts ...survey.AskOpt) *surveyPrompter {
	return &surveyPrompter{opts: opts}
}

func (p *surveyPrompter) Text(ctx context.Context, label string, validate Validator) (string, error) {
	return p.ask(ctx, &survey.Input{Message: label}, validate)
}

func (p *surveyPrompter) Password(ctx context.Context, label string, validate Validator) (string, error) {
	return p.ask(ctx, &survey.Password{Message: label}, validate)
}

func (p *surveyPrompter) ask(ctx context.Context, prompt survey.Prompt, validate Validator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	opts := append([]survey.AskOpt(nil), p.opts...)
	if validate != nil {
		opts = append(opts, survey.WithValidator(surveyValidator(validate)))
	}
	var out string
	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// surveyValidator adapts a field Validator to survey's answer validator.
func surveyValidator(validate Validator) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		if msg := validate(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return common.ErrAborted
	}
	return err
}
