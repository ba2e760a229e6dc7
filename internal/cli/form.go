package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/authforms/internal/models"
	"github.com/dmitrijs2005/authforms/internal/validation"
)

type field struct {
	name   string
	label  string
	secret bool
}

// form is a form payload being filled in by the user.
type form interface {
	fields() []field
	set(name, value string)
	// validate checks one field against the current payload.
	validate(name string) string
}

type loginForm struct {
	data *models.LoginFormData
}

func (f *loginForm) fields() []field {
	return []field{
		{name: validation.FieldUsername, label: "Username"},
		{name: validation.FieldPassword, label: "Password", secret: true},
	}
}

func (f *loginForm) set(name, value string) {
	switch name {
	case validation.FieldUsername:
		f.data.Username = value
	case validation.FieldPassword:
		f.data.Password = value
	}
}

func (f *loginForm) validate(name string) string {
	return validation.ValidateLoginField(name, *f.data)
}

type signUpForm struct {
	data *models.SignUpFormData
}

func (f *signUpForm) fields() []field {
	return []field{
		{name: validation.FieldName, label: "Full Name"},
		{name: validation.FieldUsername, label: "Username"},
		{name: validation.FieldEmail, label: "Email"},
		{name: validation.FieldPhone, label: "Phone Number"},
		{name: validation.FieldPassword, label: "Password", secret: true},
		{name: validation.FieldConfirmPassword, label: "Confirm Password", secret: true},
	}
}

func (f *signUpForm) set(name, value string) {
	switch name {
	case validation.FieldName:
		f.data.Name = value
	case validation.FieldUsername:
		f.data.Username = value
	case validation.FieldEmail:
		f.data.Email = value
	case validation.FieldPhone:
		f.data.Phone = value
	case validation.FieldPassword:
		f.data.Password = value
	case validation.FieldConfirmPassword:
		f.data.ConfirmPassword = value
	}
}

func (f *signUpForm) validate(name string) string {
	return validation.ValidateSignUpField(name, *f.data)
}

// fill prompts for the fields of f. With errs == nil every field is read;
// otherwise only the fields present in errs are re-read, each shown with its
// message, and re-validated as soon as it is entered.
func (a *App) fill(ctx context.Context, f form, errs validation.FormErrors) error {
	for _, fld := range f.fields() {
		msg := ""
		if errs != nil {
			var ok bool
			if msg, ok = errs[fld.name]; !ok {
				continue
			}
		}

		value, err := a.readField(ctx, f, fld, msg)
		if err != nil {
			return err
		}
		f.set(fld.name, value)

		if errs != nil {
			if msg := f.validate(fld.name); msg != "" {
				a.printFieldError(msg)
			}
		}
	}
	return nil
}

// readField prints the field's current error, if any, and reads the value
// under its upper-cased label. Secret fields are hidden unless password visibility is on.
func (a *App) readField(ctx context.Context, f form, fld field, msg string) (string, error) {
	label := strings.ToUpper(fld.label)
	if msg != "" {
		a.printFieldError(msg)
	}

	validate := func(v string) string {
		f.set(fld.name, v)
		return f.validate(fld.name)
	}

	if fld.secret && !a.showPasswords {
		return a.prompter.Password(ctx, label, validate)
	}
	return a.prompter.Text(ctx, label, validate)
}

func (a *App) printFieldError(msg string) {
	a.printf("  ! %s\n", msg)
}
