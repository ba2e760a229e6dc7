package validation

import (
	"sort"

	"github.com/dmitrijs2005/authforms/internal/models"
)

// Field names used as FormErrors keys.
const (
	FieldName            = "name"
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// LoginFields lists the login form fields in display order.
var LoginFields = []string{FieldUsername, FieldPassword}

// SignUpFields lists the sign-up form fields in display order.
var SignUpFields = []string{
	FieldName,
	FieldUsername,
	FieldEmail,
	FieldPhone,
	FieldPassword,
	FieldConfirmPassword,
}

// FormErrors maps a field name to its error message. Only failing fields are
// present.
type FormErrors map[string]string

// Fields returns the failing field names in sorted order.
func (e FormErrors) Fields() []string {
	out := make([]string, 0, len(e))
	for k := range e {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// set records msg for field unless msg is empty.
func (e FormErrors) set(field, msg string) {
	if msg != "" {
		e[field] = msg
	}
}

// HasFormErrors reports whether any field failed.
func HasFormErrors(errs FormErrors) bool {
	return len(errs) > 0
}

// ValidateLoginForm validates a login submission. The password is only
// required here; strength rules apply at sign-up.
func ValidateLoginForm(data models.LoginFormData) FormErrors {
	errs := FormErrors{}
	for _, f := range LoginFields {
		errs.set(f, ValidateLoginField(f, data))
	}
	return errs
}

// ValidateSignUpForm validates all six sign-up fields, passing the username
// to the password rule and the password to the confirmation rule.
func ValidateSignUpForm(data models.SignUpFormData) FormErrors {
	errs := FormErrors{}
	for _, f := range SignUpFields {
		errs.set(f, ValidateSignUpField(f, data))
	}
	return errs
}

// ValidateLoginField validates one login field. Unknown fields are valid.
func ValidateLoginField(field string, data models.LoginFormData) string {
	switch field {
	case FieldUsername:
		return ValidateUsername(data.Username)
	case FieldPassword:
		if data.Password == "" {
			return MsgPasswordRequired
		}
	}
	return ""
}

// ValidateSignUpField validates one sign-up field together with the fields it
// depends on. Unknown fields are valid.
func ValidateSignUpField(field string, data models.SignUpFormData) string {
	switch field {
	case FieldName:
		return ValidateName(data.Name)
	case FieldUsername:
		return ValidateUsername(data.Username)
	case FieldEmail:
		return ValidateEmail(data.Email)
	case FieldPhone:
		return ValidatePhone(data.Phone)
	case FieldPassword:
		return ValidatePassword(data.Password, data.Username)
	case FieldConfirmPassword:
		return ValidateConfirmPassword(data.ConfirmPassword, data.Password)
	}
	return ""
}
