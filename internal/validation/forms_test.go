package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authforms/internal/models"
)

func validSignUp() models.SignUpFormData {
	return models.SignUpFormData{
		Name:            "Jane Doe",
		Username:        "jane_doe",
		Email:           "jane@example.com",
		Phone:           "+14155550123",
		Password:        "Str0ngPass!",
		ConfirmPassword: "Str0ngPass!",
	}
}

func TestValidateLoginForm(t *testing.T) {
	tests := []struct {
		name string
		data models.LoginFormData
		want FormErrors
	}{
		{
			name: "both empty",
			data: models.LoginFormData{},
			want: FormErrors{FieldUsername: MsgUsernameRequired, FieldPassword: MsgPasswordRequired},
		},
		{
			name: "weak password is accepted at login",
			data: models.LoginFormData{Username: "alice", Password: "x"},
			want: FormErrors{},
		},
		{
			name: "short username only",
			data: models.LoginFormData{Username: "al", Password: "whatever"},
			want: FormErrors{FieldUsername: MsgUsernameTooShort},
		},
		{
			name: "missing password only",
			data: models.LoginFormData{Username: "alice"},
			want: FormErrors{FieldPassword: MsgPasswordRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLoginForm(tt.data)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want) > 0, HasFormErrors(got))
		})
	}
}

func TestValidateSignUpForm_Valid(t *testing.T) {
	errs := ValidateSignUpForm(validSignUp())

	assert.Empty(t, errs)
	assert.False(t, HasFormErrors(errs))
}

func TestValidateSignUpForm_AllEmpty(t *testing.T) {
	errs := ValidateSignUpForm(models.SignUpFormData{})

	require.True(t, HasFormErrors(errs))
	assert.Equal(t, FormErrors{
		FieldName:            MsgNameRequired,
		FieldUsername:        MsgUsernameRequired,
		FieldEmail:           MsgEmailRequired,
		FieldPhone:           MsgPhoneRequired,
		FieldPassword:        MsgPasswordRequired,
		FieldConfirmPassword: MsgConfirmPasswordRequired,
	}, errs)
}

func TestValidateSignUpForm_CrossFieldRules(t *testing.T) {
	t.Run("password contains username", func(t *testing.T) {
		d := validSignUp()
		d.Username = "alice"
		d.Password = "Alice2024!"
		d.ConfirmPassword = d.Password

		assert.Equal(t, FormErrors{FieldPassword: MsgPasswordContainsUsername}, ValidateSignUpForm(d))
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		d := validSignUp()
		d.ConfirmPassword = "str0ngpass!"

		assert.Equal(t, FormErrors{FieldConfirmPassword: MsgPasswordsMismatch}, ValidateSignUpForm(d))
	})

	t.Run("invalid username is still used as password context", func(t *testing.T) {
		d := validSignUp()
		d.Username = "ab"
		d.Password = "xAB12345y"
		d.ConfirmPassword = d.Password

		errs := ValidateSignUpForm(d)
		assert.Equal(t, MsgUsernameTooShort, errs[FieldUsername])
		assert.Equal(t, MsgPasswordContainsUsername, errs[FieldPassword])
	})
}

func TestValidateSignUpField(t *testing.T) {
	d := validSignUp()
	d.Phone = "555-0123"

	assert.Equal(t, MsgPhoneInvalid, ValidateSignUpField(FieldPhone, d))
	assert.Empty(t, ValidateSignUpField(FieldEmail, d))
	assert.Empty(t, ValidateSignUpField("unknown", d))
}

func TestValidateLoginField(t *testing.T) {
	d := models.LoginFormData{Username: "a b"}

	assert.Equal(t, MsgUsernameCharset, ValidateLoginField(FieldUsername, d))
	assert.Equal(t, MsgPasswordRequired, ValidateLoginField(FieldPassword, d))
	assert.Empty(t, ValidateLoginField(FieldEmail, d))
}

func TestHasFormErrors(t *testing.T) {
	assert.False(t, HasFormErrors(nil))
	assert.False(t, HasFormErrors(FormErrors{}))
	assert.True(t, HasFormErrors(FormErrors{FieldName: MsgNameRequired}))
}

func TestFormErrors_Fields(t *testing.T) {
	errs := FormErrors{FieldUsername: "u", FieldEmail: "e", FieldConfirmPassword: "c"}
	assert.Equal(t, []string{FieldConfirmPassword, FieldEmail, FieldUsername}, errs.Fields())
	assert.Empty(t, FormErrors{}.Fields())
}
