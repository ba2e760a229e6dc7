// Package models defines the form payloads and user profile shared by the
// validation engine, the auth state container and the CLI.
package models

// LoginFormData is the payload of a single login submission.
type LoginFormData struct {
	Username string
	Password string
}

// SignUpFormData is the payload of a single sign-up submission.
type SignUpFormData struct {
	Name            string
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// Profile returns the public part of the sign-up payload. Passwords and the
// phone number are not kept.
func (d SignUpFormData) Profile() UserProfile {
	return UserProfile{
		Name:     d.Name,
		Username: d.Username,
		Email:    d.Email,
	}
}
