// Package validation checks login and sign-up form fields against fixed rules
// and collects per-field error messages.
//
// Validators never fail: a value that breaks a rule yields a human-readable
// message and a valid value yields "". The rules of a field run in a fixed
// order and the first failing rule wins, so
//
//	ValidatePassword("", "")
//
// reports MsgPasswordRequired and never MsgPasswordTooShort.
//
// Fields that depend on another field take it as an explicit argument:
// ValidatePassword gets the username it must not contain and
// ValidateConfirmPassword gets the password it must repeat.
//
// All functions are pure and safe for concurrent use.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

var (
	nameRe     = regexp.MustCompile(`^[A-Za-z\s\v\p{Z}]+$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	// "+" then 2..15 digits, the first one non-zero.
	phoneRe = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

	passwordCharsRe = regexp.MustCompile(`^[A-Za-z0-9@#$%^&+=!]*$`)
	lowerRe         = regexp.MustCompile(`[a-z]`)
	upperRe         = regexp.MustCompile(`[A-Z]`)
	digitRe         = regexp.MustCompile(`\d`)
)

// ValidateName checks a display name: required, letters and whitespace only,
// at least NameMinLength characters once trimmed.
func ValidateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return MsgNameRequired
	}
	if !nameRe.MatchString(name) {
		return MsgNameCharset
	}
	if textLength(trimmed) < NameMinLength {
		return MsgNameTooShort
	}
	return ""
}

// ValidateUsername checks a username: required, [A-Za-z0-9_-] only, between
// UsernameMinLength and UsernameMaxLength characters. Surrounding whitespace
// only counts as empty for the required check; otherwise it fails the charset
// rule.
func ValidateUsername(username string) string {
	if strings.TrimSpace(username) == "" {
		return MsgUsernameRequired
	}
	if !usernameRe.MatchString(username) {
		return MsgUsernameCharset
	}
	n := textLength(username)
	if n < UsernameMinLength {
		return MsgUsernameTooShort
	}
	if n > UsernameMaxLength {
		return MsgUsernameTooLong
	}
	return ""
}

// ValidateEmail checks for a local@domain.tld address with a TLD of at least
// two letters.
func ValidateEmail(email string) string {
	if strings.TrimSpace(email) == "" {
		return MsgEmailRequired
	}
	if !emailRe.MatchString(email) {
		return MsgEmailInvalid
	}
	return ""
}

// ValidatePhone checks for an international number: a leading "+", a non-zero
// first digit and 2 to 15 digits in total.
func ValidatePhone(phone string) string {
	if strings.TrimSpace(phone) == "" {
		return MsgPhoneRequired
	}
	if !phoneRe.MatchString(phone) {
		return MsgPhoneInvalid
	}
	return ""
}

// ValidatePassword checks password strength. The password is never trimmed.
//
// username is optional context: when non-empty the password must not contain
// it, ignoring case.
func ValidatePassword(password, username string) string {
	if password == "" {
		return MsgPasswordRequired
	}
	if textLength(password) < PasswordMinLength {
		return MsgPasswordTooShort
	}
	if !passwordCharsRe.MatchString(password) {
		return MsgPasswordCharset
	}
	if !lowerRe.MatchString(password) {
		return MsgPasswordNoLowercase
	}
	if !upperRe.MatchString(password) {
		return MsgPasswordNoUppercase
	}
	if !digitRe.MatchString(password) {
		return MsgPasswordNoDigit
	}
	if username != "" && strings.Contains(strings.ToLower(password), strings.ToLower(username)) {
		return MsgPasswordContainsUsername
	}
	return ""
}

// ValidateConfirmPassword checks that confirm repeats password exactly.
func ValidateConfirmPassword(confirm, password string) string {
	if confirm == "" {
		return MsgConfirmPasswordRequired
	}
	if confirm != password {
		return MsgPasswordsMismatch
	}
	return ""
}

// textLength reports the length of s in UTF-16 code units.
func textLength(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
