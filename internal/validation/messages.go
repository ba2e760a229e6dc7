package validation

// Messages returned by the field validators. A validator returns exactly one
// of these, or "" when the value is valid.
const (
	MsgNameRequired = "Name is required"
	MsgNameCharset  = "Name must contain only alphabets and spaces"
	MsgNameTooShort = "Name must be at least 2 characters long"

	MsgUsernameRequired = "Username is required"
	MsgUsernameCharset  = "Username can only contain letters, numbers, underscores, and hyphens"
	MsgUsernameTooShort = "Username must be at least 3 characters long"
	MsgUsernameTooLong  = "Username must be at most 20 characters long"

	MsgEmailRequired = "Email is required"
	MsgEmailInvalid  = "Please enter a valid email address"

	MsgPhoneRequired = "Phone number is required"
	MsgPhoneInvalid  = "Please enter a valid phone number with country code (e.g., +1234567890)"

	MsgPasswordRequired         = "Password is required"
	MsgPasswordTooShort         = "Password must be at least 8 characters long"
	MsgPasswordCharset          = "Password can only contain letters, numbers, and special characters (@#$%^&+=!)"
	MsgPasswordNoLowercase      = "Password must contain at least one lowercase letter"
	MsgPasswordNoUppercase      = "Password must contain at least one uppercase letter"
	MsgPasswordNoDigit          = "Password must contain at least one number"
	MsgPasswordContainsUsername = "Password cannot contain your username"

	MsgConfirmPasswordRequired = "Please confirm your password"
	MsgPasswordsMismatch       = "Passwords do not match"
)

// Length limits.
const (
	NameMinLength     = 2
	UsernameMinLength = 3
	UsernameMaxLength = 20
	PasswordMinLength = 8
)
