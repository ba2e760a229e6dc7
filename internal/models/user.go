package models

// UserProfile is the user held by the auth state container.
type UserProfile struct {
	// ID is assigned by the state store when the profile is first stored.
	ID       string
	Name     string
	Username string
	Email    string
}

// DemoProfile is the profile every successful mock login resolves to.
func DemoProfile(username string) UserProfile {
	return UserProfile{
		Name:     "Demo User",
		Username: username,
		Email:    "user@example.com",
	}
}
