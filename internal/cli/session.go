package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authforms/internal/common"
)

// Logout ends the session and returns to the login view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		if errors.Is(err, common.ErrNotAuthenticated) {
			a.println("Not logged in.")
		}
		return err
	}
	a.navigate(ViewLogin, "")
	a.println("Logged out.")
	return nil
}

// WhoAmI prints the current user.
func (a *App) WhoAmI(_ context.Context) error {
	st := a.authService.State()
	switch {
	case st.User == nil:
		a.println("Not logged in.")
		return common.ErrNotAuthenticated
	case !st.IsAuthenticated:
		a.printf("%s signed up but not logged in.\n", st.User.Username)
		return common.ErrNotAuthenticated
	}
	a.printf("Name:     %s\nUsername: %s\nEmail:    %s\nID:       %s\n",
		st.User.Name, st.User.Username, st.User.Email, st.User.ID)
	return nil
}

// TogglePasswords switches between hidden and visible password input.
func (a *App) TogglePasswords(_ context.Context) error {
	a.showPasswords = !a.showPasswords
	if a.showPasswords {
		a.println("Passwords are now visible.")
	} else {
		a.println("Passwords are now hidden.")
	}
	return nil
}
