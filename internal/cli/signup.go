package cli

import (
	"context"

	"github.com/dmitrijs2005/authforms/internal/models"
	"github.com/dmitrijs2005/authforms/internal/services"
)

// SignUp shows the sign-up view, reads the six fields and submits them. On
// success the user is sent back to the login view.
func (a *App) SignUp(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Already logged in. Use 'logout' first.")
		return nil
	}

	a.navigate(ViewSignUp, "")
	a.render()

	var data models.SignUpFormData
	f := &signUpForm{data: &data}
	if err := a.fill(ctx, f, nil); err != nil {
		return err
	}

	return a.submit(ctx, f, func() error {
		a.println("Creating account...")
		if _, err := a.authService.SignUp(ctx, data); err != nil {
			return err
		}
		a.navigate(ViewLogin, services.MsgSignUpSuccess)
		a.render()
		return nil
	})
}
