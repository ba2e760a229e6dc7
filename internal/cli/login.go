package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authforms/internal/common"
	"github.com/dmitrijs2005/authforms/internal/models"
	"github.com/dmitrijs2005/authforms/internal/services"
)

// Login shows the login view, reads the credentials and submits them.
//
// A submission rejected by validation re-prompts the failing fields, up to
// Config.MaxAttempts submissions in total. The returned error is the last
// submission error, or an input error such as io.EOF or common.ErrAborted.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		a.println("Already logged in. Use 'logout' first.")
		return nil
	}

	a.navigate(ViewLogin, a.flash)
	a.render()

	var data models.LoginFormData
	f := &loginForm{data: &data}
	if err := a.fill(ctx, f, nil); err != nil {
		return err
	}

	return a.submit(ctx, f, func() error {
		a.println("Signing in...")
		p, err := a.authService.Login(ctx, data)
		if err != nil {
			if errors.Is(err, common.ErrMissingCredentials) {
				a.println(services.MsgMissingCredentials)
			}
			return err
		}
		a.println(fmt.Sprintf(services.MsgLoginSuccess, p.Username))
		return nil
	})
}

// submit calls send and, while it fails validation, re-prompts the failing
// fields of f and tries again.
func (a *App) submit(ctx context.Context, f form, send func() error) error {
	for attempt := 1; ; attempt++ {
		err := send()

		var vErr *services.ValidationError
		if !errors.As(err, &vErr) {
			if err != nil {
				a.logger.Debug(ctx, "submission failed", "error", err)
			}
			return err
		}

		if attempt >= a.config.MaxAttempts {
			a.println("Too many invalid attempts.")
			return err
		}

		a.println("Please fix the highlighted fields:")
		if err := a.fill(ctx, f, vErr.Fields); err != nil {
			return err
		}
	}
}
