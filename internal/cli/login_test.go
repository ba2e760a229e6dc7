package cli

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authforms/internal/common"
	"github.com/dmitrijs2005/authforms/internal/models"
	"github.com/dmitrijs2005/authforms/internal/services"
	"github.com/dmitrijs2005/authforms/internal/state"
	"github.com/dmitrijs2005/authforms/internal/validation"
)

// fakeAuth is an AuthService returning canned results.
type fakeAuth struct {
	loginErr  error
	signUpErr error
	logins    []models.LoginFormData
	st        state.AuthState
}

func (f *fakeAuth) Login(_ context.Context, d models.LoginFormData) (models.UserProfile, error) {
	f.logins = append(f.logins, d)
	if f.loginErr != nil {
		return models.UserProfile{}, f.loginErr
	}
	p := models.DemoProfile(d.Username)
	f.st = state.AuthState{User: &p, IsAuthenticated: true}
	return p, nil
}

func (f *fakeAuth) SignUp(_ context.Context, d models.SignUpFormData) (models.UserProfile, error) {
	return d.Profile(), f.signUpErr
}

func (f *fakeAuth) Logout(context.Context) error { f.st = state.AuthState{}; return nil }
func (f *fakeAuth) State() state.AuthState       { return f.st }

func TestLogin_Success(t *testing.T) {
	app, p, out := newTestApp(t, "alice", "whatever")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, []string{"USERNAME", "PASSWORD"}, p.labels())
	assert.Contains(t, out.String(), "== Sign in ==")
	assert.Contains(t, out.String(), "Welcome alice! Login successful.")
	assert.True(t, app.isLoggedIn())
}

func TestLogin_RepromptsOnlyFailingFields(t *testing.T) {
	app, p, out := newTestApp(t, "alice", "", "secret")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, []string{"USERNAME", "PASSWORD", "PASSWORD"}, p.labels())
	assert.Contains(t, out.String(), "  ! "+validation.MsgPasswordRequired)
	assert.Contains(t, out.String(), "Welcome alice! Login successful.")
}

func TestLogin_LiveRevalidation(t *testing.T) {
	app, p, out := newTestApp(t, "al", "pw", "a b", "alice")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, []string{"USERNAME", "PASSWORD", "USERNAME", "USERNAME"}, p.labels())
	s := out.String()
	assert.Contains(t, s, "  ! "+validation.MsgUsernameTooShort)
	assert.Contains(t, s, "  ! "+validation.MsgUsernameCharset)
	assert.Contains(t, s, "Welcome alice!")
}

func TestLogin_GivesUpAfterMaxAttempts(t *testing.T) {
	app, p, out := newTestApp(t, "", "", "", "", "", "")
	app.config.MaxAttempts = 2

	err := app.Login(context.Background())

	var vErr *services.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, p.asked, 4)
	assert.Contains(t, out.String(), "Too many invalid attempts.")
	assert.False(t, app.isLoggedIn())
}

func TestLogin_InputError(t *testing.T) {
	app, _, _ := newTestApp(t, "alice")

	err := app.Login(context.Background())

	assert.ErrorIs(t, err, io.EOF)
	assert.False(t, app.isLoggedIn())
}

func TestLogin_MissingCredentialsMessage(t *testing.T) {
	app, _, out := newTestApp(t, "alice", "pw")
	app.authService = &fakeAuth{loginErr: common.ErrMissingCredentials}

	err := app.Login(context.Background())

	assert.ErrorIs(t, err, common.ErrMissingCredentials)
	assert.Contains(t, out.String(), services.MsgMissingCredentials)
}

func TestLogin_OtherErrorStopsWithoutRetry(t *testing.T) {
	boom := errors.New("boom")
	fa := &fakeAuth{loginErr: boom}
	app, _, out := newTestApp(t, "alice", "pw")
	app.authService = fa

	assert.ErrorIs(t, app.Login(context.Background()), boom)
	assert.Len(t, fa.logins, 1)
	assert.NotContains(t, out.String(), "Welcome")
}

func TestLogin_ShowsPendingFlashOnce(t *testing.T) {
	app, _, out := newTestApp(t, "alice", "pw")
	app.navigate(ViewLogin, "flash!")

	require.NoError(t, app.Login(context.Background()))

	assert.Equal(t, 1, strings.Count(out.String(), "flash!"))
}
