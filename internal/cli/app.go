package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authforms/internal/config"
	"github.com/dmitrijs2005/authforms/internal/logging"
	"github.com/dmitrijs2005/authforms/internal/services"
	"github.com/dmitrijs2005/authforms/internal/state"
)

type View string

const (
	ViewLogin  View = "login"
	ViewSignUp View = "signup"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	prompter      Prompter
	logger        logging.Logger
	scanner       *bufio.Scanner
	out           io.Writer
	view          View
	flash         string
	showPasswords bool
}

// NewApp wires the state store, the mock auth service and a prompter chosen
// by c.Interactive. Commands are read from in and output goes to out.
func NewApp(c *config.Config, logger logging.Logger, in io.Reader, out io.Writer) *App {
	store := state.NewStore(logger.With("component", "state"))
	as := services.NewAuthService(store, c.SubmitDelay, logger.With("component", "auth"))

	scanner := bufio.NewScanner(in)

	var p Prompter
	if c.Interactive {
		p = newSurveyPrompter()
	} else {
		p = newLinePrompter(scanner, out)
	}

	return &App{
		config:        c,
		authService:   as,
		prompter:      p,
		logger:        logger,
		scanner:       scanner,
		out:           out,
		view:          ViewLogin,
		showPasswords: c.ShowPasswords,
	}
}

// Run shows the login form once and then hands over to the REPL until the
// input ends, the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to authforms (type 'help' for commands)")

	if err := a.Login(ctx); err != nil {
		a.logger.Debug(ctx, "initial login skipped", "error", err)
	}

	runREPL(ctx, a, a.getStatus, a.scanner, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.authService.State().IsAuthenticated
}

func (a *App) getStatus() string {
	st := a.authService.State()
	if st.IsAuthenticated && st.User != nil {
		return fmt.Sprintf("(%s)", st.User.Username)
	}
	return fmt.Sprintf("(%s)", a.view)
}

// navigate switches to view and queues msg to be shown once when the view is
// next rendered.
func (a *App) navigate(view View, msg string) {
	a.view = view
	a.flash = msg
}

// render prints the current view's title and any pending flash message.
func (a *App) render() {
	switch a.view {
	case ViewSignUp:
		a.println("== Create account ==")
	default:
		a.println("== Sign in ==")
	}
	if a.flash != "" {
		a.println(a.flash)
		a.flash = ""
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
