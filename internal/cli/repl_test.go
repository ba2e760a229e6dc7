package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) SignUp(ctx context.Context) error {
	f.calls = append(f.calls, "signup")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) TogglePasswords(ctx context.Context) error {
	f.calls = append(f.calls, "show-password")
	return nil
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"signup",
		"register",
		"",
		"login",
		"help",
		"whoami",
		"show-password",
		"logout",
		"foobar",
		"exit",
		"login",
	}, "\n"))

	exec := &fakeExec{}
	out := &bytes.Buffer{}

	runREPL(context.Background(), exec, func() string { return "(status)" }, bufio.NewScanner(input), out)

	assert.Equal(t, []string{"signup", "signup", "login", "whoami", "show-password", "logout"}, exec.calls)

	s := out.String()
	assert.Contains(t, s, "auth (status)> ")
	assert.Contains(t, s, "Available commands: login, signup, whoami, show-password, exit")
	assert.Contains(t, s, "Available commands: whoami, logout, show-password, exit")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	out := &bytes.Buffer{}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("whoami")), out)

	assert.Equal(t, []string{"whoami"}, exec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec := &fakeExec{}
	out := &bytes.Buffer{}

	runREPL(ctx, exec, func() string { return "" }, bufio.NewScanner(strings.NewReader("login\n")), out)

	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}
