// Package cli implements the terminal front end of the auth forms demo.
//
// The App owns two views, login and sign-up, and a small REPL that switches
// between them:
//
//	help            show available commands
//	login           fill in and submit the login form
//	signup          fill in and submit the sign-up form
//	logout          end the session
//	whoami          show the current user
//	show-password   toggle password visibility
//	exit | quit     leave the program
//
// Forms are read field by field through a Prompter. A rejected submission
// re-prompts only the failing fields, showing each field's message under its
// label, for at most Config.MaxAttempts rounds.
package cli
