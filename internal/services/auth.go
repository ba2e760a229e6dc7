// Package services contains the application services of the auth forms CLI.
// This file defines the mock authentication service: it validates a
// submission, simulates a round trip and drives the auth state store.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/authforms/internal/common"
	"github.com/dmitrijs2005/authforms/internal/logging"
	"github.com/dmitrijs2005/authforms/internal/models"
	"github.com/dmitrijs2005/authforms/internal/state"
	"github.com/dmitrijs2005/authforms/internal/validation"
)

// User-facing outcome messages.
const (
	MsgLoginSuccess       = "Welcome %s! Login successful."
	MsgMissingCredentials = "Please enter both username and password."
	MsgSignUpSuccess      = "Account created successfully! Please sign in with any username/password."
)

// ValidationError carries the per-field messages of a rejected submission.
// It matches common.ErrValidation with errors.Is.
type ValidationError struct {
	Fields validation.FormErrors
}

func (e *ValidationError) Error() string {
	fields := e.Fields.Fields()
	return fmt.Sprintf("%s: %s", common.ErrValidation, strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: validate the login form, then authenticate any non-empty
//     credentials as the demo user.
//   - SignUp: validate the sign-up form and record the new user without
//     logging it in.
//   - Logout: reset the auth state.
//   - State: snapshot of the current auth state.
//
// Login and SignUp block for the configured delay and honor context
// cancellation.
type AuthService interface {
	Login(ctx context.Context, data models.LoginFormData) (models.UserProfile, error)
	SignUp(ctx context.Context, data models.SignUpFormData) (models.UserProfile, error)
	Logout(ctx context.Context) error
	State() state.AuthState
}

type authService struct {
	store  *state.Store
	delay  time.Duration
	logger logging.Logger
}

// NewAuthService constructs an AuthService over store that simulates a
// network round trip of delay per submission.
func NewAuthService(store *state.Store, delay time.Duration, logger logging.Logger) AuthService {
	return &authService{store: store, delay: delay, logger: logger}
}

// Login validates data and, if it passes, marks the store as loading for the
// duration of the simulated round trip. The store is not touched when
// validation fails.
func (s *authService) Login(ctx context.Context, data models.LoginFormData) (models.UserProfile, error) {
	if errs := validation.ValidateLoginForm(data); validation.HasFormErrors(errs) {
		s.logger.Info(ctx, "login rejected", "fields", errs.Fields())
		return models.UserProfile{}, &ValidationError{Fields: errs}
	}

	s.store.LoginStart()

	if err := s.wait(ctx); err != nil {
		s.store.LoginFailure()
		s.logger.Warn(ctx, "login interrupted", "error", err)
		return models.UserProfile{}, err
	}

	if data.Username == "" || data.Password == "" {
		s.store.LoginFailure()
		return models.UserProfile{}, common.ErrMissingCredentials
	}

	profile := models.DemoProfile(data.Username)
	s.store.LoginSuccess(profile)
	s.logger.Info(ctx, "login successful", "username", data.Username)

	return s.currentUser(profile), nil
}

// SignUp validates data and records the user once the simulated round trip
// completes. The user still has to log in afterwards.
func (s *authService) SignUp(ctx context.Context, data models.SignUpFormData) (models.UserProfile, error) {
	if errs := validation.ValidateSignUpForm(data); validation.HasFormErrors(errs) {
		s.logger.Info(ctx, "sign up rejected", "fields", errs.Fields())
		return models.UserProfile{}, &ValidationError{Fields: errs}
	}

	if err := s.wait(ctx); err != nil {
		s.logger.Warn(ctx, "sign up interrupted", "error", err)
		return models.UserProfile{}, err
	}

	profile := data.Profile()
	s.store.SignUpSuccess(profile)
	s.logger.Info(ctx, "sign up successful", "username", data.Username)

	return s.currentUser(profile), nil
}

func (s *authService) Logout(ctx context.Context) error {
	if !s.store.Snapshot().IsAuthenticated {
		return common.ErrNotAuthenticated
	}
	s.store.Logout()
	s.logger.Info(ctx, "logged out")
	return nil
}

func (s *authService) State() state.AuthState {
	return s.store.Snapshot()
}

// wait blocks for the configured delay or until ctx is done.
func (s *authService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(s.delay)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// currentUser returns the stored profile, which carries the assigned ID,
// falling back to p.
func (s *authService) currentUser(p models.UserProfile) models.UserProfile {
	if u := s.store.Snapshot().User; u != nil {
		return *u
	}
	return p
}
