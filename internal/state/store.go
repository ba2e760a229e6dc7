// Package state holds the in-memory authentication state of the CLI.
//
// Store is the only writer. Its actions mirror the lifecycle of a submission:
// LoginStart when a login is submitted, then LoginSuccess or LoginFailure
// once the mock round trip completes; SignUpSuccess after a sign-up; Logout
// to reset. Nothing is persisted.
package state

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/authforms/internal/logging"
	"github.com/dmitrijs2005/authforms/internal/models"
)

// AuthState is a snapshot of the authentication state.
type AuthState struct {
	User            *models.UserProfile
	IsAuthenticated bool
	IsLoading       bool
}

// Store guards an AuthState. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	state  AuthState
	logger logging.Logger
}

// NewStore returns a Store in the logged-out state.
func NewStore(logger logging.Logger) *Store {
	return &Store{logger: logger}
}

// Snapshot returns a copy of the current state. The returned User, if any,
// is a copy as well.
func (s *Store) Snapshot() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	if s.state.User != nil {
		u := *s.state.User
		out.User = &u
	}
	return out
}

// LoginStart marks a login as in flight.
func (s *Store) LoginStart() {
	s.update("login start", func(st *AuthState) {
		st.IsLoading = true
	})
}

// LoginSuccess stores p as the authenticated user.
func (s *Store) LoginSuccess(p models.UserProfile) {
	s.update("login success", func(st *AuthState) {
		st.IsLoading = false
		st.IsAuthenticated = true
		st.User = withID(p)
	})
}

// LoginFailure clears any user and the loading flag.
func (s *Store) LoginFailure() {
	s.update("login failure", func(st *AuthState) {
		st.IsLoading = false
		st.IsAuthenticated = false
		st.User = nil
	})
}

// SignUpSuccess stores p as the current user without authenticating it; the
// user still has to log in.
func (s *Store) SignUpSuccess(p models.UserProfile) {
	s.update("sign up success", func(st *AuthState) {
		st.IsLoading = false
		st.User = withID(p)
	})
}

// Logout resets the state.
func (s *Store) Logout() {
	s.update("logout", func(st *AuthState) {
		*st = AuthState{}
	})
}

func (s *Store) update(action string, fn func(*AuthState)) {
	s.mu.Lock()
	fn(&s.state)
	st := s.state
	s.mu.Unlock()

	if s.logger == nil {
		return
	}
	args := []any{"action", action, "authenticated", st.IsAuthenticated, "loading", st.IsLoading}
	if st.User != nil {
		args = append(args, "username", st.User.Username)
	}
	s.logger.Debug(context.Background(), "auth state changed", args...)
}

func withID(p models.UserProfile) *models.UserProfile {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return &p
}
