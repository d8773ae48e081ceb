package session

import (
	"context"
	"sync"

	"hotelops-backend/access"
)

// TokenStore is the durable place the bearer token lives between runs.
type TokenStore interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// UserLoader fetches the current user for a token (GET /auth/me).
type UserLoader func(ctx context.Context) (*User, error)

// Store owns the auth state for one client. Only its methods write state.
type Store struct {
	mu     sync.RWMutex
	state  State
	tokens TokenStore
	gate   access.Gate
	subs   []func(State)
}

func NewStore(tokens TokenStore, gate access.Gate) *Store {
	return &Store{tokens: tokens, gate: gate}
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to be called after every dispatch.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	subs := append([]func(State){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Init restores the persisted token and loads the current user. A failed
// load clears the stored token and leaves the store unauthenticated.
func (s *Store) Init(ctx context.Context, load UserLoader) (State, error) {
	token, err := s.tokens.Token()
	if err != nil {
		return s.State(), err
	}

	s.mu.Lock()
	s.state = Initial(token)
	s.mu.Unlock()

	if token == "" {
		return s.State(), nil
	}

	user, err := load(ctx)
	if err != nil {
		_ = s.tokens.Clear()
		return s.Dispatch(Action{Type: AuthFailure, Error: err.Error()}), err
	}
	return s.Dispatch(Action{Type: UserLoaded, User: user}), nil
}

// Login persists token and marks the store authenticated.
func (s *Store) Login(user *User, token string) (State, error) {
	if err := s.tokens.SetToken(token); err != nil {
		return s.Dispatch(Action{Type: LoginFailure, Error: err.Error()}), err
	}
	return s.Dispatch(Action{Type: LoginSuccess, User: user, Token: token}), nil
}

// Logout clears the persisted token and resets the state.
func (s *Store) Logout() error {
	err := s.tokens.Clear()
	s.Dispatch(Action{Type: Logout})
	return err
}

// HandleAuthFailure is called when the API rejects the token.
func (s *Store) HandleAuthFailure(reason string) {
	_ = s.tokens.Clear()
	s.Dispatch(Action{Type: AuthFailure, Error: reason})
}

// Gate decides access to a guarded view from the current state.
func (s *Store) Gate(allowed []access.Role) access.Decision {
	return s.gate.Decide(s.State().GateState(), allowed)
}
