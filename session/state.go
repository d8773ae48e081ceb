// Package session is the client-side auth store: a reducer over
// {user, token, isAuthenticated, loading} plus a Store that persists the
// token and feeds the route gate.
package session

import "hotelops-backend/access"

// User is the signed-in account as the API returns it.
type User struct {
	ID      uint        `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Role    access.Role `json:"role"`
	StaffID *uint       `json:"staff_id,omitempty"`
}

type State struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"is_authenticated"`
	Loading         bool   `json:"loading"`
	Error           string `json:"error,omitempty"`
}

type ActionType string

const (
	AuthStart    ActionType = "AUTH_START"
	LoginSuccess ActionType = "LOGIN_SUCCESS"
	LoginFailure ActionType = "LOGIN_FAILURE"
	UserLoaded   ActionType = "USER_LOADED"
	AuthFailure  ActionType = "AUTH_FAILURE"
	Logout       ActionType = "LOGOUT"
)

type Action struct {
	Type  ActionType
	User  *User
	Token string
	Error string
}

// Initial is the state before anything has been restored. When a persisted
// token exists the store starts loading so the gate does not redirect early.
func Initial(token string) State {
	return State{Token: token, Loading: token != ""}
}

// Reduce returns the next state. It never mutates s.
func Reduce(s State, a Action) State {
	switch a.Type {
	case AuthStart:
		s.Loading = true
		s.Error = ""
	case LoginSuccess:
		s = State{User: a.User, Token: a.Token, IsAuthenticated: true}
	case UserLoaded:
		s.User = a.User
		s.IsAuthenticated = s.Token != ""
		s.Loading = false
		s.Error = ""
	case LoginFailure, AuthFailure:
		s = State{Error: a.Error}
	case Logout:
		s = State{}
	}
	return s
}

// GateState projects the auth state onto what the route gate needs.
func (s State) GateState() access.GateState {
	gs := access.GateState{Loading: s.Loading, IsAuthenticated: s.IsAuthenticated}
	if s.User != nil {
		gs.Role = s.User.Role
	}
	return gs
}
