package client

import (
	"context"
	"net/http"
	"net/url"

	"hotelops-backend/access"
	"hotelops-backend/models"
	"hotelops-backend/session"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionUser converts an API user into the session store's user.
func SessionUser(u *models.User) *session.User {
	if u == nil {
		return nil
	}
	return &session.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, StaffID: u.StaffID}
}

// UserLoader adapts Me for session.Store.Init.
func (c *Client) UserLoader() session.UserLoader {
	return func(ctx context.Context) (*session.User, error) {
		u, err := c.Me(ctx)
		if err != nil {
			return nil, err
		}
		return SessionUser(u), nil
	}
}

// signedIn persists the token of res and reports the login to the
// attached session store.
func (c *Client) signedIn(res *models.AuthResult) error {
	if c.session != nil {
		_, err := c.session.Login(SessionUser(&res.User), res.Token)
		if err != nil {
			return err
		}
	}
	return c.tokens.SetToken(res.Token)
}

// Login authenticates and persists the returned token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var out models.AuthResult
	in := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, in, &out); err != nil {
		if c.session != nil {
			c.session.Dispatch(session.Action{Type: session.LoginFailure, Error: err.Error()})
		}
		return nil, err
	}
	if err := c.signedIn(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a user account and persists the returned token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*models.AuthResult, error) {
	var out models.AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	if err := c.signedIn(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout revokes the token server side. The local token is cleared even
// when the request fails.
func (c *Client) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if clearErr := c.tokens.Clear(); err == nil {
		err = clearErr
	}
	if c.session != nil {
		_ = c.session.Logout()
	}
	return err
}

// CheckAccess asks the server for the gate verdict of a dashboard path.
func (c *Client) CheckAccess(ctx context.Context, path string) (*access.Check, error) {
	var out access.Check
	q := url.Values{"path": {path}}
	if err := c.doJSON(ctx, http.MethodGet, "/access/check", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var out models.DashboardSummary
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/summary", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
