package client

import (
	"context"
	"net/http"
	"net/url"

	"hotelops-backend/access"
	"hotelops-backend/forms"
	"hotelops-backend/models"
)

// ListUsers returns login accounts; an empty role lists all of them.
func (c *Client) ListUsers(ctx context.Context, role access.Role) ([]models.User, error) {
	var q url.Values
	if role != "" {
		q = url.Values{"role": {string(role)}}
	}
	var out []models.User
	err := c.doJSON(ctx, http.MethodGet, "/users", q, nil, &out)
	return out, err
}

func (c *Client) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodGet, idPath("/users/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateUser(ctx context.Context, form forms.UserForm) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPost, "/users", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser sends the whole form. An empty password keeps the current one
// and a nil StaffID unlinks the staff member.
func (c *Client) UpdateUser(ctx context.Context, id uint, form forms.UserForm) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, http.MethodPut, idPath("/users/%d", id), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/users/%d", id), nil, nil, nil)
}
