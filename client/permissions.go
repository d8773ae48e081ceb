package client

import (
	"context"
	"net/http"
	"net/url"

	"hotelops-backend/models"
)

func (c *Client) GetPermissions(ctx context.Context, staffID uint) (*models.PermissionSet, error) {
	var out models.PermissionSet
	if err := c.doJSON(ctx, http.MethodGet, idPath("/permissions/%d", staffID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPermissions replaces the staff member's permissions with perms.
func (c *Client) SetPermissions(ctx context.Context, staffID uint, perms []string) (*models.PermissionSet, error) {
	var out models.PermissionSet
	in := map[string][]string{"permissions": perms}
	if err := c.doJSON(ctx, http.MethodPost, idPath("/permissions/%d", staffID), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeletePermissions(ctx context.Context, staffID uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/permissions/%d", staffID), nil, nil, nil)
}

// DefaultPermissions returns the preset permissions of a designation.
func (c *Client) DefaultPermissions(ctx context.Context, designation string) ([]string, error) {
	var out struct {
		Permissions []string `json:"permissions"`
	}
	path := "/permissions/defaults/" + url.PathEscape(designation)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Permissions, nil
}

// CopyPermissions copies the permissions of one staff member onto others
// and returns how many distinct targets were written.
func (c *Client) CopyPermissions(ctx context.Context, fromStaffID uint, toStaffIDs []uint) (int, error) {
	in := struct {
		FromStaffID uint   `json:"from_staff_id"`
		ToStaffIDs  []uint `json:"to_staff_ids"`
	}{fromStaffID, toStaffIDs}
	var out struct {
		Copied int `json:"copied"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/permissions/copy", nil, in, &out); err != nil {
		return 0, err
	}
	return out.Copied, nil
}
