package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"hotelops-backend/forms"
	"hotelops-backend/models"
)

// StaffQuery filters the staff list. Zero values are not sent.
type StaffQuery struct {
	Search       string
	DepartmentID uint
	Status       models.StaffStatus
	Page         int
	Limit        int
}

func (q StaffQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.DepartmentID != 0 {
		v.Set("department_id", strconv.FormatUint(uint64(q.DepartmentID), 10))
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	setPaging(v, q.Page, q.Limit)
	return v
}

func setPaging(v url.Values, page, limit int) {
	if page > 0 {
		v.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
}

func staffFiles(profile *File) []filePart {
	if profile == nil {
		return nil
	}
	return []filePart{{field: "profile_image", file: *profile}}
}

func (c *Client) ListStaff(ctx context.Context, q StaffQuery) (*Page[models.Staff], error) {
	var out Page[models.Staff]
	if err := c.doJSON(ctx, http.MethodGet, "/staff", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStaff(ctx context.Context, id uint) (*models.Staff, error) {
	var out models.Staff
	if err := c.doJSON(ctx, http.MethodGet, idPath("/staff/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateStaff sends multipart when profile is set.
func (c *Client) CreateStaff(ctx context.Context, form forms.StaffForm, profile *File) (*models.Staff, error) {
	var out models.Staff
	if err := c.doMultipart(ctx, http.MethodPost, "/staff", form, staffFiles(profile), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStaff(ctx context.Context, id uint, form forms.StaffForm, profile *File) (*models.Staff, error) {
	var out models.Staff
	if err := c.doMultipart(ctx, http.MethodPut, idPath("/staff/%d", id), form, staffFiles(profile), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStaff(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/staff/%d", id), nil, nil, nil)
}

// BulkDeleteStaff returns the number of deleted rows.
func (c *Client) BulkDeleteStaff(ctx context.Context, ids []uint) (int64, error) {
	var out struct {
		Deleted int64 `json:"deleted"`
	}
	in := map[string][]uint{"ids": ids}
	if err := c.doJSON(ctx, http.MethodDelete, "/staff/bulk", nil, in, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}

// ExportStaff downloads the filtered staff list as an xlsx workbook.
func (c *Client) ExportStaff(ctx context.Context, q StaffQuery) ([]byte, error) {
	return c.download(ctx, "/staff/export", q.values())
}

func (c *Client) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	err := c.doJSON(ctx, http.MethodGet, "/departments", nil, nil, &out)
	return out, err
}

func (c *Client) GetDepartment(ctx context.Context, id uint) (*models.Department, error) {
	var out models.Department
	if err := c.doJSON(ctx, http.MethodGet, idPath("/departments/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateDepartment(ctx context.Context, form forms.DepartmentForm) (*models.Department, error) {
	var out models.Department
	if err := c.doJSON(ctx, http.MethodPost, "/departments", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id uint, form forms.DepartmentForm) (*models.Department, error) {
	var out models.Department
	if err := c.doJSON(ctx, http.MethodPut, idPath("/departments/%d", id), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteDepartment(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/departments/%d", id), nil, nil, nil)
}
