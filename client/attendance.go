package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"hotelops-backend/forms"
	"hotelops-backend/models"
)

// AttendanceQuery filters attendance records. Dates are YYYY-MM-DD.
type AttendanceQuery struct {
	StaffID uint
	Date    string
	From    string
	To      string
	Status  models.AttendanceStatus
	Page    int
	Limit   int
}

func (q AttendanceQuery) values() url.Values {
	v := url.Values{}
	if q.StaffID != 0 {
		v.Set("staff_id", strconv.FormatUint(uint64(q.StaffID), 10))
	}
	for key, val := range map[string]string{"date": q.Date, "from": q.From, "to": q.To, "status": string(q.Status)} {
		if val != "" {
			v.Set(key, val)
		}
	}
	setPaging(v, q.Page, q.Limit)
	return v
}

func (c *Client) ListAttendance(ctx context.Context, q AttendanceQuery) (*Page[models.Attendance], error) {
	var out Page[models.Attendance]
	if err := c.doJSON(ctx, http.MethodGet, "/attendance", q.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetAttendance(ctx context.Context, id uint) (*models.Attendance, error) {
	var out models.Attendance
	if err := c.doJSON(ctx, http.MethodGet, idPath("/attendance/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAttendance(ctx context.Context, form forms.AttendanceForm) (*models.Attendance, error) {
	var out models.Attendance
	if err := c.doJSON(ctx, http.MethodPost, "/attendance", nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAttendance(ctx context.Context, id uint, form forms.AttendanceForm) (*models.Attendance, error) {
	var out models.Attendance
	if err := c.doJSON(ctx, http.MethodPut, idPath("/attendance/%d", id), nil, form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteAttendance(ctx context.Context, id uint) error {
	return c.doJSON(ctx, http.MethodDelete, idPath("/attendance/%d", id), nil, nil, nil)
}

// DailyAttendance lists every active staff member with their record for date.
func (c *Client) DailyAttendance(ctx context.Context, date string) ([]models.DailyAttendance, error) {
	var out []models.DailyAttendance
	err := c.doJSON(ctx, http.MethodGet, "/attendance/daily", url.Values{"date": {date}}, nil, &out)
	return out, err
}

// BulkAttendance creates or replaces one record per staff/date pair.
func (c *Client) BulkAttendance(ctx context.Context, records []forms.AttendanceForm) ([]models.Attendance, error) {
	var out []models.Attendance
	in := map[string][]forms.AttendanceForm{"records": records}
	err := c.doJSON(ctx, http.MethodPost, "/attendance/bulk", nil, in, &out)
	return out, err
}
