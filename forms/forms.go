// Package forms holds the add/edit/view form rules shared by every entity
// screen: defaults, hydration from a stored entity, field validation and the
// payload that gets persisted.
package forms

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
)

type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrReadOnly = errors.New("form is read-only in view mode")

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

var phoneRegex = regexp.MustCompile(`^\+?[0-9 ()\-]{7,20}$`)

func ParseMode(raw string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case ModeAdd:
		return ModeAdd, true
	case ModeEdit:
		return ModeEdit, true
	case ModeView:
		return ModeView, true
	}
	return "", false
}

// FieldErrors maps a field name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

// Merge copies other into fe, keeping messages already present.
func (fe FieldErrors) Merge(other map[string]string) {
	for k, v := range other {
		fe.Add(k, v)
	}
}

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Err returns fe as an error, or nil when there is nothing to report.
func (fe FieldErrors) Err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

type Validator interface {
	Validate() FieldErrors
}

// Submit is the guard every form runs before building a payload: view mode
// never submits, and any failing field blocks submission.
func Submit(mode Mode, v Validator) error {
	if mode == ModeView {
		return ErrReadOnly
	}
	return v.Validate().Err()
}

func IsEmail(s string) bool {
	return emailRegex.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.UTC)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func optionalDate(raw string) (*time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseClock accepts "HH:MM" or "HH:MM:SS".
func parseClock(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(TimeLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse("15:04:05", raw)
}
