package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotelops-backend/forms"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrInvalidInput      = errors.New("invalid input")
)

const mysqlDuplicateEntry = 1062

// dbErr maps driver errors onto the service sentinels and adds context.
func dbErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// uniqueKey ties a unique index, matched by the suffix of its name, to the
// form field it guards.
type uniqueKey struct {
	index   string
	field   string
	message string
}

// duplicateKey returns the index named in a MySQL duplicate-entry error.
func duplicateKey(err error) (string, bool) {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) || myErr.Number != mysqlDuplicateEntry {
		return "", false
	}
	const marker = "for key '"
	i := strings.LastIndex(myErr.Message, marker)
	if i < 0 {
		return "", false
	}
	return strings.TrimSuffix(myErr.Message[i+len(marker):], "'"), true
}

// uniqueErr is dbErr for writes guarded by unique indexes. A duplicate on
// one of keys becomes a field error.
func uniqueErr(op string, err error, keys ...uniqueKey) error {
	if index, ok := duplicateKey(err); ok {
		for _, k := range keys {
			if strings.HasSuffix(index, k.index) {
				return forms.FieldErrors{k.field: k.message}
			}
		}
	}
	return dbErr(op, err)
}

var (
	staffEmailKey     = uniqueKey{"_email", "email", "Email is already in use"}
	departmentNameKey = uniqueKey{"_name", "name", "Department name already exists"}
	departmentCodeKey = uniqueKey{"_code", "code", "Department code already exists"}
	roomNumberKey     = uniqueKey{"idx_hotel_room_number", "roomNumber", "Room number already exists in this hotel"}
	userEmailKey      = uniqueKey{"_email", "email", "Email is already registered"}
)
