package forms

import (
	"strings"

	"hotelops-backend/access"
	"hotelops-backend/models"
)

const minPasswordLength = 8

// UserForm creates or edits a login account. Password is write-only: an
// empty password on edit keeps the stored hash.
type UserForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	StaffID  *uint  `json:"staff_id"`

	editing bool
}

func NewUserForm() UserForm {
	return UserForm{Role: string(access.RoleStaff)}
}

func HydrateUser(u models.User) UserForm {
	return UserForm{
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		StaffID: u.StaffID,
		editing: true,
	}
}

// ParsedRole returns the normalized role; ok is false for unknown names.
func (f UserForm) ParsedRole() (access.Role, bool) {
	return access.ParseRole(f.Role)
}

func (f UserForm) Validate() FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(f.Name) == "" {
		errs.Add("name", "Name is required")
	}
	if !IsEmail(f.Email) {
		errs.Add("email", "Valid email is required")
	}
	switch {
	case f.Password == "" && !f.editing:
		errs.Add("password", "Password is required")
	case f.Password != "" && len(f.Password) < minPasswordLength:
		errs.Add("password", "Password must be at least 8 characters")
	}
	if _, ok := f.ParsedRole(); !ok {
		errs.Add("role", "Role is invalid")
	}
	if f.StaffID != nil && *f.StaffID == 0 {
		errs.Add("staff_id", "Staff member is invalid")
	}
	return errs
}

// Model builds the account without a password hash. Call it only after
// Validate passes.
func (f UserForm) Model() models.User {
	var u models.User
	f.Apply(&u)
	return u
}

func (f UserForm) Apply(u *models.User) {
	role, _ := f.ParsedRole()
	u.Name = strings.TrimSpace(f.Name)
	u.Email = strings.ToLower(strings.TrimSpace(f.Email))
	u.Role = role
	u.StaffID = f.StaffID
}
