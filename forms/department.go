package forms

import (
	"regexp"
	"strings"
	"unicode"

	"hotelops-backend/models"
)

const departmentCodeLength = 6

var departmentCodeRegex = regexp.MustCompile(`^[A-Z0-9]{2,20}$`)

type DepartmentForm struct {
	Name        string                  `json:"name"`
	Code        string                  `json:"code"`
	Description string                  `json:"description"`
	ManagerID   *uint                   `json:"manager_id"`
	Status      models.DepartmentStatus `json:"status"`
}

func NewDepartmentForm() DepartmentForm {
	return DepartmentForm{Status: models.DepartmentActive}
}

func HydrateDepartment(d models.Department) DepartmentForm {
	return DepartmentForm{
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		ManagerID:   d.ManagerID,
		Status:      d.Status,
	}
}

// GenerateDepartmentCode uppercases name, drops everything that is not a
// letter and keeps the first six characters: "Front Office" -> "FRONTO".
func GenerateDepartmentCode(name string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(name) {
		if r <= unicode.MaxASCII && unicode.IsLetter(r) {
			b.WriteRune(r)
			if b.Len() == departmentCodeLength {
				break
			}
		}
	}
	return b.String()
}

// Prepare fills derived fields. In add mode an empty code is generated from
// the name; edit mode never rewrites the code.
func (f *DepartmentForm) Prepare(mode Mode) {
	f.Name = strings.TrimSpace(f.Name)
	f.Code = strings.ToUpper(strings.TrimSpace(f.Code))
	f.Description = strings.TrimSpace(f.Description)
	if mode == ModeAdd && f.Code == "" {
		f.Code = GenerateDepartmentCode(f.Name)
	}
	if f.Status == "" {
		f.Status = models.DepartmentActive
	}
}

func (f DepartmentForm) Validate() FieldErrors {
	errs := FieldErrors{}
	name := strings.TrimSpace(f.Name)
	switch {
	case name == "":
		errs.Add("name", "Department name is required")
	case len(name) < 2:
		errs.Add("name", "Department name must be at least 2 characters")
	case len(name) > 150:
		errs.Add("name", "Department name must be at most 150 characters")
	}

	code := strings.TrimSpace(f.Code)
	if code == "" {
		errs.Add("code", "Department code is required")
	} else if !departmentCodeRegex.MatchString(code) {
		errs.Add("code", "Department code must be 2-20 uppercase letters or digits")
	}

	if f.ManagerID != nil && *f.ManagerID == 0 {
		errs.Add("manager_id", "Manager is invalid")
	}
	if !f.Status.Valid() {
		errs.Add("status", "Status must be Active or Inactive")
	}
	return errs
}

func (f DepartmentForm) Model() models.Department {
	return models.Department{
		Name:        f.Name,
		Code:        f.Code,
		Description: f.Description,
		ManagerID:   f.ManagerID,
		Status:      f.Status,
	}
}

func (f DepartmentForm) Apply(d *models.Department) {
	d.Name = f.Name
	d.Code = f.Code
	d.Description = f.Description
	d.ManagerID = f.ManagerID
	d.Status = f.Status
}
