package forms

import (
	"strings"

	"github.com/shopspring/decimal"

	"hotelops-backend/models"
)

type StaffForm struct {
	FirstName    string             `json:"first_name"`
	LastName     string             `json:"last_name"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Gender       string             `json:"gender"`
	DateOfBirth  string             `json:"date_of_birth"`
	DepartmentID *uint              `json:"department_id"`
	Designation  string             `json:"designation"`
	Salary       decimal.Decimal    `json:"salary"`
	JoiningDate  string             `json:"joining_date"`
	Status       models.StaffStatus `json:"status"`
	ProfileImage string             `json:"profile_image"`
}

func NewStaffForm() StaffForm {
	return StaffForm{Status: models.StaffActive}
}

func HydrateStaff(s models.Staff) StaffForm {
	return StaffForm{
		FirstName:    s.FirstName,
		LastName:     s.LastName,
		Email:        s.Email,
		Phone:        s.Phone,
		Address:      s.Address,
		Gender:       s.Gender,
		DateOfBirth:  formatDate(s.DateOfBirth),
		DepartmentID: s.DepartmentID,
		Designation:  s.Designation,
		Salary:       s.Salary,
		JoiningDate:  formatDate(s.JoiningDate),
		Status:       s.Status,
		ProfileImage: s.ProfileImage,
	}
}

func (f *StaffForm) Normalize() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.ToLower(strings.TrimSpace(f.Email))
	f.Phone = strings.TrimSpace(f.Phone)
	f.Designation = strings.TrimSpace(f.Designation)
	if f.Status == "" {
		f.Status = models.StaffActive
	}
}

func (f StaffForm) Validate() FieldErrors {
	errs := FieldErrors{}
	f.Normalize()

	if f.FirstName == "" {
		errs.Add("first_name", "First name is required")
	}
	if f.LastName == "" {
		errs.Add("last_name", "Last name is required")
	}
	if f.Email == "" {
		errs.Add("email", "Email is required")
	} else if !IsEmail(f.Email) {
		errs.Add("email", "Email is invalid")
	}
	if f.Phone != "" && !phoneRegex.MatchString(f.Phone) {
		errs.Add("phone", "Phone number is invalid")
	}
	if f.DepartmentID == nil || *f.DepartmentID == 0 {
		errs.Add("department_id", "Department is required")
	}
	if f.Designation == "" {
		errs.Add("designation", "Designation is required")
	}
	if f.Salary.IsNegative() {
		errs.Add("salary", "Salary cannot be negative")
	}
	if _, err := optionalDate(f.DateOfBirth); err != nil {
		errs.Add("date_of_birth", "Date of birth must be in YYYY-MM-DD format")
	}
	if _, err := optionalDate(f.JoiningDate); err != nil {
		errs.Add("joining_date", "Joining date must be in YYYY-MM-DD format")
	}
	if !f.Status.Valid() {
		errs.Add("status", "Status must be Active, Inactive or Suspended")
	}
	return errs
}

func (f StaffForm) Model() models.Staff {
	var s models.Staff
	f.Apply(&s)
	return s
}

func (f StaffForm) Apply(s *models.Staff) {
	f.Normalize()
	dob, _ := optionalDate(f.DateOfBirth)
	joined, _ := optionalDate(f.JoiningDate)
	s.FirstName = f.FirstName
	s.LastName = f.LastName
	s.Email = f.Email
	s.Phone = f.Phone
	s.Address = f.Address
	s.Gender = f.Gender
	s.DateOfBirth = dob
	s.DepartmentID = f.DepartmentID
	s.Designation = f.Designation
	s.Salary = f.Salary
	s.JoiningDate = joined
	s.Status = f.Status
	if f.ProfileImage != "" {
		s.ProfileImage = f.ProfileImage
	}
}
