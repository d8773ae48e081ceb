package forms

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hotelops-backend/models"
)

func TestStaffValidate(t *testing.T) {
	f := StaffForm{Email: "not-an-email", Phone: "abc", Salary: decimal.NewFromInt(-1), DateOfBirth: "1990-13-40", Status: "Fired"}
	errs := f.Validate()
	for _, field := range []string{"first_name", "last_name", "email", "phone", "department_id", "designation", "salary", "date_of_birth", "status"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected error on %s, got %v", field, errs)
		}
	}
}

func TestStaffValidate_Valid(t *testing.T) {
	dept := uint(1)
	f := StaffForm{FirstName: "Ana", LastName: "Lee", Email: "Ana.Lee@Example.com", Phone: "+66 81-234-5678", DepartmentID: &dept, Designation: "Chef", Salary: decimal.NewFromInt(25000)}
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	m := f.Model()
	if m.Email != "ana.lee@example.com" {
		t.Errorf("email not normalized: %q", m.Email)
	}
	if m.Status != models.StaffActive {
		t.Errorf("status default: got %q", m.Status)
	}
}

func TestStaffEditRoundTrip(t *testing.T) {
	dept := uint(2)
	dob := time.Date(1992, 4, 5, 0, 0, 0, 0, time.UTC)
	orig := models.Staff{
		ID:           11,
		FirstName:    "Somchai",
		LastName:     "Dee",
		Email:        "somchai@example.com",
		Phone:        "0812345678",
		Address:      "Bangkok",
		Gender:       "male",
		DateOfBirth:  &dob,
		DepartmentID: &dept,
		Designation:  "Receptionist",
		Salary:       decimal.RequireFromString("18000.50"),
		Status:       models.StaffSuspended,
		ProfileImage: "staff/abc.jpg",
	}

	f := HydrateStaff(orig)
	if err := Submit(ModeEdit, f); err != nil {
		t.Fatalf("submit: %v", err)
	}
	got := orig
	f.Apply(&got)
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip changed record:\n got  %+v\n want %+v", got, orig)
	}
}
