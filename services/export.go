package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"hotelops-backend/models"
)

const staffSheet = "Staff"

var staffHeaders = []string{
	"ID", "First Name", "Last Name", "Email", "Phone", "Department",
	"Designation", "Salary", "Joining Date", "Status",
}

// StaffWorkbook renders staff as a single-sheet xlsx file.
func StaffWorkbook(staff []models.Staff) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", staffSheet); err != nil {
		return nil, err
	}

	for i, h := range staffHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(staffSheet, cell, h); err != nil {
			return nil, err
		}
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(staffSheet, 1, 1, bold)
	}

	for r, s := range staff {
		department := ""
		if s.Department != nil {
			department = s.Department.Name
		}
		joining := ""
		if s.JoiningDate != nil {
			joining = s.JoiningDate.Format("2006-01-02")
		}
		salary, _ := s.Salary.Float64()

		row := []interface{}{
			s.ID, s.FirstName, s.LastName, s.Email, s.Phone, department,
			s.Designation, salary, joining, string(s.Status),
		}
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(staffSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
