package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"ems-backend/internal/domain"
	"ems-backend/internal/domain/models"
	"ems-backend/internal/repositories"
	"ems-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// RosterService produces the printable employee roster PDF, optionally
// narrowed to one department.
type RosterService struct {
	Repo      repositories.EmployeeRepository
	RequestID string
	Loader    func(department string) ([]models.Employee, error)
}

func (s RosterService) GenerateRoster(department string) ([]byte, string, error) {
	department = strings.TrimSpace(department)

	employees, err := s.load(department)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "failed to load employees for roster", Err: err}
	}

	utils.LogEvent(s.RequestID, "roster", "generate",
		fmt.Sprintf("department=%s count=%d", safe(department, "ALL"), len(employees)))

	return buildRosterPDF(department, employees)
}

func (s RosterService) load(department string) ([]models.Employee, error) {
	if s.Loader != nil {
		return s.Loader(department)
	}
	return s.Repo.ListAll(repositories.EmployeeFilter{Department: department})
}

func buildRosterPDF(department string, employees []models.Employee) ([]byte, string, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Employee Roster", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "EMPLOYEE ROSTER")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Department : "+safe(department, "All departments"))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Generated  : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	widths := []float64{70, 75, 50, 35, 35}
	headers := []string{"Name", "Email", "Department", "Salary", "Joining Date"}

	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, e := range employees {
		cells := []string{
			e.Name,
			e.Email,
			e.Department,
			fmt.Sprintf("%.2f", e.Salary),
			e.JoiningDate,
		}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 7, safe(v, "-"), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(employees) == 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 7, "No employees match this roster.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("EMPLOYEE_ROSTER_%s_%s.pdf",
		safeFilenamePart(safe(department, "ALL")),
		time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func safeFilenamePart(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
