package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"ems-backend/internal/domain"
	"ems-backend/internal/domain/models"
	"ems-backend/internal/repositories"
	"ems-backend/internal/utils"

	"github.com/google/uuid"
)

const defaultPageSize = 10

// sortColumns is the fixed allow-list of sortable fields, mapping the API
// names to their columns.
var sortColumns = map[string]string{
	"id":          "id",
	"name":        "name",
	"email":       "email",
	"department":  "department",
	"salary":      "salary",
	"joiningDate": "joining_date",
}

type EmployeeService struct {
	Repo      repositories.EmployeeRepository
	RequestID string
}

// PageQuery carries the pagination and sort inputs of a list/search call.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// PageResponse is the transport envelope for one page of records.
type PageResponse struct {
	Content       []models.Employee `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	Last          bool              `json:"last"`
}

func sanitizeSortBy(sortBy string) string {
	if _, ok := sortColumns[sortBy]; !ok {
		log.Printf("[EMPLOYEE] invalid sort field %q, defaulting to \"id\"", sortBy)
		return "id"
	}
	return sortBy
}

func sortDirection(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "desc") {
		return "DESC"
	}
	return "ASC"
}

func validateEmployee(in *models.Employee) error {
	if in == nil {
		return domain.ValidationError{Msg: "employee data cannot be nil"}
	}

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Department = strings.TrimSpace(in.Department)

	if in.Name == "" {
		return domain.ValidationError{Field: "name", Msg: "employee name is required"}
	}
	if in.Email == "" {
		return domain.ValidationError{Field: "email", Msg: "employee email is required"}
	}
	if in.Department == "" {
		return domain.ValidationError{Field: "department", Msg: "employee department is required"}
	}
	if in.Salary <= 0 {
		return domain.ValidationError{Field: "salary", Msg: "salary must be greater than zero"}
	}

	d, err := utils.ParseDate(in.JoiningDate)
	if err != nil {
		return domain.ValidationError{Field: "joiningDate", Msg: "joining date must be in YYYY-MM-DD format"}
	}
	in.JoiningDate = utils.FormatDate(d)

	return nil
}

// SaveOrUpdate creates a record when id is blank and updates one otherwise.
// On update every field except the id is overwritten from the payload.
func (s EmployeeService) SaveOrUpdate(id string, in models.Employee) (models.Employee, error) {
	if err := validateEmployee(&in); err != nil {
		return models.Employee{}, err
	}

	id = strings.TrimSpace(id)
	if id != "" {
		existing, err := s.Repo.GetByID(id)
		if errors.Is(err, sql.ErrNoRows) {
			return models.Employee{}, domain.NotFoundError{Resource: "employee", ID: id}
		}
		if err != nil {
			return models.Employee{}, domain.InternalError{Msg: "failed to load employee", Err: err}
		}

		dup, err := s.Repo.ExistsByEmail(in.Email, id)
		if err != nil {
			return models.Employee{}, domain.InternalError{Msg: "failed to check employee email", Err: err}
		}
		if dup {
			return models.Employee{}, domain.ConflictError{
				Resource: "employee",
				Msg:      fmt.Sprintf("employee with email %s already exists", in.Email),
			}
		}

		existing.ApplyFrom(in)
		if err := s.Repo.Update(existing); err != nil {
			return models.Employee{}, domain.InternalError{Msg: "failed to update employee", Err: err}
		}

		utils.LogEvent(s.RequestID, "employee", "update", "id="+existing.ID)
		return existing, nil
	}

	dup, err := s.Repo.ExistsByEmail(in.Email, "")
	if err != nil {
		return models.Employee{}, domain.InternalError{Msg: "failed to check employee email", Err: err}
	}
	if dup {
		return models.Employee{}, domain.ConflictError{
			Resource: "employee",
			Msg:      fmt.Sprintf("employee with email %s already exists", in.Email),
		}
	}

	in.ID = uuid.NewString()
	if err := s.Repo.Insert(in); err != nil {
		return models.Employee{}, domain.InternalError{Msg: "failed to create employee", Err: err}
	}

	utils.LogEvent(s.RequestID, "employee", "create", "id="+in.ID)
	return in, nil
}

func (s EmployeeService) FindByID(id string) (models.Employee, error) {
	id = strings.TrimSpace(id)
	e, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Employee{}, domain.NotFoundError{Resource: "employee", ID: id}
	}
	if err != nil {
		return models.Employee{}, domain.InternalError{Msg: "failed to load employee", Err: err}
	}
	return e, nil
}

func (s EmployeeService) Delete(id string) error {
	id = strings.TrimSpace(id)
	e, err := s.Repo.GetByID(id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: "employee", ID: id}
	}
	if err != nil {
		return domain.InternalError{Msg: "failed to load employee", Err: err}
	}

	if err := s.Repo.Delete(e.ID); err != nil {
		return domain.InternalError{Msg: "failed to delete employee", Err: err}
	}

	utils.LogEvent(s.RequestID, "employee", "delete", "id="+e.ID)
	return nil
}

// Search runs one paged, filtered, sorted query and wraps the result in a
// page envelope. An out-of-range page is not an error: it yields empty
// content with correct totals.
func (s EmployeeService) Search(q PageQuery, f repositories.EmployeeFilter) (PageResponse, error) {
	page := q.Page
	if page < 0 {
		page = 0
	}
	size := q.Size
	if size <= 0 {
		size = defaultPageSize
	}

	column := sortColumns[sanitizeSortBy(q.SortBy)]
	dir := sortDirection(q.SortDir)

	rows, total, err := s.Repo.Page(f, column, dir, page, size)
	if err != nil {
		return PageResponse{}, domain.InternalError{Msg: "failed to page employees", Err: err}
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	utils.LogEvent(s.RequestID, "employee", "page",
		fmt.Sprintf("page=%d size=%d total=%d", page, size, total))

	return PageResponse{
		Content:       rows,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		Last:          page >= totalPages-1,
	}, nil
}
