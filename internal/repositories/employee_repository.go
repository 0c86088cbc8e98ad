package repositories

import (
	"database/sql"
	"strings"

	intconfig "ems-backend/internal/config"
	"ems-backend/internal/domain/models"
)

// joining_date is selected pre-formatted so the record carries the wire
// representation regardless of the driver's parseTime setting.
const employeeColumns = "id, name, email, department, salary, DATE_FORMAT(joining_date, '%Y-%m-%d')"

type EmployeeRepository struct {
	DB *sql.DB
}

func (r EmployeeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID returns sql.ErrNoRows untouched; the service layer owns the
// not-found policy.
func (r EmployeeRepository) GetByID(id string) (models.Employee, error) {
	var e models.Employee
	err := r.db().QueryRow(
		`SELECT `+employeeColumns+` FROM employees WHERE id = ? LIMIT 1`, id,
	).Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Salary, &e.JoiningDate)
	return e, err
}

// ExistsByEmail checks email uniqueness case-insensitively. A non-empty
// excludeID leaves the record being updated out of the check.
func (r EmployeeRepository) ExistsByEmail(email, excludeID string) (bool, error) {
	q := `SELECT COUNT(*) FROM employees WHERE LOWER(email) = LOWER(?)`
	args := []any{strings.TrimSpace(email)}
	if excludeID != "" {
		q += ` AND id <> ?`
		args = append(args, excludeID)
	}

	var n int64
	if err := r.db().QueryRow(q, args...).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r EmployeeRepository) Insert(e models.Employee) error {
	_, err := r.db().Exec(
		`INSERT INTO employees (id, name, email, department, salary, joining_date) VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Email, e.Department, e.Salary, e.JoiningDate,
	)
	return err
}

func (r EmployeeRepository) Update(e models.Employee) error {
	_, err := r.db().Exec(
		`UPDATE employees SET name=?, email=?, department=?, salary=?, joining_date=? WHERE id=?`,
		e.Name, e.Email, e.Department, e.Salary, e.JoiningDate, e.ID,
	)
	return err
}

func (r EmployeeRepository) Delete(id string) error {
	_, err := r.db().Exec(`DELETE FROM employees WHERE id = ?`, id)
	return err
}

// Page runs one counted page query. sortColumn and sortDir must come from
// the service sanitizer; they are interpolated, not bound.
func (r EmployeeRepository) Page(f EmployeeFilter, sortColumn, sortDir string, page, size int) ([]models.Employee, int64, error) {
	db := r.db()
	where, args := f.whereClause()

	var total int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM employees`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT ` + employeeColumns + ` FROM employees` + where +
		` ORDER BY ` + sortColumn + ` ` + sortDir + ` LIMIT ? OFFSET ?`
	rows, err := db.Query(q, append(append([]any{}, args...), size, page*size)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := scanEmployees(rows)
	return out, total, err
}

// ListAll returns every matching record ordered by name, for exports.
func (r EmployeeRepository) ListAll(f EmployeeFilter) ([]models.Employee, error) {
	where, args := f.whereClause()
	rows, err := r.db().Query(
		`SELECT `+employeeColumns+` FROM employees`+where+` ORDER BY name ASC, id ASC`, args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEmployees(rows)
}

func scanEmployees(rows *sql.Rows) ([]models.Employee, error) {
	out := []models.Employee{}
	for rows.Next() {
		var e models.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Department, &e.Salary, &e.JoiningDate); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
