package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "department", "salary", "joining_date"})
}

func TestEmployeeRepositoryPage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := EmployeeRepository{DB: db}
	filter := EmployeeFilter{MinSalary: float64Ptr(80000)}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees WHERE salary > \?`).
		WithArgs(80000.0).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT id, name, email, department, salary, DATE_FORMAT.+ FROM employees WHERE salary > \? ORDER BY salary DESC LIMIT \? OFFSET \?`).
		WithArgs(80000.0, 2, 2).
		WillReturnRows(employeeRows().
			AddRow("id-1", "Ann", "a@x.com", "Eng", 90000.0, "2021-01-01").
			AddRow("id-2", "Bob", "b@x.com", "Eng", 85000.0, "2022-02-02"))

	rows, total, err := repo.Page(filter, "salary", "DESC", 1, 2)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if total != 5 {
		t.Fatalf("total mismatch: got %d want 5", total)
	}
	if len(rows) != 2 || rows[0].ID != "id-1" || rows[1].Salary != 85000.0 {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepositoryPageEmptyResultIsNotNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := EmployeeRepository{DB: db}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`FROM employees ORDER BY id ASC LIMIT \? OFFSET \?`).
		WithArgs(10, 0).
		WillReturnRows(employeeRows())

	rows, total, err := repo.Page(EmployeeFilter{}, "id", "ASC", 0, 10)
	if err != nil {
		t.Fatalf("Page returned error: %v", err)
	}
	if total != 0 || rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil slice with zero total, got %v total=%d", rows, total)
	}
}

func TestExistsByEmailExcludesSelf(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := EmployeeRepository{DB: db}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM employees WHERE LOWER\(email\) = LOWER\(\?\) AND id <> \?`).
		WithArgs("a@x.com", "id-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err := repo.ExistsByEmail("a@x.com", "id-1")
	if err != nil {
		t.Fatalf("ExistsByEmail returned error: %v", err)
	}
	if exists {
		t.Fatalf("expected no duplicate when only match is the excluded id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetByIDPassesThroughNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := EmployeeRepository{DB: db}

	mock.ExpectQuery(`FROM employees WHERE id = \?`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID("missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}
