package db

import "database/sql"

// EnsureSchema bootstraps the employees table on startup. The unique key on
// email is the storage-level backstop for the case-insensitive uniqueness
// rule: utf8mb4 CI collation makes the index reject same-email-different-case
// rows even when two concurrent creates race past the service check.
func EnsureSchema(dbc *sql.DB) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS employees (
			id           CHAR(36)     NOT NULL,
			name         VARCHAR(255) NOT NULL,
			email        VARCHAR(255) NOT NULL,
			department   VARCHAR(255) NOT NULL,
			salary       DOUBLE       NOT NULL,
			joining_date DATE         NOT NULL,
			PRIMARY KEY (id),
			UNIQUE KEY uq_employees_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`

	_, err := dbc.Exec(ddl)
	return err
}
