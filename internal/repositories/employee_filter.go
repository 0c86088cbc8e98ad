package repositories

import (
	"strings"

	"ems-backend/internal/utils"
)

// EmployeeFilter holds the optional search inputs. Blank strings and nil
// numbers contribute no condition; a date that does not parse as
// YYYY-MM-DD is treated as absent, never as an error.
type EmployeeFilter struct {
	Department      string
	MinSalary       *float64
	MaxSalary       *float64
	Name            string
	JoiningDateFrom string
	JoiningDateTo   string
}

type condition struct {
	expr string
	args []any
}

func (f EmployeeFilter) conditions() []condition {
	conds := []condition{}

	// BINARY keeps the department match case-sensitive under the table's
	// CI collation.
	if dept := strings.TrimSpace(f.Department); dept != "" {
		conds = append(conds, condition{"BINARY department = ?", []any{dept}})
	}
	if f.MinSalary != nil {
		conds = append(conds, condition{"salary > ?", []any{*f.MinSalary}})
	}
	if f.MaxSalary != nil {
		conds = append(conds, condition{"salary < ?", []any{*f.MaxSalary}})
	}
	if name := strings.TrimSpace(f.Name); name != "" {
		conds = append(conds, condition{"LOWER(name) LIKE ?", []any{"%" + escapeLike(strings.ToLower(name)) + "%"}})
	}
	if from, ok := filterDate(f.JoiningDateFrom); ok {
		conds = append(conds, condition{"joining_date >= ?", []any{from}})
	}
	if to, ok := filterDate(f.JoiningDateTo); ok {
		conds = append(conds, condition{"joining_date <= ?", []any{to}})
	}

	return conds
}

// whereClause folds the present conditions with AND. An empty filter
// produces no WHERE at all.
func (f EmployeeFilter) whereClause() (string, []any) {
	conds := f.conditions()
	if len(conds) == 0 {
		return "", nil
	}

	exprs := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for _, c := range conds {
		exprs = append(exprs, c.expr)
		args = append(args, c.args...)
	}
	return " WHERE " + strings.Join(exprs, " AND "), args
}

func filterDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if _, err := utils.ParseDate(s); err != nil {
		return "", false
	}
	return s, true
}

// escapeLike neutralizes LIKE metacharacters in user input.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return r.Replace(s)
}
