package models

// Employee is the single record type used for both transport and storage.
// ID is server-generated on create and ignored on input.
type Employee struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Department  string  `json:"department"`
	Salary      float64 `json:"salary"`
	JoiningDate string  `json:"joiningDate"` // yyyy-MM-dd
}

// ApplyFrom overwrites every mutable field from the incoming payload.
// The id is never touched.
func (e *Employee) ApplyFrom(in Employee) {
	e.Name = in.Name
	e.Email = in.Email
	e.Department = in.Department
	e.Salary = in.Salary
	e.JoiningDate = in.JoiningDate
}
