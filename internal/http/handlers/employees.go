package handlers

import (
	"net/http"

	"ems-backend/internal/domain/models"
	"ems-backend/internal/http/middleware"
	"ems-backend/internal/repositories"
	"ems-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func employeeService(c *gin.Context) services.EmployeeService {
	return services.EmployeeService{
		Repo:      repositories.EmployeeRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func pageQuery(c *gin.Context) services.PageQuery {
	return services.PageQuery{
		Page:    intQuery(c, "page", 0),
		Size:    intQuery(c, "size", 10),
		SortBy:  c.DefaultQuery("sortBy", "id"),
		SortDir: c.DefaultQuery("sortDir", "asc"),
	}
}

// POST /api/employees
func CreateEmployee(c *gin.Context) {
	var in models.Employee
	if !BindJSONOrError(c, &in) {
		return
	}

	out, err := employeeService(c).SaveOrUpdate("", in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/employees/:id
func UpdateEmployee(c *gin.Context) {
	var in models.Employee
	if !BindJSONOrError(c, &in) {
		return
	}

	out, err := employeeService(c).SaveOrUpdate(c.Param("id"), in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /api/employees/:id
func DeleteEmployee(c *gin.Context) {
	if err := employeeService(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/employees/:id
//
// Gin cannot register /employees/search next to /employees/:id, so the
// wildcard route dispatches the static suffix itself.
func GetEmployeeByID(c *gin.Context) {
	id := c.Param("id")
	if id == "search" {
		SearchEmployees(c)
		return
	}

	out, err := employeeService(c).FindByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/employees
func ListEmployees(c *gin.Context) {
	filter := repositories.EmployeeFilter{
		Department: c.Query("department"),
		MinSalary:  floatQuery(c, "minSalary"),
		Name:       c.Query("name"),
	}

	res, err := employeeService(c).Search(pageQuery(c), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/employees/search
func SearchEmployees(c *gin.Context) {
	filter := repositories.EmployeeFilter{
		Department:      c.Query("department"),
		MinSalary:       floatQuery(c, "minSalary"),
		MaxSalary:       floatQuery(c, "maxSalary"),
		Name:            c.Query("name"),
		JoiningDateFrom: c.Query("joiningDateFrom"),
		JoiningDateTo:   c.Query("joiningDateTo"),
	}

	res, err := employeeService(c).Search(pageQuery(c), filter)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/reports/employees
func EmployeeRosterPDF(c *gin.Context) {
	svc := services.RosterService{
		Repo:      repositories.EmployeeRepository{},
		RequestID: middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateRoster(c.Query("department"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
