package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Kartikpatidar0006/Staffy/internal/domain/employees"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler defines the interface for handling employee-related operations
type EmployeeHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByEmployeeID(ctx *gin.Context)
	DeleteByEmployeeID(ctx *gin.Context)
}

type employeeHandler struct {
	employeeService employees.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(employeeService employees.EmployeeService) EmployeeHandler {
	return &employeeHandler{
		employeeService: employeeService,
	}
}

// Create handles the POST request to register an employee
// @Summary Register an employee
// @Tags Employee
// @Accept json
// @Produce json
// @Param requestBody body CreateEmployeeRequest true "Employee Data"
// @Success 201 {object} EmployeeResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /employees [post]
func (handler *employeeHandler) Create(ctx *gin.Context) {
	var request CreateEmployeeRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		_ = ctx.Error(bindingError(err))
		return
	}

	if err := request.Validate(); err != nil {
		_ = ctx.Error(err)
		return
	}

	summary, err := handler.employeeService.Create(ctx.Request.Context(), request.EmployeeID, request.FullName, request.Email, request.Department)
	if err != nil {
		_ = ctx.Error(translateEmployeeError(err, request.EmployeeID, request.Email))
		return
	}

	ctx.JSON(http.StatusCreated, newEmployeeResponse(summary))
}

// List handles the GET request to list employees, optionally by department
// @Summary List employees
// @Tags Employee
// @Produce json
// @Param department query string false "Department"
// @Success 200 {array} EmployeeResponse
// @Router /employees [get]
func (handler *employeeHandler) List(ctx *gin.Context) {
	query := &employees.Query{Department: ctx.Query("department")}

	summaries, err := handler.employeeService.List(ctx.Request.Context(), query)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	listResponse := make([]EmployeeResponse, 0, len(summaries))
	for _, summary := range summaries {
		listResponse = append(listResponse, newEmployeeResponse(summary))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByEmployeeID handles the GET request to fetch one employee
// @Summary Get an employee by employee ID
// @Tags Employee
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} EmployeeResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{employee_id} [get]
func (handler *employeeHandler) GetByEmployeeID(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")

	summary, err := handler.employeeService.GetByEmployeeID(ctx.Request.Context(), employeeID)
	if err != nil {
		_ = ctx.Error(translateEmployeeError(err, employeeID, ""))
		return
	}

	ctx.JSON(http.StatusOK, newEmployeeResponse(summary))
}

// DeleteByEmployeeID handles the DELETE request for an employee and their attendance
// @Summary Delete an employee
// @Tags Employee
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /employees/{employee_id} [delete]
func (handler *employeeHandler) DeleteByEmployeeID(ctx *gin.Context) {
	employeeID := ctx.Param("employee_id")

	if err := handler.employeeService.DeleteByEmployeeID(ctx.Request.Context(), employeeID); err != nil {
		_ = ctx.Error(translateEmployeeError(err, employeeID, ""))
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: fmt.Sprintf("Employee '%s' deleted successfully", employeeID)})
}

// translateEmployeeError maps domain errors to client-facing HTTP errors
func translateEmployeeError(err error, employeeID, email string) error {
	switch {
	case errors.Is(err, employees.ErrEmployeeNotFound):
		return NewHTTPError(http.StatusNotFound, "Employee not found")
	case errors.Is(err, employees.ErrDuplicateEmployeeID):
		return NewHTTPError(http.StatusConflict, fmt.Sprintf("Employee with ID '%s' already exists", employeeID))
	case errors.Is(err, employees.ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, fmt.Sprintf("Employee with email '%s' already exists", email))
	default:
		return err
	}
}
