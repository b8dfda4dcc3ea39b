package handlers

import (
	"fmt"
	"net/http"

	"company-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	employeeService service.EmployeeServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employeeService service.EmployeeServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// GetEmployee handles GET /employee
// @Summary Get employee by ID
// @Tags employees
// @Produce json
// @Param company query string true "Company"
// @Param emp_id query int true "Employee ID"
// @Success 200 {object} SuccessResponse{success=service.EmployeeResponse}
// @Failure 400 {object} ErrorResponse "Invalid company or ID"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employee [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := queryID(c, "emp_id")
	if !ok {
		return
	}

	emp, err := h.employeeService.GetEmployee(c.Request.Context(), c.Query("company"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, emp)
}

// GetEmployees handles GET /employees
// @Summary List employees of a company
// @Tags employees
// @Produce json
// @Param company query string true "Company"
// @Success 200 {object} SuccessResponse{success=[]service.EmployeeResponse}
// @Failure 400 {object} ErrorResponse "Invalid company"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees [get]
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	emps, err := h.employeeService.GetEmployees(c.Request.Context(), c.Query("company"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, emps)
}

// CreateEmployee handles POST /employee
// @Summary Create an employee
// @Description hire_date must be a weekday; dept_id and a non-zero mng_id must exist
// @Tags employees
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param employee body service.CreateEmployeeRequest true "Employee"
// @Success 201 {object} SuccessResponse{success=service.EmployeeResponse}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Department or manager not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employee [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req service.CreateEmployeeRequest
	if !bindBody(c, &req) {
		return
	}

	emp, err := h.employeeService.CreateEmployee(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, emp)
}

// UpdateEmployee handles PUT /employee
// @Summary Replace an employee
// @Tags employees
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param employee body service.UpdateEmployeeRequest true "Employee"
// @Success 200 {object} SuccessResponse{success=service.EmployeeResponse}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Employee, department or manager not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employee [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req service.UpdateEmployeeRequest
	if !bindBody(c, &req) {
		return
	}

	emp, err := h.employeeService.UpdateEmployee(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, emp)
}

// DeleteEmployee handles DELETE /employee
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param company query string true "Company"
// @Param emp_id query int true "Employee ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid company or ID"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employee [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := queryID(c, "emp_id")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Query("company"), id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, fmt.Sprintf("Employee %d deleted.", id))
}
