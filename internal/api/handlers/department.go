package handlers

import (
	"fmt"
	"net/http"

	"company-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DepartmentHandler handles HTTP requests for department operations
type DepartmentHandler struct {
	departmentService service.DepartmentServiceInterface
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(departmentService service.DepartmentServiceInterface) *DepartmentHandler {
	return &DepartmentHandler{
		departmentService: departmentService,
	}
}

// GetDepartment handles GET /department
// @Summary Get department by ID
// @Tags departments
// @Produce json
// @Param company query string true "Company"
// @Param dept_id query int true "Department ID"
// @Success 200 {object} SuccessResponse{success=service.DepartmentResponse}
// @Failure 400 {object} ErrorResponse "Invalid company or ID"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /department [get]
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	id, ok := queryID(c, "dept_id")
	if !ok {
		return
	}

	dept, err := h.departmentService.GetDepartment(c.Request.Context(), c.Query("company"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dept)
}

// GetDepartments handles GET /departments
// @Summary List departments of a company
// @Tags departments
// @Produce json
// @Param company query string true "Company"
// @Success 200 {object} SuccessResponse{success=[]service.DepartmentResponse}
// @Failure 400 {object} ErrorResponse "Invalid company"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /departments [get]
func (h *DepartmentHandler) GetDepartments(c *gin.Context) {
	depts, err := h.departmentService.GetDepartments(c.Request.Context(), c.Query("company"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, depts)
}

// CreateDepartment handles POST /department
// @Summary Create a department
// @Description dept_no must be unique across every company
// @Tags departments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param department body service.CreateDepartmentRequest true "Department"
// @Success 201 {object} SuccessResponse{success=service.DepartmentResponse}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /department [post]
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req service.CreateDepartmentRequest
	if !bindBody(c, &req) {
		return
	}

	dept, err := h.departmentService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, dept)
}

// UpdateDepartment handles PUT /department
// @Summary Replace a department
// @Tags departments
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param department body service.UpdateDepartmentRequest true "Department"
// @Success 200 {object} SuccessResponse{success=service.DepartmentResponse}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /department [put]
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	var req service.UpdateDepartmentRequest
	if !bindBody(c, &req) {
		return
	}

	dept, err := h.departmentService.UpdateDepartment(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, dept)
}

// DeleteDepartment handles DELETE /department
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Param company query string true "Company"
// @Param dept_id query int true "Department ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid company or ID"
// @Failure 404 {object} ErrorResponse "Department not found"
// @Failure 409 {object} ErrorResponse "Department still has employees"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /department [delete]
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	id, ok := queryID(c, "dept_id")
	if !ok {
		return
	}

	if err := h.departmentService.DeleteDepartment(c.Request.Context(), c.Query("company"), id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, fmt.Sprintf("Department %d deleted.", id))
}
