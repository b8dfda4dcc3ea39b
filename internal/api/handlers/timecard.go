package handlers

import (
	"fmt"
	"net/http"

	"company-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TimecardHandler handles HTTP requests for timecard operations
type TimecardHandler struct {
	timecardService service.TimecardServiceInterface
}

// NewTimecardHandler creates a new timecard handler
func NewTimecardHandler(timecardService service.TimecardServiceInterface) *TimecardHandler {
	return &TimecardHandler{
		timecardService: timecardService,
	}
}

// GetTimecard handles GET /timecard
// @Summary Get timecard by ID
// @Tags timecards
// @Produce json
// @Param company query string true "Company"
// @Param timecard_id query int true "Timecard ID"
// @Success 200 {object} SuccessResponse{success=service.TimecardResponse}
// @Failure 400 {object} ErrorResponse "Invalid company or ID"
// @Failure 404 {object} ErrorResponse "Timecard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /timecard [get]
func (h *TimecardHandler) GetTimecard(c *gin.Context) {
	id, ok := queryID(c, "timecard_id")
	if !ok {
		return
	}

	card, err := h.timecardService.GetTimecard(c.Request.Context(), c.Query("company"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, card)
}

// GetTimecards handles GET /timecards
// @Summary List timecards of an employee
// @Tags timecards
// @Produce json
// @Param company query string true "Company"
// @Param emp_id query int true "Employee ID"
// @Success 200 {object} SuccessResponse{success=[]service.TimecardResponse}
// @Failure 400 {object} ErrorResponse "Invalid company or ID"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /timecards [get]
func (h *TimecardHandler) GetTimecards(c *gin.Context) {
	empID, ok := queryID(c, "emp_id")
	if !ok {
		return
	}

	cards, err := h.timecardService.GetTimecards(c.Request.Context(), c.Query("company"), empID)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, cards)
}

// CreateTimecard handles POST /timecard
// @Summary Create a timecard
// @Description end_time must be after start_time; an employee cannot have two timecards starting at the same time
// @Tags timecards
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param timecard body service.CreateTimecardRequest true "Timecard"
// @Success 201 {object} SuccessResponse{success=service.TimecardResponse}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Duplicate start_time"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /timecard [post]
func (h *TimecardHandler) CreateTimecard(c *gin.Context) {
	var req service.CreateTimecardRequest
	if !bindBody(c, &req) {
		return
	}

	card, err := h.timecardService.CreateTimecard(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, card)
}

// UpdateTimecard handles PUT /timecard
// @Summary Replace a timecard
// @Tags timecards
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param timecard body service.UpdateTimecardRequest true "Timecard"
// @Success 200 {object} SuccessResponse{success=service.TimecardResponse}
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Timecard or employee not found"
// @Failure 409 {object} ErrorResponse "Duplicate start_time"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /timecard [put]
func (h *TimecardHandler) UpdateTimecard(c *gin.Context) {
	var req service.UpdateTimecardRequest
	if !bindBody(c, &req) {
		return
	}

	card, err := h.timecardService.UpdateTimecard(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, card)
}

// DeleteTimecard handles DELETE /timecard
// @Summary Delete a timecard
// @Tags timecards
// @Produce json
// @Param company query string true "Company"
// @Param timecard_id query int true "Timecard ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse "Invalid company or ID"
// @Failure 404 {object} ErrorResponse "Timecard not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /timecard [delete]
func (h *TimecardHandler) DeleteTimecard(c *gin.Context) {
	id, ok := queryID(c, "timecard_id")
	if !ok {
		return
	}

	if err := h.timecardService.DeleteTimecard(c.Request.Context(), c.Query("company"), id); err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, fmt.Sprintf("Timecard %d deleted.", id))
}
