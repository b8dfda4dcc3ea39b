package handlers

import (
	"fmt"
	"net/http"

	"company-services-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves spreadsheet downloads
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
	}
}

// ExportEmployees handles GET /employees/export
// @Summary Download employees as xlsx
// @Tags employees
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param company query string true "Company"
// @Success 200 {file} file "Employees workbook"
// @Failure 400 {object} ErrorResponse "Invalid company"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /employees/export [get]
func (h *ExportHandler) ExportEmployees(c *gin.Context) {
	buf, filename, err := h.exportService.ExportEmployees(c.Request.Context(), c.Query("company"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
