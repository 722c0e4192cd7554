package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/staff-api/internal/service"
	appErrors "github.com/edupanel/staff-api/pkg/errors"
	"github.com/edupanel/staff-api/pkg/response"
)

type exportService interface {
	PayoutReport(ctx context.Context, format service.ExportFormat) (*service.ExportResult, error)
}

// ExportHandler streams payout report downloads.
type ExportHandler struct {
	exports exportService
	enabled bool
}

// NewExportHandler constructs a new ExportHandler.
func NewExportHandler(exports exportService, enabled bool) *ExportHandler {
	return &ExportHandler{exports: exports, enabled: enabled}
}

// PayoutReport godoc
// @Summary Download the payout report
// @Tags Payouts
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Router /payouts/report [get]
func (h *ExportHandler) PayoutReport(c *gin.Context) {
	if !h.enabled {
		response.Error(c, appErrors.Clone(appErrors.ErrNotEnabled, "exports are not enabled"))
		return
	}

	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))
	result, err := h.exports.PayoutReport(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.MIME, result.Content)
}
