package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"finmentor/internal/dto"
	"finmentor/internal/errors"
	"finmentor/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportHandler handles report and export endpoints
type ReportHandler struct {
	aggregationService services.AggregationServiceInterface
	reportService      services.ReportServiceInterface
	exportService      services.ExportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	aggregationService services.AggregationServiceInterface,
	reportService services.ReportServiceInterface,
	exportService services.ExportServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		aggregationService: aggregationService,
		reportService:      reportService,
		exportService:      exportService,
	}
}

// MonthlySummary aggregates one calendar month of the user's
// transactions. The month query parameter selects the month; when
// absent the current month is used.
func (h *ReportHandler) MonthlySummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	monthParam := c.QueryParam("month")
	if monthParam == "" {
		summary, err := h.aggregationService.MonthlyReport(userID)
		if err != nil {
			return SendSystemError(c, err)
		}
		return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
	}

	req := dto.MonthlySummaryRequest{Month: monthParam}
	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ReportInvalidMonth)
	}

	parsed, err := time.Parse("2006-01", req.Month)
	if err != nil {
		return SendError(c, errors.ReportInvalidMonth)
	}

	summary, err := h.aggregationService.SummarizeRange(userID, parsed.Year(), parsed.Month())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// Export builds the full financial report and streams it in the
// requested format as a file download.
func (h *ReportHandler) Export(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthInvalidToken)
	}

	var req dto.ExportReportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ReportUnsupportedFormat)
	}

	report, err := h.reportService.BuildFinancialReport(userID)
	if err != nil {
		if stderrors.Is(err, services.ErrNotFound) {
			return SendError(c, errors.AuthInvalidToken)
		}
		return SendError(c, errors.ReportGenerationFailed)
	}

	result, err := h.exportService.Export(report, req.Format)
	if err != nil {
		if stderrors.Is(err, services.ErrUnsupportedFormat) {
			return SendError(c, errors.ReportUnsupportedFormat)
		}
		return SendError(c, errors.ReportExportEncodingError)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, result.Filename))
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
