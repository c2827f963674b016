package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/budgettrackr/budget_tracker_app/internal/core/ports/services"
	"github.com/budgettrackr/budget_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// defaultReportMonths is the window reports cover when no range is given.
const defaultReportMonths = 6

// reportingHandler handles the read-only report endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// registerReportingRoutes sets up the routes for reports.
func registerReportingRoutes(rg *gin.RouterGroup, svc portssvc.ReportingSvcFacade) {
	h := &reportingHandler{reportingService: svc}
	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.monthlySummary)
		reports.GET("/spend-by-category", h.spendByCategory)
	}
}

// resolveRange fills in the default window (last defaultReportMonths months,
// ending today) for whichever bound is absent.
func resolveRange(params dto.ReportRangeParams) (time.Time, time.Time) {
	to := time.Now().UTC()
	if params.To != nil {
		to = *params.To
	}
	from := to.AddDate(0, -defaultReportMonths, 0)
	if params.From != nil {
		from = *params.From
	}
	return from, to
}

// monthlySummary godoc
// @Summary Monthly income/expense summary
// @Description Aggregates the user's income and expenses per calendar month over the requested range. Defaults to the last 6 months.
// @Tags reports
// @Produce json
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {object} domain.SummaryReport
// @Failure 400 {object} ErrorResponse "from is after to"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) monthlySummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	from, to := resolveRange(params)

	report, err := h.reportingService.MonthlySummary(c.Request.Context(), userID, from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to build summary report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// spendByCategory godoc
// @Summary Spend by category
// @Description Totals the user's expenses per category over the requested range, largest first. Defaults to the last 6 months.
// @Tags reports
// @Produce json
// @Param from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param to query string false "Inclusive end date (YYYY-MM-DD)"
// @Success 200 {array} domain.CategorySpendRow
// @Failure 400 {object} ErrorResponse "from is after to"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/spend-by-category [get]
func (h *reportingHandler) spendByCategory(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var params dto.ReportRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	from, to := resolveRange(params)

	rows, err := h.reportingService.SpendByCategory(c.Request.Context(), userID, from, to)
	if err != nil {
		respondServiceError(c, err, "Failed to build category spend report")
		return
	}
	c.JSON(http.StatusOK, rows)
}
