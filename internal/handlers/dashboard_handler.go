package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/models"
	"personalfinance/internal/services"
)

// DashboardHandler serves derived views and form presets.
type DashboardHandler struct {
	ledgerService services.LedgerServicer
	location      *time.Location
	now           func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler. Months are evaluated
// in loc.
func NewDashboardHandler(ledgerService services.LedgerServicer, loc *time.Location) *DashboardHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &DashboardHandler{ledgerService: ledgerService, location: loc, now: time.Now}
}

// DashboardQuery represents the dashboard query string
type DashboardQuery struct {
	Month string `form:"month" binding:"omitempty,year_month"`
}

// GetDashboard handles the retrieval of the dashboard
// @Summary     Get dashboard
// @Description Total balance, monthly income and expenses, category spending, recent transactions and goal progress
// @Tags        dashboard
// @Produce     json
// @Param       month query string false "Month to summarise (YYYY-MM, default current month)"
// @Success     200 {object} summary.DashboardView "Dashboard"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	var query DashboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month format, use YYYY-MM"))
		return
	}

	month, err := h.monthStart(query.Month)
	if err != nil {
		abortWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month format, use YYYY-MM"))
		return
	}

	c.JSON(http.StatusOK, h.ledgerService.GetDashboard(month))
}

// monthStart returns the first instant of month (YYYY-MM) in the handler's
// location, or of the current month when month is empty.
func (h *DashboardHandler) monthStart(month string) (time.Time, error) {
	if month == "" {
		y, m, _ := h.now().In(h.location).Date()
		return time.Date(y, m, 1, 0, 0, 0, 0, h.location), nil
	}
	return time.ParseInLocation("2006-01", month, h.location)
}

// GetPresets handles the retrieval of entry-form presets
// @Summary     Get presets
// @Description Suggested categories, quick expenses and transaction templates
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} models.Presets "Presets"
// @Router      /presets [get]
func (h *DashboardHandler) GetPresets(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultPresets())
}
