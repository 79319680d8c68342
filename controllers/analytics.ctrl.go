package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// AnalyticsController : stateless aggregation endpoints. Every call rescans
// the underlying collections; there is no cache to invalidate.
type AnalyticsController struct {
	svc *service.FinanceService
}

func NewAnalyticsController(svc *service.FinanceService) *AnalyticsController {
	return &AnalyticsController{svc: svc}
}

// Accounting godoc
// @Summary      Accounting summary
// @Description  Revenue, expenses, receivables, payables, cash balance and overdue counts
// @Produce      json
// @Tags         Analytics
// @Success      200  {object}  service.AccountingStats
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/analytics/accounting [get]
func (controller *AnalyticsController) Accounting(c echo.Context) error {
	stats, err := controller.svc.AccountingAnalytics(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error computing accounting analytics: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Payroll godoc
// @Summary      Payroll summary for the current month
// @Produce      json
// @Tags         Analytics
// @Success      200  {object}  service.PayrollStats
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/analytics/payroll [get]
func (controller *AnalyticsController) Payroll(c echo.Context) error {
	stats, err := controller.svc.PayrollAnalytics(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error computing payroll analytics: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
