package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

type HealthController struct {
	svc *service.FinanceService
}

func NewHealthController(svc *service.FinanceService) *HealthController {
	return &HealthController{svc: svc}
}

// Health godoc
// @Summary      Liveness and database check
// @Produce      json
// @Tags         Health
// @Success      200
// @Failure      500
// @Router       /v2/health [get]
func (controller *HealthController) Health(c echo.Context) error {
	if err := controller.svc.DB.PingContext(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusOK)
}
