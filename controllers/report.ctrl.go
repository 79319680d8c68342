package controllers

import (
	"fmt"
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController : spreadsheet exports of the analytics summaries.
type ReportController struct {
	svc *service.FinanceService
}

func NewReportController(svc *service.FinanceService) *ReportController {
	return &ReportController{svc: svc}
}

// Financial godoc
// @Summary      Download the financial summary workbook
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Tags         Report
// @Success      200
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/reports/financial.xlsx [get]
func (controller *ReportController) Financial(c echo.Context) error {
	buf, fileName, err := controller.svc.FinancialReport(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("Error generating financial report: %v", err)
		return writeError(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}
