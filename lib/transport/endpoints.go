package transport

import (
	"github.com/Jetixia-Updates/oddos-finance/controllers"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.FinanceService, e *echo.Echo, secured *echo.Group) {
	e.GET("/v2/health", controllers.NewHealthController(svc).Health)

	accountCtrl := controllers.NewAccountController(svc)
	secured.GET("/v2/accounts", accountCtrl.List)
	secured.POST("/v2/accounts", accountCtrl.Create)
	secured.PUT("/v2/accounts/:id", accountCtrl.Update)
	secured.DELETE("/v2/accounts/:id", accountCtrl.Delete)

	journalCtrl := controllers.NewJournalController(svc)
	secured.GET("/v2/journal-entries", journalCtrl.List)
	secured.POST("/v2/journal-entries", journalCtrl.Create)
	secured.PUT("/v2/journal-entries/:id", journalCtrl.Update)
	secured.DELETE("/v2/journal-entries/:id", journalCtrl.Delete)
	secured.POST("/v2/journal-entries/:id/post", journalCtrl.Post)

	invoiceCtrl := controllers.NewInvoiceController(svc)
	secured.GET("/v2/invoices", invoiceCtrl.List)
	secured.POST("/v2/invoices", invoiceCtrl.Create)
	secured.PUT("/v2/invoices/:id", invoiceCtrl.Update)
	secured.DELETE("/v2/invoices/:id", invoiceCtrl.Delete)

	billCtrl := controllers.NewBillController(svc)
	secured.GET("/v2/bills", billCtrl.List)
	secured.POST("/v2/bills", billCtrl.Create)
	secured.PUT("/v2/bills/:id", billCtrl.Update)
	secured.DELETE("/v2/bills/:id", billCtrl.Delete)

	payrollCtrl := controllers.NewPayrollController(svc)
	secured.GET("/v2/payroll-records", payrollCtrl.List)
	secured.POST("/v2/payroll-records", payrollCtrl.Create)
	secured.PUT("/v2/payroll-records/:id", payrollCtrl.Update)
	secured.DELETE("/v2/payroll-records/:id", payrollCtrl.Delete)

	componentCtrl := controllers.NewSalaryComponentController(svc)
	secured.GET("/v2/salary-components", componentCtrl.List)
	secured.POST("/v2/salary-components", componentCtrl.Create)
	secured.PUT("/v2/salary-components/:id", componentCtrl.Update)
	secured.DELETE("/v2/salary-components/:id", componentCtrl.Delete)

	taxRuleCtrl := controllers.NewTaxRuleController(svc)
	secured.GET("/v2/tax-rules", taxRuleCtrl.List)
	secured.POST("/v2/tax-rules", taxRuleCtrl.Create)
	secured.PUT("/v2/tax-rules/:id", taxRuleCtrl.Update)
	secured.DELETE("/v2/tax-rules/:id", taxRuleCtrl.Delete)

	bonusCtrl := controllers.NewBonusController(svc)
	secured.GET("/v2/bonuses", bonusCtrl.List)
	secured.POST("/v2/bonuses", bonusCtrl.Create)
	secured.PUT("/v2/bonuses/:id", bonusCtrl.Update)
	secured.DELETE("/v2/bonuses/:id", bonusCtrl.Delete)

	analyticsCtrl := controllers.NewAnalyticsController(svc)
	secured.GET("/v2/analytics/accounting", analyticsCtrl.Accounting)
	secured.GET("/v2/analytics/payroll", analyticsCtrl.Payroll)
	secured.GET("/v2/reports/financial.xlsx", controllers.NewReportController(svc).Financial)
}
