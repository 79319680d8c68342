package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// PayrollController : payroll record endpoints. Gross and net pay never come
// from the request body; the service derives them on every write.
type PayrollController struct {
	svc *service.FinanceService
}

func NewPayrollController(svc *service.FinanceService) *PayrollController {
	return &PayrollController{svc: svc}
}

// List godoc
// @Summary      List payroll records
// @Produce      json
// @Tags         Payroll
// @Success      200  {object}  []models.PayrollRecord
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/payroll-records [get]
func (controller *PayrollController) List(c echo.Context) error {
	records, err := controller.svc.PayrollRecords(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

// Create godoc
// @Summary      Create a payroll record
// @Description  Derives gross and net pay from the salary fields
// @Accept       json
// @Produce      json
// @Tags         Payroll
// @Param        record  body      service.CreatePayrollParams  True  "Payroll record"
// @Success      200     {object}  models.PayrollRecord
// @Failure      400     {object}  responses.ErrorResponse
// @Router       /v2/payroll-records [post]
func (controller *PayrollController) Create(c echo.Context) error {
	var body service.CreatePayrollParams
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load payroll request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid payroll request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	record, err := controller.svc.CreatePayrollRecord(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating payroll record: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// Update godoc
// @Summary      Update a payroll record
// @Description  Merges the patch into the stored record before re-deriving pay
// @Accept       json
// @Produce      json
// @Tags         Payroll
// @Param        id      path      int                   true  "Record ID"
// @Param        record  body      service.PayrollPatch  True  "Fields to change"
// @Success      200     {object}  models.PayrollRecord
// @Failure      400     {object}  responses.ErrorResponse
// @Failure      404     {object}  responses.ErrorResponse
// @Router       /v2/payroll-records/{id} [put]
func (controller *PayrollController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.PayrollPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	record, err := controller.svc.UpdatePayrollRecord(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating payroll record id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary      Delete a payroll record
// @Produce      json
// @Tags         Payroll
// @Param        id  path  int  true  "Record ID"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/payroll-records/{id} [delete]
func (controller *PayrollController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeletePayrollRecord(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting payroll record id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
