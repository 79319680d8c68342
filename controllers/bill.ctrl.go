package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// BillController : payable endpoints, the mirror of InvoiceController.
type BillController struct {
	svc *service.FinanceService
}

func NewBillController(svc *service.FinanceService) *BillController {
	return &BillController{svc: svc}
}

// List godoc
// @Summary      List bills
// @Description  Returns bills, newest bill date first
// @Produce      json
// @Tags         Bill
// @Success      200  {object}  []models.Bill
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/bills [get]
func (controller *BillController) List(c echo.Context) error {
	bills, err := controller.svc.Bills(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bills)
}

// Create godoc
// @Summary      Create a bill
// @Accept       json
// @Produce      json
// @Tags         Bill
// @Param        bill  body      service.CreateBillParams  True  "Bill"
// @Success      200   {object}  models.Bill
// @Failure      400   {object}  responses.ErrorResponse
// @Router       /v2/bills [post]
func (controller *BillController) Create(c echo.Context) error {
	var body service.CreateBillParams
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load bill request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid bill request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	bill, err := controller.svc.CreateBill(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating bill: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bill)
}

// Update godoc
// @Summary      Update a bill
// @Accept       json
// @Produce      json
// @Tags         Bill
// @Param        id    path      int                true  "Bill ID"
// @Param        bill  body      service.BillPatch  True  "Fields to change"
// @Success      200   {object}  models.Bill
// @Failure      400   {object}  responses.ErrorResponse
// @Failure      404   {object}  responses.ErrorResponse
// @Router       /v2/bills/{id} [put]
func (controller *BillController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.BillPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	bill, err := controller.svc.UpdateBill(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating bill id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bill)
}

// Delete godoc
// @Summary      Delete a bill
// @Produce      json
// @Tags         Bill
// @Param        id  path  int  true  "Bill ID"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/bills/{id} [delete]
func (controller *BillController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteBill(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting bill id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
