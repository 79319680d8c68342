package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// InvoiceController : receivable endpoints.
type InvoiceController struct {
	svc *service.FinanceService
}

func NewInvoiceController(svc *service.FinanceService) *InvoiceController {
	return &InvoiceController{svc: svc}
}

// List godoc
// @Summary      List invoices
// @Description  Returns invoices, newest invoice date first
// @Produce      json
// @Tags         Invoice
// @Success      200  {object}  []models.Invoice
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/invoices [get]
func (controller *InvoiceController) List(c echo.Context) error {
	invoices, err := controller.svc.Invoices(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invoices)
}

// Create godoc
// @Summary      Create an invoice
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        invoice  body      service.CreateInvoiceParams  True  "Invoice"
// @Success      200      {object}  models.Invoice
// @Failure      400      {object}  responses.ErrorResponse
// @Router       /v2/invoices [post]
func (controller *InvoiceController) Create(c echo.Context) error {
	var body service.CreateInvoiceParams
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid invoice request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	invoice, err := controller.svc.CreateInvoice(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating invoice: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invoice)
}

// Update godoc
// @Summary      Update an invoice
// @Accept       json
// @Produce      json
// @Tags         Invoice
// @Param        id       path      int                   true  "Invoice ID"
// @Param        invoice  body      service.InvoicePatch  True  "Fields to change"
// @Success      200      {object}  models.Invoice
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /v2/invoices/{id} [put]
func (controller *InvoiceController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.InvoicePatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	invoice, err := controller.svc.UpdateInvoice(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating invoice id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, invoice)
}

// Delete godoc
// @Summary      Delete an invoice
// @Produce      json
// @Tags         Invoice
// @Param        id  path  int  true  "Invoice ID"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/invoices/{id} [delete]
func (controller *InvoiceController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteInvoice(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting invoice id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
