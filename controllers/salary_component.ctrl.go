package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// SalaryComponentController : reference store for recurring allowances and
// deductions.
type SalaryComponentController struct {
	svc *service.FinanceService
}

func NewSalaryComponentController(svc *service.FinanceService) *SalaryComponentController {
	return &SalaryComponentController{svc: svc}
}

func (controller *SalaryComponentController) List(c echo.Context) error {
	components, err := controller.svc.SalaryComponents(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, components)
}

func (controller *SalaryComponentController) Create(c echo.Context) error {
	var body service.CreateSalaryComponentParams
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	component, err := controller.svc.CreateSalaryComponent(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating salary component: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, component)
}

func (controller *SalaryComponentController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.SalaryComponentPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	component, err := controller.svc.UpdateSalaryComponent(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating salary component id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, component)
}

func (controller *SalaryComponentController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteSalaryComponent(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting salary component id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
