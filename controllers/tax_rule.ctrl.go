package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// TaxRuleController : reference store for tax brackets.
type TaxRuleController struct {
	svc *service.FinanceService
}

func NewTaxRuleController(svc *service.FinanceService) *TaxRuleController {
	return &TaxRuleController{svc: svc}
}

func (controller *TaxRuleController) List(c echo.Context) error {
	rules, err := controller.svc.TaxRules(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rules)
}

func (controller *TaxRuleController) Create(c echo.Context) error {
	var body service.CreateTaxRuleParams
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	rule, err := controller.svc.CreateTaxRule(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating tax rule: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rule)
}

func (controller *TaxRuleController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.TaxRulePatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	rule, err := controller.svc.UpdateTaxRule(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating tax rule id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rule)
}

func (controller *TaxRuleController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteTaxRule(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting tax rule id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
