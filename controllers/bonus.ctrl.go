package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// BonusController : one-off employee payments.
type BonusController struct {
	svc *service.FinanceService
}

func NewBonusController(svc *service.FinanceService) *BonusController {
	return &BonusController{svc: svc}
}

func (controller *BonusController) List(c echo.Context) error {
	bonuses, err := controller.svc.Bonuses(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bonuses)
}

func (controller *BonusController) Create(c echo.Context) error {
	var body service.CreateBonusParams
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	bonus, err := controller.svc.CreateBonus(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating bonus: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bonus)
}

func (controller *BonusController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.BonusPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	bonus, err := controller.svc.UpdateBonus(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating bonus id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, bonus)
}

func (controller *BonusController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteBonus(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting bonus id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
