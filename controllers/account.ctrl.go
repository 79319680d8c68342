package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// AccountController : chart-of-accounts endpoints.
type AccountController struct {
	svc *service.FinanceService
}

func NewAccountController(svc *service.FinanceService) *AccountController {
	return &AccountController{svc: svc}
}

// List godoc
// @Summary      List accounts
// @Description  Returns the full chart of accounts
// @Produce      json
// @Tags         Account
// @Success      200  {object}  []models.Account
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/accounts [get]
func (controller *AccountController) List(c echo.Context) error {
	accounts, err := controller.svc.Accounts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, accounts)
}

// Create godoc
// @Summary      Create an account
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        account  body      service.CreateAccountParams  True  "Account"
// @Success      200      {object}  models.Account
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /v2/accounts [post]
func (controller *AccountController) Create(c echo.Context) error {
	var body service.CreateAccountParams
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load account request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid account request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	account, err := controller.svc.CreateAccount(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating account: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, account)
}

// Update godoc
// @Summary      Update an account
// @Accept       json
// @Produce      json
// @Tags         Account
// @Param        id       path      int                   true  "Account ID"
// @Param        account  body      service.AccountPatch  True  "Fields to change"
// @Success      200      {object}  models.Account
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Router       /v2/accounts/{id} [put]
func (controller *AccountController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.AccountPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	account, err := controller.svc.UpdateAccount(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating account id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, account)
}

// Delete godoc
// @Summary      Delete an account
// @Produce      json
// @Tags         Account
// @Param        id  path  int  true  "Account ID"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/accounts/{id} [delete]
func (controller *AccountController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteAccount(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting account id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
