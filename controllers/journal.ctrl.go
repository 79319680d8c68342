package controllers

import (
	"net/http"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/labstack/echo/v4"
)

// JournalController : journal entry endpoints, including posting.
type JournalController struct {
	svc *service.FinanceService
}

func NewJournalController(svc *service.FinanceService) *JournalController {
	return &JournalController{svc: svc}
}

// List godoc
// @Summary      List journal entries
// @Description  Returns entries with their lines, newest entry date first
// @Produce      json
// @Tags         Journal
// @Success      200  {object}  []models.JournalEntry
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /v2/journal-entries [get]
func (controller *JournalController) List(c echo.Context) error {
	entries, err := controller.svc.JournalEntries(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// Create godoc
// @Summary      Create a journal entry
// @Accept       json
// @Produce      json
// @Tags         Journal
// @Param        entry  body      service.CreateJournalEntryParams  True  "Journal entry"
// @Success      200    {object}  models.JournalEntry
// @Failure      400    {object}  responses.ErrorResponse
// @Router       /v2/journal-entries [post]
func (controller *JournalController) Create(c echo.Context) error {
	var body service.CreateJournalEntryParams
	if err := c.Bind(&body); err != nil {
		c.Logger().Errorf("Failed to load journal entry request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		c.Logger().Errorf("Invalid journal entry request body: %v", err)
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	entry, err := controller.svc.CreateJournalEntry(c.Request().Context(), body)
	if err != nil {
		c.Logger().Errorf("Error creating journal entry: %v", err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

// Update godoc
// @Summary      Update a draft journal entry
// @Accept       json
// @Produce      json
// @Tags         Journal
// @Param        id     path      int                        true  "Entry ID"
// @Param        entry  body      service.JournalEntryPatch  True  "Fields to change"
// @Success      200    {object}  models.JournalEntry
// @Failure      400    {object}  responses.ErrorResponse
// @Failure      404    {object}  responses.ErrorResponse
// @Router       /v2/journal-entries/{id} [put]
func (controller *JournalController) Update(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	var body service.JournalEntryPatch
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, responses.InvalidInputError)
	}
	entry, err := controller.svc.UpdateJournalEntry(c.Request().Context(), id, body)
	if err != nil {
		c.Logger().Errorf("Error updating journal entry id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary      Delete a journal entry and its lines
// @Produce      json
// @Tags         Journal
// @Param        id  path  int  true  "Entry ID"
// @Success      204
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/journal-entries/{id} [delete]
func (controller *JournalController) Delete(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	if err := controller.svc.DeleteJournalEntry(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("Error deleting journal entry id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Post godoc
// @Summary      Post a journal entry
// @Description  Verifies debits equal credits, applies every line to its account balance and finalizes the entry
// @Produce      json
// @Tags         Journal
// @Param        id  path  int  true  "Entry ID"
// @Success      200  {object}  models.JournalEntry
// @Failure      400  {object}  responses.ErrorResponse
// @Failure      404  {object}  responses.ErrorResponse
// @Router       /v2/journal-entries/{id}/post [post]
func (controller *JournalController) Post(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}
	entry, err := controller.svc.PostJournalEntry(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("Error posting journal entry id:%v error: %v", id, err)
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entry)
}
