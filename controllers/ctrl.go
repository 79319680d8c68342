package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jetixia-Updates/oddos-finance/lib/responses"
	"github.com/Jetixia-Updates/oddos-finance/lib/service"
	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

func paramID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// writeError maps service failures onto the documented error payloads.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, responses.NotFoundError)
	case errors.Is(err, service.ErrUnbalancedEntry):
		return c.JSON(http.StatusBadRequest, responses.UnbalancedEntryError)
	case errors.Is(err, service.ErrAlreadyPosted):
		return c.JSON(http.StatusBadRequest, responses.AlreadyPostedError)
	default:
		sentry.CaptureException(err)
		return c.JSON(http.StatusInternalServerError, responses.GeneralServerError)
	}
}
