package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fontcraft/chat-core/internal/models"
)

func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			// keep the code and message echo already chose
		case models.IsNotFound(err):
			he = &echo.HTTPError{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			}
		case models.IsValidation(err):
			he = &echo.HTTPError{
				Code:    http.StatusBadRequest,
				Message: err.Error(),
			}
		case models.IsTransport(err):
			he = &echo.HTTPError{
				Code:    http.StatusBadGateway,
				Message: err.Error(),
			}
		default:
			c.Logger().Error(err)
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		if !c.Response().Committed {
			if c.Request().Method == http.MethodHead {
				err = c.NoContent(he.Code)
			} else {
				err = c.JSON(he.Code, he)
			}
			if err != nil {
				c.Logger().Error(err)
			}
		}
	}
}
