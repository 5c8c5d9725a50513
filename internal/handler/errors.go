package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperr "meatmarket/internal/errors"
)

// ErrorHandler renders every error as {"error": {"message", "status"}}.
// Tagged service errors keep their message; untagged errors become a 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := http.StatusInternalServerError, "internal server error"

	var appErr *apperr.Error
	var validationErrs validator.ValidationErrors
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status, message = appErr.StatusCode(), appErr.Message
	case errors.As(err, &validationErrs):
		status, message = http.StatusBadRequest, validationErrs.Error()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	}

	if status >= http.StatusInternalServerError {
		c.Logger().Error(err)
	}

	body := apperr.NewHTTPError(status, message).ToErrorResponse()
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		c.Logger().Error(err)
	}
}
