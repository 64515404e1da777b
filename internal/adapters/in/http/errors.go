package http

import (
	"errors"
	"net/http"

	"refillstation/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps application errors to HTTP status codes. Classification
// relies on errors.Is against the errs sentinels, so wrapped causes keep
// their category.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrActionIsForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrIllegalTransition), errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrServiceIsUnavailable):
		status = http.StatusServiceUnavailable
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// respondBadRequest reports a malformed request with the given message.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
