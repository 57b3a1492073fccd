package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/pkg/errs"
)

// writeError maps domain errors onto HTTP statuses:
//
//	missing order            -> 404
//	claim/delete conflicts   -> 409
//	invalid transitions      -> 409
//	invalid input            -> 400
//	anything else            -> 500
func writeError(ctx echo.Context, err error) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrAlreadyAssigned),
		errors.Is(err, order.ErrNotPending),
		errors.Is(err, order.ErrCannotDelete),
		errors.Is(err, order.ErrInvalidStatusTransition):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
