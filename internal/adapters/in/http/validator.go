package http

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// RequestValidator plugs go-playground/validator into echo so request
// payloads are checked against their struct tags at binding time.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used by the HTTP server.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Field-level violations surface as a
// 400 with the offending fields listed.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		var violations validator.ValidationErrors
		fields := make([]string, 0)
		if errors.As(err, &violations) {
			for _, violation := range violations {
				fields = append(fields, violation.Field()+" failed "+violation.Tag())
			}
		}
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{
			"message": "request validation failed",
			"fields":  fields,
		})
	}
	return nil
}
