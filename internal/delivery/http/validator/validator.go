// Package validator wires go-playground/validator into Echo's request binding.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts go-playground/validator to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New creates an Echo validator backed by go-playground/validator.
func New() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
