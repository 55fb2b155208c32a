package handlers

import (
	"client-directory/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator adapts the shared validator to echo. Failures come back as
// validator.ValidationErrors so the central error handler can render them per field.
type CustomValidator struct {
	v *validation.Validator
}

// NewValidator creates a validator with the client_id and sheet_name rules registered
func NewValidator() echo.Validator {
	return &CustomValidator{v: validation.GetValidator()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.GetValidate().Struct(i)
}
