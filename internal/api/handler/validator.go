package handler

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

// requestValidator adapts go-playground/validator to the echo.Validator
// interface. Tag failures surface as domain.ValidationError so the central
// error handler renders them the same way as pipeline failures.
type requestValidator struct {
	v *validator.Validate
}

// NewValidator returns a validator ready to be assigned to echo.Echo.Validator.
func NewValidator() *requestValidator {
	return &requestValidator{v: validator.New()}
}

// Validate reports only the first failing field, mirroring the ordered
// checks of account creation.
func (rv *requestValidator) Validate(i any) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		return err
	}

	fe := fes[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.NewValidationErrorMsg(field, field+" is required")
	case "email":
		return domain.NewValidationErrorMsg(field, field+" must be a valid email")
	case "min":
		return domain.NewValidationErrorMsg(field, field+" must be at least "+fe.Param())
	default:
		return domain.NewValidationError(field)
	}
}
