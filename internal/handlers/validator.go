package handlers

import (
	stderrors "errors"
	"strings"

	"transaction-explorer/internal/validation"

	"github.com/labstack/echo/v4"
)

// FieldErrors is the error c.Validate returns when a query DTO breaks a ledger rule
type FieldErrors []validation.FieldError

func (e FieldErrors) Error() string {
	return "invalid query: " + strings.Join(validation.Details(e), "; ")
}

// queryValidator plugs the ledger query rules into echo
type queryValidator struct {
	rules *validation.Validator
}

// NewValidator returns the echo validator used for every query DTO
func NewValidator() echo.Validator {
	return &queryValidator{rules: validation.GetValidator()}
}

func (v *queryValidator) Validate(i interface{}) error {
	if fieldErrors := v.rules.Struct(i); fieldErrors != nil {
		return FieldErrors(fieldErrors)
	}
	return nil
}

// asFieldErrors unwraps the field errors of a c.Validate failure, or reports the
// raw error as a single request-level entry
func asFieldErrors(err error) FieldErrors {
	var fieldErrors FieldErrors
	if stderrors.As(err, &fieldErrors) {
		return fieldErrors
	}
	return FieldErrors(validation.FromError(err))
}
