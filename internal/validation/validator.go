package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"transaction-explorer/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with ledger query rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// FieldError describes one rejected request field
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("date_bound", validateDateBound)
	_ = v.RegisterValidation("amount_bound", validateAmountBound)
	_ = v.RegisterValidation("page_number", validatePageNumber)
	_ = v.RegisterValidation("calendar_month", validateCalendarMonth)
	_ = v.RegisterValidation("calendar_year", validateCalendarYear)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns its field errors in declaration order, or nil
func (v *Validator) Struct(s interface{}) []FieldError {
	return FromError(v.validate.Struct(s))
}

// FromError converts a validator error into field errors, or nil when err is nil
func FromError(err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "request", Tag: "invalid", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: messageFor(fe),
		})
	}
	return fieldErrors
}

// Details formats field errors as response detail lines
func Details(fieldErrors []FieldError) []string {
	details := make([]string, len(fieldErrors))
	for i, fe := range fieldErrors {
		details[i] = fe.String()
	}
	return details
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "date_bound":
		return "must be an RFC 3339 timestamp or a YYYY-MM-DD date"
	case "amount_bound":
		return "must be a number of cents"
	case "page_number":
		return "must be an integer"
	case "calendar_month":
		return "must be an integer between 1 and 12"
	case "calendar_year":
		return "must be an integer between 1 and 9999"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// Custom validation functions

// validateDateBound accepts RFC 3339 timestamps and bare calendar dates
func validateDateBound(fl validator.FieldLevel) bool {
	raw := strings.TrimSpace(fl.Field().String())
	if _, err := models.ParseTimestamp(raw); err == nil {
		return true
	}
	_, err := time.Parse(models.DayKeyLayout, raw)
	return err == nil
}

// validateAmountBound accepts any decimal number, including negative bounds
func validateAmountBound(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validatePageNumber(fl validator.FieldLevel) bool {
	_, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateCalendarMonth(fl validator.FieldLevel) bool {
	return intInRange(fl.Field(), 1, 12)
}

func validateCalendarYear(fl validator.FieldLevel) bool {
	return intInRange(fl.Field(), 1, 9999)
}

func intInRange(field reflect.Value, minValue, maxValue int64) bool {
	var value int64
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value = field.Int()
	case reflect.String:
		parsed, err := strconv.ParseInt(strings.TrimSpace(field.String()), 10, 64)
		if err != nil {
			return false
		}
		value = parsed
	default:
		return false
	}
	return value >= minValue && value <= maxValue
}
