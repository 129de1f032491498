package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"bank-accounts/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_kind", validateAccountKind)
	_ = v.RegisterValidation("not_blank", validateNotBlank)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns an error describing every failed field
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	return &Error{Fields: FormatValidationErrors(validationErrs)}
}

// Error reports the fields that failed validation
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, msg := range e.Fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return "validation failed: " + strings.Join(msgs, "; ")
}

// FormatValidationErrors maps each failed field to a readable message
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, fe := range errs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "not_blank":
		return fmt.Sprintf("%s is required", fe.Field())
	case "account_kind":
		return fmt.Sprintf("%s must be one of savings, checking, investment", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", fe.Field(), fe.Param())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// validateAccountKind validates that the kind names one of the account variants
func validateAccountKind(fl validator.FieldLevel) bool {
	return models.IsValidAccountKind(strings.ToLower(fl.Field().String()))
}

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
