// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request DTOs through their `validate` struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports field names by their JSON tag.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return &ValidationError{fields: fieldErrs}
		}

		return errors.Wrap(err, "validation failed")
	}

	return nil
}

// ValidationError lists the fields that failed validation.
type ValidationError struct {
	fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.fields))
	for _, fe := range e.fields {
		parts = append(parts, fe.Field()+" failed on '"+fe.Tag()+"'")
	}

	return strings.Join(parts, "; ")
}

// Fields returns the JSON names of the invalid fields.
func (e *ValidationError) Fields() []string {
	names := make([]string, 0, len(e.fields))
	for _, fe := range e.fields {
		names = append(names, fe.Field())
	}

	return names
}
