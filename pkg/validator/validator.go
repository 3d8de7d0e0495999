package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator reports field names by their json tag so messages match the request body.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return messages
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required", "required_if":
			messages[field] = field + " is required"
		case "email":
			messages[field] = field + " must be a valid email address"
		case "url":
			messages[field] = field + " must be a valid URL"
		case "min":
			messages[field] = field + " must be at least " + e.Param() + " characters"
		case "max":
			messages[field] = field + " must be at most " + e.Param() + " characters"
		case "oneof":
			messages[field] = field + " must be one of: " + e.Param()
		default:
			messages[field] = field + " is invalid"
		}
	}

	return messages
}
