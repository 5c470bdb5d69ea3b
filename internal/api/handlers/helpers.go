package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must not be empty", fieldName)
		case "datetime":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a date in YYYY-MM-DD format", fieldName)
		}
	}
	return errorsMap
}

// optional maps an empty form value to nil so absent optional fields are
// stored as NULL rather than empty strings.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
