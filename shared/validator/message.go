package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"oneof":       "{field} must be one of {param}",
	"max":         "{field} must be at most {param} characters",
	"min":         "{field} must be at least {param} characters",
	"email":       "{field} must be a valid email address",
	"url":         "{field} must be a valid URL",
	"enum":        "{field} has an unsupported value",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must be smaller than {param} MB",
}

// message returns a human readable text for the first failed rule.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		text := messages[valErr.Tag()]
		if text == "" {
			continue
		}

		text = strings.ReplaceAll(text, "{field}", valErr.Field())

		return strings.ReplaceAll(text, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
