package helpers

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the validator used on write payloads, reporting
// fields by their JSON name so error maps match the request body.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// FormatValidationErrors turns validator errors into a field -> message map
// suitable for a 400 response body.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			messages[field] = fmt.Sprintf("%s is required", field)
		case "email":
			messages[field] = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			messages[field] = fmt.Sprintf("%s must be at least %s characters", field, err.Param())
		case "max":
			messages[field] = fmt.Sprintf("%s cannot exceed %s characters", field, err.Param())
		case "gte":
			messages[field] = fmt.Sprintf("%s must be at least %s", field, err.Param())
		case "lte":
			messages[field] = fmt.Sprintf("%s cannot exceed %s", field, err.Param())
		case "oneof":
			messages[field] = fmt.Sprintf("%s must be one of: %s", field, err.Param())
		default:
			messages[field] = fmt.Sprintf("%s failed validation (%s)", field, err.Tag())
		}
	}
	return messages
}

// FullImageURL rewrites a stored image path to an absolute URL under the
// configured server URL. Already-absolute paths pass through untouched.
func FullImageURL(serverURL, imagePath string) string {
	if imagePath == "" {
		return ""
	}
	if strings.HasPrefix(imagePath, "http://") || strings.HasPrefix(imagePath, "https://") {
		return imagePath
	}
	return strings.TrimRight(serverURL, "/") + "/" + strings.TrimLeft(imagePath, "/")
}
