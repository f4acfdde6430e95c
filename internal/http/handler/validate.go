package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func fieldMessage(e validator.FieldError) string {
	isString := e.Kind() == reflect.String
	switch e.Tag() {
	case "required":
		return "is required"
	case "len":
		if isString {
			return fmt.Sprintf("must be exactly %s characters", e.Param())
		}
		return fmt.Sprintf("must have length %s", e.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "printascii":
		return "must contain only printable ASCII characters"
	default:
		return fmt.Sprintf("failed validation: %s", e.Tag())
	}
}

// validateStruct returns nil or the per-field messages for v.
func validateStruct(v any) []fieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]fieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, fieldError{Field: e.Field(), Message: fieldMessage(e)})
	}
	return out
}

// bindJSON decodes the body into dst and validates it, writing the 400
// response itself. ok is false when the handler should return immediately.
func bindJSON(c *fiber.Ctx, dst any) (ok bool, err error) {
	if err := c.BodyParser(dst); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be valid JSON")
	}
	if details := validateStruct(dst); details != nil {
		return false, writeErrorDetails(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "request validation failed", details)
	}
	return true, nil
}
