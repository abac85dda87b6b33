package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates request bodies and content definitions through struct tags
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator creates a validator that reports fields by their json name
func NewStructValidator() *StructValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	return &StructValidator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *StructValidator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// Var validates a single value against a tag expression
func (v *StructValidator) Var(field interface{}, tag string) error {
	return v.validate.Var(field, tag)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" {
		name = strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
	}
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

// FormatValidationError turns validator errors into a field → message map.
// Field names come from json tags so internal struct names do not leak.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "oneof":
			errs[field] = fmt.Sprintf("Must be one of: %s", e.Param())
		case "gte", "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "lte", "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "gtefield":
			errs[field] = fmt.Sprintf("Must not be less than %s", e.Param())
		case "ltfield":
			errs[field] = fmt.Sprintf("Must be less than %s", e.Param())
		case "uuid", "uuid4":
			errs[field] = "Must be a UUID"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Summarize joins a formatted validation error into one sorted-by-field line
func Summarize(err error) string {
	fields := FormatValidationError(err)
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}
