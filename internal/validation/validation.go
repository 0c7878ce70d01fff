// Package validation wires the go-playground validator that backs gin's
// binding tags and converts its failures into field-level violations.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phonePattern accepts international phone numbers: an optional leading
// plus, a non-zero first digit, then 1 to 14 further digits.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// FieldViolation describes a single invalid field in a request payload.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Register configures the binding validator: fields are reported by
// their JSON names and the "intlphone" rule is installed. Must be
// called once before the router starts serving.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("intlphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}

// Struct validates a value against its binding tags outside of gin's
// automatic request binding, e.g. for manually decoded patch payloads.
func Struct(obj interface{}) error {
	return binding.Validator.ValidateStruct(obj)
}

// ViolationsFrom extracts field-level violations from a binding error.
// Returns nil when the error carries no per-field information (e.g. a
// JSON syntax error).
func ViolationsFrom(err error) []FieldViolation {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	violations := make([]FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "intlphone":
		return fmt.Sprintf("%s must be a phone number in international format (e.g. +1234567890)", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
