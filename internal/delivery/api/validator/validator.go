// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"matchdeportivo/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// Validator implements echo.Validator.
type Validator struct {
	validate *validator.Validate
}

// New builds a validator with the domain tags registered: sport (known sport
// tag), level (known level) and hhmm (24h clock). sport and level accept an
// empty string, which clears the value on partial updates; pair them with
// required where a value is mandatory.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	_ = validate.RegisterValidation("sport", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		_, ok := entity.NormalizeSport(value)

		return ok || strings.TrimSpace(value) == ""
	})
	_ = validate.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		_, ok := entity.ParseLevel(value)

		return ok || strings.TrimSpace(value) == ""
	})
	_ = validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return clockPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Validate validates a bound request struct.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// FieldError is one failed rule, reported to clients.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// FieldErrors flattens validator errors. It returns nil for other errors.
func FieldErrors(err error) []FieldError {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // returned unwrapped by Struct
	if !ok {
		return nil
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}

	return out
}
