package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateConfig checks the struct tag rules plus the cross-field rules
// the tags cannot express
func ValidateConfig(cfg *Config) error {
	var problems []string

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			problems = append(problems, ValidationError{
				Field:   fe.Namespace(),
				Message: describe(fe),
			}.Error())
		}
	}

	if cfg.DB.Driver == "sqlite" && cfg.DB.DSN == "" {
		problems = append(problems, ValidationError{
			Field:   "Config.DB.DSN",
			Message: "is required for the sqlite driver",
		}.Error())
	}

	// Production databases never run without credentials
	if cfg.Env.IsProduction() && cfg.DB.Driver == "postgres" && cfg.DB.DSN == "" && cfg.DB.Password == "" {
		problems = append(problems, ValidationError{
			Field:   "Config.DB.Password",
			Message: "db_password secret is required",
		}.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "\n"))
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_without":
		return fmt.Sprintf("is required when %s is not set", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fmt.Sprint(fe.Value()))
	case "numeric":
		return "must be numeric"
	default:
		return fmt.Sprintf("failed the %s check", fe.Tag())
	}
}
