package config

import (
	"fmt"
	"strconv"
	"strings"

	errs "opening-hours-normalizer/pkg/errors"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation error for field '%s' with value '%s': %s", e.Field, e.Value, e.Message)
}

// Validator collects configuration validation errors
type Validator struct {
	errors []ValidationError
}

func NewValidator() *Validator {
	return &Validator{errors: make([]ValidationError, 0)}
}

// AddError adds a validation error
func (v *Validator) AddError(field, value, message string) {
	v.errors = append(v.errors, ValidationError{Field: field, Value: value, Message: message})
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// ErrorsAsString returns all validation errors as a formatted string
func (v *Validator) ErrorsAsString() string {
	var errorStrings []string
	for _, err := range v.errors {
		errorStrings = append(errorStrings, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	validator := NewValidator()

	if c.Port == "" {
		validator.AddError("Port", c.Port, "port is required")
	} else if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		validator.AddError("Port", c.Port, "port must be a number between 1 and 65535")
	}

	switch c.Env {
	case "development", "staging", "production":
	default:
		validator.AddError("Env", c.Env, "environment must be development, staging or production")
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		validator.AddError("LogLevel", c.LogLevel, "log level must be debug, info, warn or error")
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		validator.AddError("LogFormat", c.LogFormat, "log format must be json or text")
	}

	if c.ReadTimeout <= 0 {
		validator.AddError("ReadTimeout", c.ReadTimeout.String(), "read timeout must be positive")
	}
	if c.WriteTimeout <= 0 {
		validator.AddError("WriteTimeout", c.WriteTimeout.String(), "write timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		validator.AddError("ShutdownTimeout", c.ShutdownTimeout.String(), "shutdown timeout must be positive")
	}

	if len(c.DefaultLanguages) == 0 {
		validator.AddError("DefaultLanguages", "", "at least one default language is required")
	}

	if c.MetricsEnabled && !strings.HasPrefix(c.MetricsPath, "/") {
		validator.AddError("MetricsPath", c.MetricsPath, "metrics path must start with /")
	}

	if validator.HasErrors() {
		return errs.NewValidation("config.Validate",
			fmt.Sprintf("configuration validation failed:\n%s", validator.ErrorsAsString()), nil)
	}
	return nil
}
