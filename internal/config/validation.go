// Package config provides configuration management for the backtest library.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/yourusername/keiba-backtest/internal/fund"
	"github.com/yourusername/keiba-backtest/internal/strategy"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField performs validations spanning multiple fields,
// including resolving names against the strategy and sizing registries.
func validateCrossField(cfg *Config) error {
	if !containsName(strategy.Names(), cfg.Strategy.Name) {
		return fmt.Errorf("unknown strategy %q (available: %v)", cfg.Strategy.Name, strategy.Names())
	}
	if !containsName(fund.Names(), cfg.FundManager.Name) {
		return fmt.Errorf("unknown fund manager %q (available: %v)", cfg.FundManager.Name, fund.Names())
	}

	if err := cfg.FundManager.Constraints.Validate(); err != nil {
		return fmt.Errorf("invalid fund constraints: %w", err)
	}

	if cfg.WalkForward.WindowSize != 0 || cfg.WalkForward.StepSize != 0 {
		if cfg.WalkForward.WindowSize <= 0 || cfg.WalkForward.StepSize <= 0 {
			return fmt.Errorf("walk_forward requires positive window_size and step_size")
		}
		if cfg.WalkForward.StepSize > cfg.WalkForward.WindowSize {
			return fmt.Errorf("walk_forward step_size cannot exceed window_size")
		}
	}

	if cfg.Filter.MinDistance > 0 && cfg.Filter.MaxDistance > 0 && cfg.Filter.MinDistance > cfg.Filter.MaxDistance {
		return fmt.Errorf("filter min_distance cannot exceed max_distance")
	}
	if cfg.Filter.MinFieldSize > 0 && cfg.Filter.MaxFieldSize > 0 && cfg.Filter.MinFieldSize > cfg.Filter.MaxFieldSize {
		return fmt.Errorf("filter min_field_size cannot exceed max_field_size")
	}

	if cfg.PersistenceEnabled() {
		if cfg.Database.Port == 0 || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("database persistence requires host, port, name and user")
		}
		if cfg.Database.MaxIdleConnections > cfg.Database.MaxConnections {
			return fmt.Errorf("max_idle_connections cannot exceed max_connections")
		}
		if cfg.IsProduction() && cfg.Database.SSLMode == "disable" {
			return fmt.Errorf("production environment requires SSL mode to be 'require' or 'verify-full'")
		}
	}

	return nil
}

func containsName(names []string, want string) bool {
	for _, name := range names {
		if name == want {
			return true
		}
	}
	return false
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "oneof":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
