// Package config provides configuration management for the backtest library.
package config

import (
	"fmt"

	"github.com/yourusername/keiba-backtest/internal/filter"
	"github.com/yourusername/keiba-backtest/internal/fund"
	"github.com/yourusername/keiba-backtest/internal/simulation"
)

// Config represents the complete simulation configuration
type Config struct {
	App         AppConfig                    `mapstructure:"app" validate:"required"`
	InitialFund int                          `mapstructure:"initial_fund" validate:"required,gt=0"`
	Strategy    StrategyConfig               `mapstructure:"strategy" validate:"required"`
	FundManager FundManagerConfig            `mapstructure:"fund_manager" validate:"required"`
	MonteCarlo  MonteCarloConfig             `mapstructure:"monte_carlo"`
	WalkForward simulation.WalkForwardConfig `mapstructure:"walk_forward" validate:"omitempty"`
	Filter      filter.Criteria              `mapstructure:"filter"`
	Database    DatabaseConfig               `mapstructure:"database"`
	Metrics     MetricsConfig                `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// StrategyConfig names a registered strategy and its parameters
type StrategyConfig struct {
	Name   string         `mapstructure:"name" validate:"required"`
	Params map[string]any `mapstructure:"params"`
}

// FundManagerConfig names a registered sizing rule, its parameters and the
// betting constraints applied on top of it
type FundManagerConfig struct {
	Name        string           `mapstructure:"name" validate:"required"`
	Params      map[string]any   `mapstructure:"params"`
	Constraints fund.Constraints `mapstructure:"constraints"`
}

// MonteCarloConfig configures shuffled-order trials
type MonteCarloConfig struct {
	Trials int   `mapstructure:"trials" validate:"gte=0"`
	Seed   int64 `mapstructure:"seed"`
}

// DatabaseConfig represents database connection configuration. The whole
// section is optional: simulations persist results only when a host is set.
type DatabaseConfig struct {
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics exposure configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path    string `mapstructure:"path"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// PersistenceEnabled reports whether results should be written to Postgres
func (c *Config) PersistenceEnabled() bool {
	return c.Database.Host != ""
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
