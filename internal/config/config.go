// SPDX-License-Identifier: MIT

// Package config provides configuration management for the command-line tools.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/blochsphere/bloch"
	"github.com/katalvlaran/blochsphere/matrix"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxPrecision bounds the number of decimals in formatted fields.
const MaxPrecision = 15

// Config holds application configuration
type Config struct {
	LogLevel  string
	LogPretty bool
	Precision int     // decimals in formatted state fields
	Epsilon   float64 // matrix.WithEpsilon tolerance
}

// Load reads configuration from the environment. A .env file in the working
// directory, or the files given, are loaded first; variables that are
// already set win.
func Load(files ...string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load(files...)

	cfg := &Config{
		LogLevel:  getEnv("BLOCH_LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("BLOCH_LOG_PRETTY", false),
		Precision: getEnvAsInt("BLOCH_PRECISION", bloch.DefaultPrecision),
		Epsilon:   getEnvAsFloat("BLOCH_EPSILON", matrix.DefaultEpsilon),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Precision < 0 || c.Precision > MaxPrecision {
		return fmt.Errorf("%w: BLOCH_PRECISION %d outside [0, %d]", ErrInvalidConfig, c.Precision, MaxPrecision)
	}
	if c.Epsilon < 0 || math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) {
		return fmt.Errorf("%w: BLOCH_EPSILON %v must be finite and non-negative", ErrInvalidConfig, c.Epsilon)
	}

	return nil
}

// MatrixOptions converts the configuration into solver options.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithEpsilon(c.Epsilon)}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
