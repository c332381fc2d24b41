package stream

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/SeanEClarke/ta-rs/pkg/indicator"
)

// Config holds the engine configuration.
type Config struct {
	Environment string
	LogLevel    string
	Indicators  IndicatorConfig
}

// IndicatorConfig holds the periods used for the default registrations.
type IndicatorConfig struct {
	EMAPeriod  int
	DEMAPeriod int
	TRIXPeriod int
}

// LoadConfig loads configuration from the environment. A .env file is
// honored when present but not required.
func LoadConfig() (*Config, error) {
	// Ignore error - .env file is optional
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Indicators: IndicatorConfig{
			EMAPeriod:  getEnvAsInt("TA_EMA_PERIOD", indicator.DefaultEMAPeriod),
			DEMAPeriod: getEnvAsInt("TA_DEMA_PERIOD", indicator.DefaultDEMAPeriod),
			TRIXPeriod: getEnvAsInt("TA_TRIX_PERIOD", indicator.DefaultTRIXPeriod),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration. Period validation happens here, at
// configuration time, never on the per-bar path.
func (c *Config) Validate() error {
	if c.Indicators.EMAPeriod < 1 {
		return fmt.Errorf("TA_EMA_PERIOD must be at least 1, got %d: %w",
			c.Indicators.EMAPeriod, indicator.ErrInvalidParameter)
	}
	if c.Indicators.DEMAPeriod < 1 {
		return fmt.Errorf("TA_DEMA_PERIOD must be at least 1, got %d: %w",
			c.Indicators.DEMAPeriod, indicator.ErrInvalidParameter)
	}
	if c.Indicators.TRIXPeriod < 1 {
		return fmt.Errorf("TA_TRIX_PERIOD must be at least 1, got %d: %w",
			c.Indicators.TRIXPeriod, indicator.ErrInvalidParameter)
	}
	return nil
}

// DefaultConfig returns the configuration used when the environment
// supplies nothing.
func DefaultConfig() *Config {
	return &Config{
		Environment: "development",
		LogLevel:    "info",
		Indicators: IndicatorConfig{
			EMAPeriod:  indicator.DefaultEMAPeriod,
			DEMAPeriod: indicator.DefaultDEMAPeriod,
			TRIXPeriod: indicator.DefaultTRIXPeriod,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intValue
}
