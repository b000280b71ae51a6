// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// EnvDevelopment enables human-readable trace logging.
const EnvDevelopment = "development"

// ErrInvalidConfig indicates a configuration value out of its allowed range.
var ErrInvalidConfig = errors.New("invalid config")

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
type Config struct {
	Storage                  string        `mapstructure:"STORAGE"`
	DBDriver                 string        `mapstructure:"DB_DRIVER"`
	DBSource                 string        `mapstructure:"DB_SOURCE"`
	ServerAddress            string        `mapstructure:"SERVER_ADDRESS"`
	Environement             string        `mapstructure:"GO_ENV"`
	ReconcileInterval        time.Duration `mapstructure:"RECONCILE_INTERVAL"`
	WithdrawalServiceURL     string        `mapstructure:"WITHDRAWAL_SERVICE_URL"`
	WithdrawalServiceTimeout time.Duration `mapstructure:"WITHDRAWAL_SERVICE_TIMEOUT"`
	BreakerMaxFailures       uint32        `mapstructure:"BREAKER_MAX_FAILURES"`
	BreakerOpenTimeout       time.Duration `mapstructure:"BREAKER_OPEN_TIMEOUT"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("STORAGE", StorageMemory)
	v.SetDefault("RECONCILE_INTERVAL", 5*time.Second)
	v.SetDefault("WITHDRAWAL_SERVICE_TIMEOUT", 10*time.Second)
	v.SetDefault("BREAKER_MAX_FAILURES", 5)
	v.SetDefault("BREAKER_OPEN_TIMEOUT", 30*time.Second)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	if err := c.validate(); err != nil {
		return c, err
	}

	return c, nil
}

func (c Config) validate() error {
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		return errors.Join(ErrInvalidConfig, errors.New("STORAGE must be memory or postgres"))
	}

	if c.ReconcileInterval <= 0 {
		return errors.Join(ErrInvalidConfig, errors.New("RECONCILE_INTERVAL must be positive"))
	}

	return nil
}
