package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env          string `env:"ENV,           default=development"`
	EmployeesCSV string `env:"EMPLOYEES_CSV, default=data/employees.csv"`
	LogLevel     string `env:"LOG_LEVEL,     default=info"`
	LogPretty    bool   `env:"LOG_PRETTY,    default=false"`

	// LogFile receives log output when set. The terminal belongs to the
	// presentation layer, so logs are discarded unless a file is given.
	LogFile string `env:"LOG_FILE"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
