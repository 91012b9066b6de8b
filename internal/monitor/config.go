package monitor

import (
	"fmt"
	"os"
	"strconv"

	"github.com/osmike/batchkit/internal/domain"
	errs "github.com/osmike/batchkit/internal/error"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding the loaded monitor configuration.
const (
	ENV_TITLE       = "BATCHKIT_MONITOR_TITLE"
	ENV_LOG_DIR     = "BATCHKIT_MONITOR_LOG_DIR"
	ENV_PURGE_AFTER = "BATCHKIT_MONITOR_PURGE_AFTER"
)

// LoadConfig reads a monitor configuration from a YAML file and applies
// environment overrides on top.
//
// Example file:
//
//	title: Nightly dedup
//	contacts: [data-eng@example.com]
//	log_dir: /var/log/dedup
//	purge_after_days: 14
//
// Parameters:
//   - path: Path of the YAML configuration file.
//
// Returns:
//   - The parsed configuration with overrides applied.
//   - An error wrapping ErrLoadConfig if the file cannot be read or parsed.
func LoadConfig(path string) (domain.Monitor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Monitor{}, errs.New(errs.ErrLoadConfig, err.Error())
	}

	var cfg domain.Monitor
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Monitor{}, errs.New(errs.ErrLoadConfig, err.Error())
	}

	if v := os.Getenv(ENV_TITLE); v != "" {
		cfg.Title = v
	}
	if v := os.Getenv(ENV_LOG_DIR); v != "" {
		cfg.LogDir = v
	}
	if v := os.Getenv(ENV_PURGE_AFTER); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return domain.Monitor{}, errs.New(errs.ErrLoadConfig, fmt.Sprintf("%s must be an integer, got %q", ENV_PURGE_AFTER, v))
		}
		cfg.PurgeAfter = days
	}

	return cfg, nil
}
