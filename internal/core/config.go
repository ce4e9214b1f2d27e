// Package core contains the business logic for tdo: input validation, the
// command engine that mutates the task store, the tracker that ties loading,
// applying, and saving together, and configuration handling.
package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/tdo-cli/tdo/pkg/models"
)

// ConfigManager defines the interface for loading and validating the
// .tdoconfig file of a tdo home directory.
type ConfigManager interface {
	Load() (*models.Config, error)
	Validate(cfg *models.Config) error
}

// viperConfigManager implements ConfigManager using Viper for reading YAML
// configuration files.
type viperConfigManager struct {
	// basePath is the directory where .tdoconfig resides.
	basePath string
}

// NewConfigManager creates a ConfigManager that reads configuration files
// relative to basePath.
func NewConfigManager(basePath string) ConfigManager {
	return &viperConfigManager{basePath: basePath}
}

// DefaultConfig returns a Config populated with the stock settings.
func DefaultConfig() *models.Config {
	return &models.Config{
		StorageFile:     "tasks.json",
		DefaultPriority: models.PriorityMedium,
		Observability: models.ObservabilityConfig{
			Enabled:  true,
			EventLog: ".tdo_events.jsonl",
		},
		Alerts: models.AlertsConfig{
			DueSoonDays:  3,
			StaleDays:    7,
			MaxOpenTasks: 20,
		},
	}
}

// Load reads the .tdoconfig file from the base path using Viper. If the file
// does not exist, the defaults are returned.
func (cm *viperConfigManager) Load() (*models.Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName(".tdoconfig")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("storage.file", cfg.StorageFile)
	v.SetDefault("defaults.priority", string(cfg.DefaultPriority))
	v.SetDefault("observability.enabled", cfg.Observability.Enabled)
	v.SetDefault("observability.event_log", cfg.Observability.EventLog)
	v.SetDefault("alerts.due_soon_days", cfg.Alerts.DueSoonDays)
	v.SetDefault("alerts.stale_days", cfg.Alerts.StaleDays)
	v.SetDefault("alerts.max_open_tasks", cfg.Alerts.MaxOpenTasks)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .tdoconfig: %w", err)
	}

	// Map nested YAML keys to flat Config fields.
	cfg.StorageFile = v.GetString("storage.file")
	cfg.DefaultPriority = models.Priority(v.GetString("defaults.priority"))
	cfg.Observability.Enabled = v.GetBool("observability.enabled")
	cfg.Observability.EventLog = v.GetString("observability.event_log")
	cfg.Alerts.DueSoonDays = v.GetInt("alerts.due_soon_days")
	cfg.Alerts.StaleDays = v.GetInt("alerts.stale_days")
	cfg.Alerts.MaxOpenTasks = v.GetInt("alerts.max_open_tasks")

	return cfg, nil
}

// Validate checks cfg for invalid values and returns a clear error message
// identifying every problem found.
func (cm *viperConfigManager) Validate(cfg *models.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.StorageFile == "" {
		errs = append(errs, "storage.file must not be empty")
	}

	if !cfg.DefaultPriority.Valid() {
		errs = append(errs, fmt.Sprintf(
			"defaults.priority %q is invalid, must be one of: low, medium, high",
			cfg.DefaultPriority,
		))
	}

	if cfg.Observability.Enabled && cfg.Observability.EventLog == "" {
		errs = append(errs, "observability.event_log must not be empty when observability is enabled")
	}

	if cfg.Alerts.DueSoonDays < 0 {
		errs = append(errs, fmt.Sprintf("alerts.due_soon_days must be non-negative, got %d", cfg.Alerts.DueSoonDays))
	}

	if cfg.Alerts.StaleDays < 0 {
		errs = append(errs, fmt.Sprintf("alerts.stale_days must be non-negative, got %d", cfg.Alerts.StaleDays))
	}

	if cfg.Alerts.MaxOpenTasks < 0 {
		errs = append(errs, fmt.Sprintf("alerts.max_open_tasks must be non-negative, got %d", cfg.Alerts.MaxOpenTasks))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
