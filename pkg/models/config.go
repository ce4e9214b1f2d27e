package models

// ObservabilityConfig holds the event log section of the global config.
type ObservabilityConfig struct {
	Enabled  bool   `yaml:"enabled" mapstructure:"enabled"`
	EventLog string `yaml:"event_log" mapstructure:"event_log"`
}

// AlertsConfig holds the alert threshold section of the global config.
type AlertsConfig struct {
	DueSoonDays  int `yaml:"due_soon_days" mapstructure:"due_soon_days"`
	StaleDays    int `yaml:"stale_days" mapstructure:"stale_days"`
	MaxOpenTasks int `yaml:"max_open_tasks" mapstructure:"max_open_tasks"`
}

// Config holds the settings for a tdo home directory, read from .tdoconfig
// via Viper. Missing keys fall back to defaults at load time.
type Config struct {
	StorageFile     string              `yaml:"storage_file" mapstructure:"storage_file"`
	DefaultPriority Priority            `yaml:"default_priority" mapstructure:"default_priority"`
	Observability   ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Alerts          AlertsConfig        `yaml:"alerts" mapstructure:"alerts"`
}
