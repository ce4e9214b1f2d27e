// Package internal provides the App struct that wires all components of the
// tdo task tracker together and initializes the CLI layer.
package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tdo-cli/tdo/internal/cli"
	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/internal/observability"
	"github.com/tdo-cli/tdo/internal/storage"
	"github.com/tdo-cli/tdo/pkg/models"
)

// App holds all service dependencies for the tdo task tracker.
type App struct {
	BasePath string
	Config   *models.Config

	// Configuration
	ConfigMgr core.ConfigManager

	// Storage layer
	StoreMgr storage.StoreManager

	// Core services
	Tracker       core.Tracker
	WorkspaceInit core.WorkspaceInitializer

	// Observability
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
	AlertEngine observability.AlertEngine
	Notifier    observability.Notifier
}

// NewApp creates and wires all components of the tdo task tracker. basePath
// is the directory holding the config, the task file, and the event log
// (typically the directory containing .tdoconfig, or TDO_HOME).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	app.ConfigMgr = core.NewConfigManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	if err := app.ConfigMgr.Validate(cfg); err != nil {
		return nil, err
	}
	app.Config = cfg

	// --- Storage layer ---
	app.StoreMgr = storage.NewStoreManager(filepath.Join(basePath, cfg.StorageFile))

	// --- Observability ---
	if cfg.Observability.Enabled {
		eventLogPath := filepath.Join(basePath, cfg.Observability.EventLog)
		app.EventLog, err = observability.NewJSONLEventLog(eventLogPath)
		if err != nil {
			// Non-fatal: task commands still work without an event log.
			fmt.Fprintf(os.Stderr, "Warning: event log disabled: %v\n", err)
			app.EventLog = nil
		}
	}

	// --- Core services ---
	var evtAdapter core.EventLogger
	if app.EventLog != nil {
		evtAdapter = &eventLogAdapter{log: app.EventLog}
	}
	app.Tracker = core.NewTracker(app.StoreMgr, evtAdapter)
	app.WorkspaceInit = core.NewWorkspaceInitializer()

	if app.EventLog != nil {
		thresholds := observability.DefaultAlertThresholds()
		if cfg.Alerts.DueSoonDays > 0 {
			thresholds.DueSoonDays = cfg.Alerts.DueSoonDays
		}
		if cfg.Alerts.StaleDays > 0 {
			thresholds.StaleDays = cfg.Alerts.StaleDays
		}
		if cfg.Alerts.MaxOpenTasks > 0 {
			thresholds.MaxOpenTasks = cfg.Alerts.MaxOpenTasks
		}
		app.MetricsCalc = observability.NewMetricsCalculator(app.EventLog)
		app.AlertEngine = observability.NewAlertEngine(&taskSourceAdapter{tracker: app.Tracker}, app.EventLog, thresholds)
	}
	app.Notifier = observability.NewWriterNotifier(os.Stdout)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Config = cfg
	cli.Tracker = app.Tracker
	cli.StoreMgr = app.StoreMgr
	cli.WorkspaceInit = app.WorkspaceInit

	cli.EventLog = app.EventLog
	cli.MetricsCalc = app.MetricsCalc
	cli.AlertEngine = app.AlertEngine
	cli.Notifier = app.Notifier

	return app, nil
}

// Close releases resources held by the App, such as the event log file
// handle. It is safe to call Close on an App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the tdo home directory. It checks the TDO_HOME
// env var, then walks up from the working directory looking for a .tdoconfig,
// and falls back to the working directory itself.
func ResolveBasePath() string {
	if home := os.Getenv("TDO_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".tdoconfig")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// --- Adapters ---

// eventLogAdapter adapts observability.EventLog to core.EventLogger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) LogEvent(eventType string, data map[string]any) error {
	return a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "INFO",
		Type:    eventType,
		Message: eventType,
		Data:    data,
	})
}

// taskSourceAdapter adapts core.Tracker to observability.TaskSource.
type taskSourceAdapter struct {
	tracker core.Tracker
}

func (a *taskSourceAdapter) Tasks() ([]models.Task, error) {
	return a.tracker.ListTasks()
}
