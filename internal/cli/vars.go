package cli

import (
	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/internal/observability"
	"github.com/tdo-cli/tdo/internal/storage"
	"github.com/tdo-cli/tdo/pkg/models"
)

// Service instances used by the commands, set during app initialization in
// app.go. Tests swap them for fakes.
var (
	// BasePath is the tdo home directory.
	BasePath string

	// Config is the loaded and validated configuration.
	Config *models.Config

	// Tracker executes task commands against the store.
	Tracker core.Tracker

	// StoreMgr gives direct access to the task file, used for rendering
	// its path and by init/export.
	StoreMgr storage.StoreManager

	// WorkspaceInit bootstraps a tdo home directory.
	WorkspaceInit core.WorkspaceInitializer
)

// Observability service instances; nil when observability is disabled.
var (
	EventLog    observability.EventLog
	MetricsCalc observability.MetricsCalculator
	AlertEngine observability.AlertEngine
	Notifier    observability.Notifier
)
