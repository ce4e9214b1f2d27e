package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrSilent signals a non-zero exit without an error message; used by
// commands whose exit code is the whole point (e.g. alerts --quiet).
var ErrSilent = errors.New("silent exit")

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "tdo",
	Short: "tdo - a single-user command-line task tracker",
	Long: `tdo is a command-line task tracker. Tasks carry a title, description,
priority, and due date, and persist in a JSON task file between invocations.

Add tasks, list them, mark them done, remove them, or change their priority.
The stats, alerts, and dashboard commands surface activity recorded in the
event log.`,
	// main prints errors once; keep cobra from repeating them with usage.
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tdo %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
