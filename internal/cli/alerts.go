package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var alertsQuiet bool

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show active alerts",
	Long: `Evaluate alert conditions against the task list and the event log and
display any triggered alerts: overdue tasks, tasks due soon, stale tasks,
and an oversized open-task count.

With --quiet nothing is printed and the exit code signals whether alerts
exist, for use in scripts and shell prompts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if AlertEngine == nil {
			return fmt.Errorf("alert engine not initialized (observability may be disabled)")
		}

		alerts, err := AlertEngine.Evaluate()
		if err != nil {
			return fmt.Errorf("evaluating alerts: %w", err)
		}

		if alertsQuiet {
			if len(alerts) > 0 {
				cmd.SilenceErrors = true
				return ErrSilent
			}
			return nil
		}

		if len(alerts) == 0 {
			fmt.Println("No active alerts.")
			return nil
		}

		notifier := Notifier
		if notifier == nil {
			return fmt.Errorf("notifier not initialized")
		}
		if err := notifier.Notify(alerts); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: rendering alerts: %v\n", err)
		}
		return nil
	},
}

func init() {
	alertsCmd.Flags().BoolVar(&alertsQuiet, "quiet", false, "Print nothing; exit non-zero when alerts exist")
	rootCmd.AddCommand(alertsCmd)
}
