package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdo-cli/tdo/internal/core"
)

var priorityCmd = &cobra.Command{
	Use:   "priority <task_id> <priority>",
	Short: "Change a task's priority",
	Long: `Change the priority of the task with the given ID.

The priority must be exactly one of: low, medium, high.`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return completeTaskIDs(false)(cmd, args, toComplete)
		}
		if len(args) == 1 {
			return completePriorities(cmd, args, toComplete)
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tracker == nil {
			return fmt.Errorf("tracker not initialized")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}
		priority, err := core.ValidatePriority(args[1])
		if err != nil {
			return err
		}

		task, err := Tracker.ChangePriority(id, priority)
		if err != nil {
			return fmt.Errorf("changing priority: %w", err)
		}

		fmt.Printf("Task %d %q is now %s priority\n", task.ID, task.Title, task.Priority)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(priorityCmd)
}
