package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <task_id>",
	Short: "Remove a task",
	Long: `Remove the task with the given ID from the tracker.

The task's ID is retired permanently; it is never assigned to a later task.
The last task in the list moves into the removed task's slot, so list order
changes after a removal.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(false),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tracker == nil {
			return fmt.Errorf("tracker not initialized")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		task, err := Tracker.RemoveTask(id)
		if err != nil {
			return fmt.Errorf("removing task: %w", err)
		}

		fmt.Printf("Removed task %d %q\n", task.ID, task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
