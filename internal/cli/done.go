package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <task_id>",
	Short: "Mark a task as done",
	Long: `Mark the task with the given ID as done.

Marking an already-done task again is a no-op success; there is no way to
mark a task un-done.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs(true),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tracker == nil {
			return fmt.Errorf("tracker not initialized")
		}

		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		task, err := Tracker.MarkDone(id)
		if err != nil {
			return fmt.Errorf("marking task done: %w", err)
		}

		fmt.Printf("Marked task %d %q as done\n", task.ID, task.Title)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
