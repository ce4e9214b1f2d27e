package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// completeTaskIDs returns a completion function that lists live task IDs
// with their titles. When openOnly is set, done tasks are left out (useful
// for the done command, where completing a finished task is pointless).
func completeTaskIDs(openOnly bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if Tracker == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		tasks, err := Tracker.ListTasks()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		var ids []string
		for _, task := range tasks {
			if openOnly && task.Done {
				continue
			}
			id := fmt.Sprintf("%d", task.ID)
			if toComplete == "" || strings.HasPrefix(id, toComplete) {
				ids = append(ids, id+"\t"+task.Title)
			}
		}

		return ids, cobra.ShellCompDirectiveNoFileComp
	}
}

// completePriorities completes the three priority tokens.
func completePriorities(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{
		"low\tCan wait",
		"medium\tNormal urgency",
		"high\tDo this first",
	}, cobra.ShellCompDirectiveNoFileComp
}
