package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tdo-cli/tdo/pkg/models"
)

var listLong bool

// List row styles. lipgloss degrades to plain text when stdout is not a
// terminal, so piping tdo list stays clean.
var (
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	doneRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	highPriStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	tableHeadline = lipgloss.NewStyle().Bold(true)
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Long: `List all tasks in current store order.

Removing a task swaps the last task into its place, so the order shown here
can change after a removal. Overdue open tasks are highlighted when stdout is
a terminal.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tracker == nil {
			return fmt.Errorf("tracker not initialized")
		}

		tasks, err := Tracker.ListTasks()
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found.")
			return nil
		}

		fmt.Println(renderTaskTable(tasks, listLong, models.Today()))
		return nil
	},
}

// renderTaskTable formats tasks as an aligned table. today decides which
// open tasks count as overdue.
func renderTaskTable(tasks []models.Task, long bool, today models.Date) string {
	var b strings.Builder

	titleWidth := len("TITLE")
	for _, t := range tasks {
		if len(t.Title) > titleWidth {
			titleWidth = len(t.Title)
		}
	}

	b.WriteString(tableHeadline.Render(fmt.Sprintf("  %-5s %-6s %-8s %-12s %s", "ID", "STATE", "PRI", "DUE", "TITLE")))
	b.WriteString("\n")

	for _, t := range tasks {
		state := "open"
		if t.Done {
			state = "done"
		}
		row := fmt.Sprintf("  %-5d %-6s %-8s %-12s %-*s", t.ID, state, t.Priority, t.DueDate, titleWidth, t.Title)

		switch {
		case !t.Done && t.DueDate.Before(today):
			row = overdueStyle.Render(row + "  (overdue)")
		case t.Done:
			row = doneRowStyle.Render(row)
		case t.Priority == models.PriorityHigh:
			row = highPriStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")

		if long && t.Description != "" {
			b.WriteString(fmt.Sprintf("        %s\n", t.Description))
		}
	}

	b.WriteString(fmt.Sprintf("\n  %d task(s)", len(tasks)))
	return b.String()
}

func init() {
	listCmd.Flags().BoolVar(&listLong, "long", false, "Include task descriptions")
	rootCmd.AddCommand(listCmd)
}
