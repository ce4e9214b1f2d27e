package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/pkg/models"
)

// rawTaskFields holds the unvalidated field strings for a new task, whether
// they came from flags or from interactive prompts.
type rawTaskFields struct {
	title       string
	description string
	priority    string
	dueDate     string
}

var addFlags rawTaskFields

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new task",
	Long: `Add a new task to the tracker.

Fields can be supplied with flags; any field not given as a flag is collected
interactively. A blank priority falls back to the configured default. The due
date uses the DD-MM-YYYY format, e.g. 22-12-2024.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tracker == nil {
			return fmt.Errorf("tracker not initialized")
		}

		raw := addFlags
		if err := promptMissingFields(cmd, &raw); err != nil {
			return err
		}

		title, description, priority, due, err := validateTaskFields(raw, defaultPriority())
		if err != nil {
			return err
		}

		task, err := Tracker.AddTask(title, description, priority, due)
		if err != nil {
			return fmt.Errorf("adding task: %w", err)
		}

		fmt.Printf("Created task %d\n", task.ID)
		fmt.Printf("  Title:    %s\n", task.Title)
		if task.Description != "" {
			fmt.Printf("  Details:  %s\n", task.Description)
		}
		fmt.Printf("  Priority: %s\n", task.Priority)
		fmt.Printf("  Due date: %s\n", task.DueDate)
		return nil
	},
}

// promptMissingFields interactively collects every field that was not passed
// as a flag. Only the raw strings are gathered here; validation is separate.
func promptMissingFields(cmd *cobra.Command, raw *rawTaskFields) error {
	flags := cmd.Flags()
	if flags.Changed("title") && flags.Changed("description") &&
		flags.Changed("priority") && flags.Changed("due") {
		return nil
	}

	prompter := newFieldPrompter(cmd.InOrStdin(), os.Stderr)

	var err error
	if !flags.Changed("title") {
		if raw.title, err = prompter.ask("Title", ""); err != nil {
			return err
		}
	}
	if !flags.Changed("description") {
		if raw.description, err = prompter.ask("Description", ""); err != nil {
			return err
		}
	}
	if !flags.Changed("priority") {
		hint := fmt.Sprintf("low/medium/high, default %s", defaultPriority())
		if raw.priority, err = prompter.ask("Priority", hint); err != nil {
			return err
		}
	}
	if !flags.Changed("due") {
		if raw.dueDate, err = prompter.ask("Due date", "DD-MM-YYYY"); err != nil {
			return err
		}
	}
	return nil
}

// validateTaskFields turns raw field strings into validated task fields.
// Pure: no I/O, so it is testable without simulating standard input.
func validateTaskFields(raw rawTaskFields, fallback models.Priority) (title, description string, priority models.Priority, due models.Date, err error) {
	if raw.title == "" {
		return "", "", "", models.Date{}, fmt.Errorf("title must not be empty")
	}

	if raw.priority == "" {
		priority = fallback
	} else {
		priority, err = core.ValidatePriority(raw.priority)
		if err != nil {
			return "", "", "", models.Date{}, err
		}
	}

	due, err = core.ParseDueDate(raw.dueDate)
	if err != nil {
		return "", "", "", models.Date{}, err
	}

	return raw.title, raw.description, priority, due, nil
}

// defaultPriority returns the configured default priority, falling back to
// medium when no config is loaded.
func defaultPriority() models.Priority {
	if Config != nil && Config.DefaultPriority.Valid() {
		return Config.DefaultPriority
	}
	return models.PriorityMedium
}

func init() {
	addCmd.Flags().StringVar(&addFlags.title, "title", "", "Task title")
	addCmd.Flags().StringVar(&addFlags.description, "description", "", "Task description")
	addCmd.Flags().StringVar(&addFlags.priority, "priority", "", "Task priority (low, medium, high)")
	addCmd.Flags().StringVar(&addFlags.dueDate, "due", "", "Due date (DD-MM-YYYY)")
	_ = addCmd.RegisterFlagCompletionFunc("priority", completePriorities)
	rootCmd.AddCommand(addCmd)
}
