package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tdo-cli/tdo/pkg/models"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the task list",
	Long: `Export all tasks as JSON or YAML, to stdout or to a file.

The export carries the same fields as the task file (id, title, description,
done, priority, due_date) with due dates in DD-MM-YYYY form.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tracker == nil {
			return fmt.Errorf("tracker not initialized")
		}

		tasks, err := Tracker.ListTasks()
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		if tasks == nil {
			tasks = []models.Task{}
		}

		data, err := marshalTasks(tasks, exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOut, data, 0o600); err != nil {
			return fmt.Errorf("writing export to %s: %w", exportOut, err)
		}
		fmt.Printf("Exported %d task(s) to %s\n", len(tasks), exportOut)
		return nil
	},
}

// marshalTasks serializes tasks in the requested format.
func marshalTasks(tasks []models.Task, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling tasks as JSON: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml":
		data, err := yaml.Marshal(tasks)
		if err != nil {
			return nil, fmt.Errorf("marshaling tasks as YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (supported: json, yaml)", format)
	}
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format (json, yaml)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to file instead of stdout")
	_ = exportCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(exportCmd)
}
