package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tdo-cli/tdo/pkg/models"
)

var (
	statsJSON  bool
	statsSince string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task counts and activity metrics",
	Long: `Show the current open/done/overdue task counts together with activity
metrics aggregated from the event log (tasks created, completed, removed,
and priority changes inside the --since window).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Tracker == nil {
			return fmt.Errorf("tracker not initialized")
		}

		tasks, err := Tracker.ListTasks()
		if err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		counts := countTasks(tasks, models.Today())

		sinceTime, err := parseSinceDuration(statsSince)
		if err != nil {
			return fmt.Errorf("parsing --since: %w", err)
		}

		if statsJSON {
			return printStatsJSON(counts, sinceTime)
		}

		fmt.Println("Tasks")
		fmt.Printf("  %-24s %d\n", "Open:", counts.open)
		fmt.Printf("  %-24s %d\n", "Done:", counts.done)
		fmt.Printf("  %-24s %d\n", "Overdue:", counts.overdue)

		if MetricsCalc == nil {
			return nil
		}

		metrics, err := MetricsCalc.Calculate(sinceTime)
		if err != nil {
			return fmt.Errorf("calculating metrics: %w", err)
		}

		fmt.Printf("\nActivity (since %s)\n", sinceTime.Format("2006-01-02"))
		fmt.Printf("  %-24s %d\n", "Events recorded:", metrics.EventCount)
		fmt.Printf("  %-24s %d\n", "Tasks created:", metrics.TasksCreated)
		fmt.Printf("  %-24s %d\n", "Tasks completed:", metrics.TasksCompleted)
		fmt.Printf("  %-24s %d\n", "Tasks removed:", metrics.TasksRemoved)
		fmt.Printf("  %-24s %d\n", "Priority changes:", metrics.PriorityChanges)

		if len(metrics.CreatedByPriority) > 0 {
			fmt.Println("\n  Created by priority:")
			for _, p := range []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow} {
				if n := metrics.CreatedByPriority[string(p)]; n > 0 {
					fmt.Printf("    %-20s %d\n", string(p)+":", n)
				}
			}
		}

		if metrics.OldestEvent != nil {
			fmt.Printf("\n  %-24s %s\n", "Oldest event:", metrics.OldestEvent.Format(time.RFC3339))
		}
		if metrics.NewestEvent != nil {
			fmt.Printf("  %-24s %s\n", "Newest event:", metrics.NewestEvent.Format(time.RFC3339))
		}

		return nil
	},
}

type taskCounts struct {
	open    int
	done    int
	overdue int
}

// countTasks tallies the store by state; overdue counts open tasks whose due
// date has passed.
func countTasks(tasks []models.Task, today models.Date) taskCounts {
	var c taskCounts
	for _, t := range tasks {
		if t.Done {
			c.done++
			continue
		}
		c.open++
		if t.DueDate.Before(today) {
			c.overdue++
		}
	}
	return c
}

func printStatsJSON(counts taskCounts, since time.Time) error {
	out := map[string]any{
		"open":    counts.open,
		"done":    counts.done,
		"overdue": counts.overdue,
	}
	if MetricsCalc != nil {
		metrics, err := MetricsCalc.Calculate(since)
		if err != nil {
			return fmt.Errorf("calculating metrics: %w", err)
		}
		out["activity"] = metrics
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("formatting stats as JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// parseSinceDuration parses a human-friendly duration string like "7d",
// "30d", or "24h" and returns the corresponding time in the past.
func parseSinceDuration(s string) (time.Time, error) {
	now := time.Now().UTC()
	s = strings.TrimSpace(s)
	if s == "" {
		return now.AddDate(0, 0, -7), nil
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return now.AddDate(0, 0, -days), nil
	}

	if strings.HasSuffix(s, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(s, "h"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}

	return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", s)
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output stats as JSON")
	statsCmd.Flags().StringVar(&statsSince, "since", "7d", "Time window for activity metrics (e.g. 7d, 30d, 24h)")
	rootCmd.AddCommand(statsCmd)
}
