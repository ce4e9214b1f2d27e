package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tdo-cli/tdo/internal/observability"
)

var (
	eventsSince string
	eventsType  string
	eventsLimit int
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Show recent task events",
	Long: `Show events from the append-only event log, newest last.

Filter by time window with --since (e.g. 24h, 7d) and by event type with
--type (task.created, task.completed, task.removed, task.priority_changed).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if EventLog == nil {
			return fmt.Errorf("event log not initialized (observability may be disabled)")
		}

		filter := observability.EventFilter{Type: eventsType}
		if eventsSince != "" {
			since, err := parseSinceDuration(eventsSince)
			if err != nil {
				return fmt.Errorf("parsing --since: %w", err)
			}
			filter.Since = &since
		}

		events, err := EventLog.Read(filter)
		if err != nil {
			return fmt.Errorf("reading events: %w", err)
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		if eventsLimit > 0 && len(events) > eventsLimit {
			events = events[len(events)-eventsLimit:]
		}

		for _, event := range events {
			line := fmt.Sprintf("%s  %-5s %-24s", event.Time.Format(time.RFC3339), event.Level, event.Type)
			if len(event.Data) > 0 {
				data, err := json.Marshal(event.Data)
				if err == nil {
					line += "  " + string(data)
				}
			}
			fmt.Println(line)
		}
		fmt.Printf("\n%d event(s)\n", len(events))
		return nil
	},
}

func init() {
	eventsCmd.Flags().StringVar(&eventsSince, "since", "", "Time window (e.g. 24h, 7d); empty means everything")
	eventsCmd.Flags().StringVar(&eventsType, "type", "", "Filter by event type")
	eventsCmd.Flags().IntVar(&eventsLimit, "limit", 0, "Show only the most recent N events")
	rootCmd.AddCommand(eventsCmd)
}
