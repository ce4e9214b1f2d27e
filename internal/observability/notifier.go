package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Notifier delivers triggered alerts to the user.
type Notifier interface {
	Notify(alerts []Alert) error
}

// writerNotifier renders alerts to an io.Writer, typically the terminal.
type writerNotifier struct {
	out io.Writer
}

// NewWriterNotifier creates a Notifier that renders alerts to out, most
// severe first.
func NewWriterNotifier(out io.Writer) Notifier {
	return &writerNotifier{out: out}
}

// Notify writes the given alerts ordered by severity. It writes nothing when
// the alerts slice is empty.
func (n *writerNotifier) Notify(alerts []Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	ordered := make([]Alert, len(alerts))
	copy(ordered, alerts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return severityRank(ordered[i].Severity) < severityRank(ordered[j].Severity)
	})

	if _, err := fmt.Fprintf(n.out, "%d active alert(s):\n\n", len(ordered)); err != nil {
		return fmt.Errorf("writing alerts: %w", err)
	}
	for _, alert := range ordered {
		severity := strings.ToUpper(string(alert.Severity))
		if _, err := fmt.Fprintf(n.out, "  [%s] %s\n         triggered at %s\n\n",
			severity, alert.Message, alert.TriggeredAt.Format("2006-01-02 15:04 UTC")); err != nil {
			return fmt.Errorf("writing alerts: %w", err)
		}
	}
	return nil
}

// severityRank orders severities for display, most urgent first.
func severityRank(s AlertSeverity) int {
	switch s {
	case SeverityHigh:
		return 0
	case SeverityMedium:
		return 1
	case SeverityLow:
		return 2
	default:
		return 3
	}
}
