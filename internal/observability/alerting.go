package observability

import (
	"fmt"
	"time"

	"github.com/tdo-cli/tdo/pkg/models"
)

// AlertSeverity represents the urgency of an alert.
type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
	SeverityLow    AlertSeverity = "low"
)

// Alert represents a triggered alert condition.
type Alert struct {
	ID          string        `json:"id"`
	Condition   string        `json:"condition"`
	Severity    AlertSeverity `json:"severity"`
	Message     string        `json:"message"`
	TriggeredAt time.Time     `json:"triggered_at"`
}

// AlertThresholds configures when alerts should fire.
type AlertThresholds struct {
	DueSoonDays  int `yaml:"due_soon_days" json:"due_soon_days"`
	StaleDays    int `yaml:"stale_days" json:"stale_days"`
	MaxOpenTasks int `yaml:"max_open_tasks" json:"max_open_tasks"`
}

// DefaultAlertThresholds returns sensible defaults for alert thresholds.
func DefaultAlertThresholds() AlertThresholds {
	return AlertThresholds{
		DueSoonDays:  3,
		StaleDays:    7,
		MaxOpenTasks: 20,
	}
}

// TaskSource provides the current task list to the alert engine. Defining it
// here avoids importing the storage package.
type TaskSource interface {
	Tasks() ([]models.Task, error)
}

// AlertEngine evaluates alert conditions against the task list and the
// event log.
type AlertEngine interface {
	Evaluate() ([]Alert, error)
}

// alertEngine implements AlertEngine by combining the live task list with
// activity derived from the event log.
type alertEngine struct {
	tasks      TaskSource
	eventLog   EventLog
	thresholds AlertThresholds
}

// NewAlertEngine creates a new AlertEngine. eventLog may be nil, in which
// case activity-based conditions are skipped.
func NewAlertEngine(tasks TaskSource, eventLog EventLog, thresholds AlertThresholds) AlertEngine {
	return &alertEngine{
		tasks:      tasks,
		eventLog:   eventLog,
		thresholds: thresholds,
	}
}

// Evaluate checks all alert conditions, returning any triggered alerts.
func (ae *alertEngine) Evaluate() ([]Alert, error) {
	now := time.Now().UTC()
	today := models.Today()

	tasks, err := ae.tasks.Tasks()
	if err != nil {
		return nil, fmt.Errorf("listing tasks for alerts: %w", err)
	}

	var alerts []Alert
	alerts = append(alerts, ae.checkDueDates(tasks, today, now)...)

	staleAlerts, err := ae.checkStaleTasks(tasks, now)
	if err != nil {
		return nil, fmt.Errorf("checking stale tasks: %w", err)
	}
	alerts = append(alerts, staleAlerts...)

	alerts = append(alerts, ae.checkOpenCount(tasks, now)...)

	return alerts, nil
}

// checkDueDates flags open tasks that are overdue or inside the due-soon
// window.
func (ae *alertEngine) checkDueDates(tasks []models.Task, today models.Date, now time.Time) []Alert {
	var alerts []Alert
	for _, task := range tasks {
		if task.Done {
			continue
		}
		days := task.DueDate.DaysFrom(today)
		switch {
		case days < 0:
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("overdue-%d", task.ID),
				Condition:   "task_overdue",
				Severity:    SeverityHigh,
				Message:     fmt.Sprintf("task %d %q was due %s", task.ID, task.Title, task.DueDate),
				TriggeredAt: now,
			})
		case days <= ae.thresholds.DueSoonDays:
			var when string
			switch days {
			case 0:
				when = "today"
			case 1:
				when = "tomorrow"
			default:
				when = fmt.Sprintf("in %d days", days)
			}
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("due-soon-%d", task.ID),
				Condition:   "task_due_soon",
				Severity:    SeverityMedium,
				Message:     fmt.Sprintf("task %d %q is due %s", task.ID, task.Title, when),
				TriggeredAt: now,
			})
		}
	}
	return alerts
}

// checkStaleTasks flags open tasks with no recorded activity for longer than
// the threshold. Without an event log the check is skipped.
func (ae *alertEngine) checkStaleTasks(tasks []models.Task, now time.Time) ([]Alert, error) {
	if ae.eventLog == nil {
		return nil, nil
	}
	events, err := ae.eventLog.Read(EventFilter{})
	if err != nil {
		return nil, err
	}

	// Track the latest activity per task. Event data decodes JSON numbers
	// as float64.
	lastActivity := make(map[uint64]time.Time)
	for _, event := range events {
		raw, ok := event.Data["task_id"].(float64)
		if !ok {
			continue
		}
		id := uint64(raw)
		if event.Time.After(lastActivity[id]) {
			lastActivity[id] = event.Time
		}
	}

	threshold := time.Duration(ae.thresholds.StaleDays) * 24 * time.Hour
	var alerts []Alert
	for _, task := range tasks {
		if task.Done {
			continue
		}
		last, ok := lastActivity[task.ID]
		if !ok {
			continue
		}
		if now.Sub(last) > threshold {
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("stale-%d", task.ID),
				Condition:   "task_stale",
				Severity:    SeverityLow,
				Message:     fmt.Sprintf("task %d %q has had no activity for more than %d days", task.ID, task.Title, ae.thresholds.StaleDays),
				TriggeredAt: now,
			})
		}
	}
	return alerts, nil
}

// checkOpenCount alerts when too many open tasks accumulate.
func (ae *alertEngine) checkOpenCount(tasks []models.Task, now time.Time) []Alert {
	open := 0
	for _, task := range tasks {
		if !task.Done {
			open++
		}
	}
	if open <= ae.thresholds.MaxOpenTasks {
		return nil
	}
	return []Alert{{
		ID:          "open-count",
		Condition:   "too_many_open_tasks",
		Severity:    SeverityLow,
		Message:     fmt.Sprintf("%d tasks are open, exceeding the maximum of %d", open, ae.thresholds.MaxOpenTasks),
		TriggeredAt: now,
	}}
}
