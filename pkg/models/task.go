package models

// Priority is the urgency level of a task. The constant values double as the
// CLI tokens, the config values, and the wire form, and are case-sensitive.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities for display and alerting. Higher is more urgent;
// an unknown priority ranks below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Valid reports whether p is one of the three known priority levels.
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Task is a single tracked item. IDs are assigned by the store and stay
// unique for the lifetime of the task file, including across removals.
type Task struct {
	ID          uint64   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Done        bool     `json:"done" yaml:"done"`
	Priority    Priority `json:"priority" yaml:"priority"`
	DueDate     Date     `json:"due_date" yaml:"due_date"`
}
