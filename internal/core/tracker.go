package core

import (
	"fmt"

	"github.com/tdo-cli/tdo/pkg/models"
)

// Tracker defines the lifecycle operations of the task tracker. Every call
// loads the store, applies one command, and saves the store back only when
// the command mutated it.
type Tracker interface {
	AddTask(title, description string, priority models.Priority, due models.Date) (models.Task, error)
	RemoveTask(id uint64) (models.Task, error)
	MarkDone(id uint64) (models.Task, error)
	ChangePriority(id uint64, priority models.Priority) (models.Task, error)
	ListTasks() ([]models.Task, error)
	GetTask(id uint64) (models.Task, error)
}

// tracker implements Tracker by coordinating the TaskStore and the command
// engine.
type tracker struct {
	store       TaskStore
	eventLogger EventLogger
}

// NewTracker creates a Tracker backed by store. eventLogger may be nil if
// event logging is not needed.
func NewTracker(store TaskStore, eventLogger EventLogger) Tracker {
	return &tracker{store: store, eventLogger: eventLogger}
}

// AddTask appends a new task built from the given, already-validated fields
// and returns it with its assigned ID.
func (tr *tracker) AddTask(title, description string, priority models.Priority, due models.Date) (models.Task, error) {
	store, err := tr.store.Load()
	if err != nil {
		return models.Task{}, fmt.Errorf("adding task: %w", err)
	}

	result, err := Apply(AddTask{Task: models.Task{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     due,
	}}, store)
	if err != nil {
		return models.Task{}, fmt.Errorf("adding task: %w", err)
	}
	if err := tr.saveIfMutated(result, store); err != nil {
		return models.Task{}, fmt.Errorf("adding task: %w", err)
	}

	tr.logEvent("task.created", map[string]any{
		"task_id":  result.Task.ID,
		"priority": string(result.Task.Priority),
		"due_date": result.Task.DueDate.String(),
	})
	return result.Task, nil
}

// RemoveTask deletes the task with the given ID and returns it.
func (tr *tracker) RemoveTask(id uint64) (models.Task, error) {
	store, err := tr.store.Load()
	if err != nil {
		return models.Task{}, fmt.Errorf("removing task: %w", err)
	}

	result, err := Apply(RemoveTask{ID: id}, store)
	if err != nil {
		return models.Task{}, fmt.Errorf("removing task: %w", err)
	}
	if err := tr.saveIfMutated(result, store); err != nil {
		return models.Task{}, fmt.Errorf("removing task: %w", err)
	}

	tr.logEvent("task.removed", map[string]any{
		"task_id":  result.Task.ID,
		"priority": string(result.Task.Priority),
	})
	return result.Task, nil
}

// MarkDone marks the task with the given ID as done and returns it.
func (tr *tracker) MarkDone(id uint64) (models.Task, error) {
	store, err := tr.store.Load()
	if err != nil {
		return models.Task{}, fmt.Errorf("marking task done: %w", err)
	}

	result, err := Apply(MarkDone{ID: id}, store)
	if err != nil {
		return models.Task{}, fmt.Errorf("marking task done: %w", err)
	}
	if err := tr.saveIfMutated(result, store); err != nil {
		return models.Task{}, fmt.Errorf("marking task done: %w", err)
	}

	tr.logEvent("task.completed", map[string]any{
		"task_id": result.Task.ID,
	})
	return result.Task, nil
}

// ChangePriority replaces the priority of the task with the given ID and
// returns the updated task.
func (tr *tracker) ChangePriority(id uint64, priority models.Priority) (models.Task, error) {
	store, err := tr.store.Load()
	if err != nil {
		return models.Task{}, fmt.Errorf("changing priority: %w", err)
	}

	var old models.Priority
	if task := store.Find(id); task != nil {
		old = task.Priority
	}

	result, err := Apply(ChangePriority{ID: id, Priority: priority}, store)
	if err != nil {
		return models.Task{}, fmt.Errorf("changing priority: %w", err)
	}
	if err := tr.saveIfMutated(result, store); err != nil {
		return models.Task{}, fmt.Errorf("changing priority: %w", err)
	}

	tr.logEvent("task.priority_changed", map[string]any{
		"task_id":      result.Task.ID,
		"old_priority": string(old),
		"new_priority": string(result.Task.Priority),
	})
	return result.Task, nil
}

// ListTasks returns all tasks in current store order.
func (tr *tracker) ListTasks() ([]models.Task, error) {
	store, err := tr.store.Load()
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	result, err := Apply(ListTasks{}, store)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}

	var tasks []models.Task
	for task := range result.List {
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// GetTask returns the task with the given ID without mutating anything.
func (tr *tracker) GetTask(id uint64) (models.Task, error) {
	store, err := tr.store.Load()
	if err != nil {
		return models.Task{}, fmt.Errorf("getting task: %w", err)
	}

	task := store.Find(id)
	if task == nil {
		return models.Task{}, NotFoundError{ID: id}
	}
	return *task, nil
}

func (tr *tracker) saveIfMutated(result Result, store *models.Store) error {
	if !result.Mutated {
		return nil
	}
	if err := tr.store.Save(store); err != nil {
		return fmt.Errorf("change may not have been saved: %w", err)
	}
	return nil
}

// logEvent emits an event if an EventLogger is configured. Event logging is
// best effort and never fails the command that triggered it.
func (tr *tracker) logEvent(eventType string, data map[string]any) {
	if tr.eventLogger != nil {
		_ = tr.eventLogger.LogEvent(eventType, data)
	}
}
