package core

import (
	"errors"
	"fmt"
	"iter"

	"github.com/tdo-cli/tdo/pkg/models"
)

// Command is one validated operation against a task store. The concrete
// types are AddTask, RemoveTask, MarkDone, ChangePriority, and ListTasks.
// Commands are built from already-validated input; Apply checks only that
// referenced task IDs exist.
type Command interface {
	isCommand()
}

// AddTask appends a new task. The task is carried with ID zero; the store
// assigns the real ID during apply.
type AddTask struct {
	Task models.Task
}

// RemoveTask deletes the task with the given ID.
type RemoveTask struct {
	ID uint64
}

// MarkDone marks the task with the given ID as done. Marking an already
// done task again is a no-op success.
type MarkDone struct {
	ID uint64
}

// ChangePriority replaces the priority of the task with the given ID.
type ChangePriority struct {
	ID       uint64
	Priority models.Priority
}

// ListTasks yields the store's tasks without mutating anything.
type ListTasks struct{}

func (AddTask) isCommand()        {}
func (RemoveTask) isCommand()     {}
func (MarkDone) isCommand()       {}
func (ChangePriority) isCommand() {}
func (ListTasks) isCommand()      {}

// Result reports what applying a command did. Mutated tells the caller
// whether the store changed and needs to be persisted.
type Result struct {
	Mutated bool
	// Task is the created or affected task, zero for ListTasks.
	Task models.Task
	// List is the task sequence, set only for ListTasks.
	List iter.Seq[models.Task]
}

// NotFoundError reports a command that referenced a task ID not present in
// the store.
type NotFoundError struct {
	ID uint64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.ID)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var nf NotFoundError
	return errors.As(err, &nf)
}

// Apply executes cmd against store. A command either applies fully or
// returns an error with the store untouched; no partial state exists
// because each command touches at most one task.
func Apply(cmd Command, store *models.Store) (Result, error) {
	switch c := cmd.(type) {
	case AddTask:
		return Result{Mutated: true, Task: store.Append(c.Task)}, nil

	case RemoveTask:
		removed, ok := store.SwapRemove(c.ID)
		if !ok {
			return Result{}, NotFoundError{ID: c.ID}
		}
		return Result{Mutated: true, Task: removed}, nil

	case MarkDone:
		task := store.Find(c.ID)
		if task == nil {
			return Result{}, NotFoundError{ID: c.ID}
		}
		task.Done = true
		return Result{Mutated: true, Task: *task}, nil

	case ChangePriority:
		task := store.Find(c.ID)
		if task == nil {
			return Result{}, NotFoundError{ID: c.ID}
		}
		task.Priority = c.Priority
		return Result{Mutated: true, Task: *task}, nil

	case ListTasks:
		return Result{List: store.All()}, nil

	default:
		return Result{}, fmt.Errorf("unknown command type %T", cmd)
	}
}
