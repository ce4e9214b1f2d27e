package cli

import (
	"slices"

	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/pkg/models"
)

// fakeTracker implements core.Tracker in memory for command tests. When err
// is set, every operation fails with it.
type fakeTracker struct {
	tasks  []models.Task
	nextID uint64
	err    error
}

func newFakeTracker(tasks ...models.Task) *fakeTracker {
	f := &fakeTracker{nextID: 1}
	for _, t := range tasks {
		f.tasks = append(f.tasks, t)
		if t.ID >= f.nextID {
			f.nextID = t.ID + 1
		}
	}
	return f
}

func (f *fakeTracker) AddTask(title, description string, priority models.Priority, due models.Date) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	task := models.Task{
		ID:          f.nextID,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     due,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

func (f *fakeTracker) RemoveTask(id uint64) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = slices.Delete(f.tasks, i, i+1)
			return t, nil
		}
	}
	return models.Task{}, core.NotFoundError{ID: id}
}

func (f *fakeTracker) MarkDone(id uint64) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Done = true
			return f.tasks[i], nil
		}
	}
	return models.Task{}, core.NotFoundError{ID: id}
}

func (f *fakeTracker) ChangePriority(id uint64, priority models.Priority) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Priority = priority
			return f.tasks[i], nil
		}
	}
	return models.Task{}, core.NotFoundError{ID: id}
}

func (f *fakeTracker) ListTasks() ([]models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.tasks), nil
}

func (f *fakeTracker) GetTask(id uint64) (models.Task, error) {
	if f.err != nil {
		return models.Task{}, f.err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, core.NotFoundError{ID: id}
}

// swapTracker installs a fake tracker and returns a restore function for
// deferred cleanup.
func swapTracker(f core.Tracker) func() {
	orig := Tracker
	Tracker = f
	return func() { Tracker = orig }
}
