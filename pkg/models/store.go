package models

import (
	"fmt"
	"iter"
	"slices"
)

// Store is an ordered collection of tasks plus the counter used to mint task
// IDs. Insertion order is preserved except across removals, which swap the
// last task into the vacated slot. The counter only ever moves forward, so an
// ID is never handed out twice even after the highest-numbered task is
// removed.
type Store struct {
	tasks  []Task
	nextID uint64
}

// NewStore returns an empty store whose first assigned ID is 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// RestoreStore rebuilds a store from persisted state. Tasks with duplicate
// IDs and counters that trail the highest existing ID are rejected. A zero
// nextID falls back to max(ID)+1 so task files written before the counter
// was persisted remain loadable.
func RestoreStore(tasks []Task, nextID uint64) (*Store, error) {
	seen := make(map[uint64]struct{}, len(tasks))
	var maxID uint64
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task ID %d", t.ID)
		}
		seen[t.ID] = struct{}{}
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if nextID == 0 {
		nextID = maxID + 1
	} else if nextID <= maxID {
		return nil, fmt.Errorf("next ID %d not greater than highest task ID %d", nextID, maxID)
	}
	return &Store{tasks: slices.Clone(tasks), nextID: nextID}, nil
}

// Append assigns the next ID to task, adds it to the end of the store, and
// returns the stored task. Any ID already set on task is overwritten.
func (s *Store) Append(task Task) Task {
	task.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, task)
	return task
}

// SwapRemove deletes the task with the given ID by moving the last task into
// its place and truncating. Constant time, but the relative order of the
// remaining tasks is not preserved.
func (s *Store) SwapRemove(id uint64) (Task, bool) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			removed := s.tasks[i]
			last := len(s.tasks) - 1
			s.tasks[i] = s.tasks[last]
			s.tasks = s.tasks[:last]
			return removed, true
		}
	}
	return Task{}, false
}

// Find returns a pointer to the task with the given ID, or nil if no such
// task exists. The pointer is valid until the next Append or SwapRemove.
func (s *Store) Find(id uint64) *Task {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i]
		}
	}
	return nil
}

// All returns a finite, restartable iterator over copies of the tasks in
// current store order.
func (s *Store) All() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range s.tasks {
			if !yield(t) {
				return
			}
		}
	}
}

// Tasks returns a copy of the task list in current store order.
func (s *Store) Tasks() []Task {
	return slices.Clone(s.tasks)
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// NextID returns the ID the next appended task will receive.
func (s *Store) NextID() uint64 {
	return s.nextID
}
