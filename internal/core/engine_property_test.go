package core

import (
	"slices"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/tdo-cli/tdo/pkg/models"
)

func genPriority(t *rapid.T) models.Priority {
	priorities := []models.Priority{models.PriorityLow, models.PriorityMedium, models.PriorityHigh}
	return priorities[rapid.IntRange(0, len(priorities)-1).Draw(t, "priorityIdx")]
}

func genAlphaString(t *rapid.T, label string, minLen, maxLen int) string {
	letters := "abcdefghijklmnopqrstuvwxyz "
	n := rapid.IntRange(minLen, maxLen).Draw(t, label+"Len")
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rapid.IntRange(0, len(letters)-1).Draw(t, label+"Char")]
	}
	return string(b)
}

func genTask(t *rapid.T) models.Task {
	year := rapid.IntRange(2020, 2035).Draw(t, "year")
	month := time.Month(rapid.IntRange(1, 12).Draw(t, "month"))
	day := rapid.IntRange(1, 28).Draw(t, "day")
	return models.Task{
		Title:       genAlphaString(t, "title", 1, 40),
		Description: genAlphaString(t, "description", 0, 60),
		Priority:    genPriority(t),
		DueDate:     models.NewDate(year, month, day),
	}
}

// pickID draws either a live task ID or an ID that is very likely absent.
func pickID(t *rapid.T, model map[uint64]models.Task) uint64 {
	ids := make([]uint64, 0, len(model)+1)
	for id := range model {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	ids = append(ids, uint64(rapid.IntRange(1000, 2000).Draw(t, "missingID")))
	return ids[rapid.IntRange(0, len(ids)-1).Draw(t, "idIdx")]
}

// Feature: tdo, Property: Engine Agrees With A Map Model
// Applying an arbitrary command sequence leaves the store holding exactly
// the tasks a plain map model predicts, and only ID misses ever fail.
func TestProperty_EngineAgreesWithMapModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := models.NewStore()
		model := make(map[uint64]models.Task)

		ops := rapid.IntRange(1, 60).Draw(t, "ops")
		for i := 0; i < ops; i++ {
			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				result, err := Apply(AddTask{Task: genTask(t)}, store)
				if err != nil {
					t.Fatalf("adding task: %v", err)
				}
				if _, dup := model[result.Task.ID]; dup {
					t.Fatalf("ID %d assigned twice", result.Task.ID)
				}
				model[result.Task.ID] = result.Task
			case 1:
				id := pickID(t, model)
				_, err := Apply(RemoveTask{ID: id}, store)
				if _, ok := model[id]; ok {
					if err != nil {
						t.Fatalf("removing task %d: %v", id, err)
					}
					delete(model, id)
				} else if !IsNotFound(err) {
					t.Fatalf("removing missing task %d: %v", id, err)
				}
			case 2:
				id := pickID(t, model)
				_, err := Apply(MarkDone{ID: id}, store)
				if task, ok := model[id]; ok {
					if err != nil {
						t.Fatalf("marking task %d done: %v", id, err)
					}
					task.Done = true
					model[id] = task
				} else if !IsNotFound(err) {
					t.Fatalf("marking missing task %d done: %v", id, err)
				}
			case 3:
				id := pickID(t, model)
				priority := genPriority(t)
				_, err := Apply(ChangePriority{ID: id, Priority: priority}, store)
				if task, ok := model[id]; ok {
					if err != nil {
						t.Fatalf("changing priority of task %d: %v", id, err)
					}
					task.Priority = priority
					model[id] = task
				} else if !IsNotFound(err) {
					t.Fatalf("changing priority of missing task %d: %v", id, err)
				}
			}
		}

		if store.Len() != len(model) {
			t.Fatalf("store has %d tasks, model has %d", store.Len(), len(model))
		}
		for task := range store.All() {
			want, ok := model[task.ID]
			if !ok {
				t.Fatalf("store holds unexpected task %d", task.ID)
			}
			if task != want {
				t.Fatalf("task %d = %+v, model has %+v", task.ID, task, want)
			}
		}
	})
}

// Feature: tdo, Property: Listing Never Mutates The Store
// Draining the list sequence any number of times leaves tasks and the ID
// counter untouched, and the result never reports a mutation.
func TestProperty_ListNeverMutates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := models.NewStore()
		n := rapid.IntRange(0, 20).Draw(t, "n")
		for i := 0; i < n; i++ {
			if _, err := Apply(AddTask{Task: genTask(t)}, store); err != nil {
				t.Fatalf("adding task: %v", err)
			}
		}
		before := store.Tasks()
		beforeNext := store.NextID()

		result, err := Apply(ListTasks{}, store)
		if err != nil {
			t.Fatalf("listing tasks: %v", err)
		}
		if result.Mutated {
			t.Fatal("list reported a mutation")
		}
		passes := rapid.IntRange(1, 3).Draw(t, "passes")
		for p := 0; p < passes; p++ {
			var seen int
			for range result.List {
				seen++
			}
			if seen != n {
				t.Fatalf("pass %d saw %d tasks, want %d", p, seen, n)
			}
		}

		after := store.Tasks()
		if store.NextID() != beforeNext {
			t.Fatalf("counter changed: %d -> %d", beforeNext, store.NextID())
		}
		if len(after) != len(before) {
			t.Fatalf("task count changed: %d -> %d", len(before), len(after))
		}
		for i := range after {
			if after[i] != before[i] {
				t.Fatalf("task %d changed during list: %+v != %+v", i, after[i], before[i])
			}
		}
	})
}

// Feature: tdo, Property: Completing Twice Equals Completing Once
// A second mark-done is a no-op: the store is identical afterwards.
func TestProperty_MarkDoneIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		store := models.NewStore()
		n := rapid.IntRange(1, 15).Draw(t, "n")
		for i := 0; i < n; i++ {
			if _, err := Apply(AddTask{Task: genTask(t)}, store); err != nil {
				t.Fatalf("adding task: %v", err)
			}
		}
		live := store.Tasks()
		id := live[rapid.IntRange(0, len(live)-1).Draw(t, "idx")].ID

		if _, err := Apply(MarkDone{ID: id}, store); err != nil {
			t.Fatalf("first mark-done: %v", err)
		}
		once := store.Tasks()

		result, err := Apply(MarkDone{ID: id}, store)
		if err != nil {
			t.Fatalf("second mark-done: %v", err)
		}
		if !result.Mutated {
			t.Fatal("repeated mark-done should still report as applied")
		}
		twice := store.Tasks()
		for i := range twice {
			if twice[i] != once[i] {
				t.Fatalf("task %d changed on repeat: %+v != %+v", i, twice[i], once[i])
			}
		}
	})
}
