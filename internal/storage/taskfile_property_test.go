package storage

import (
	"os"
	"path/filepath"
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
		Done:        rapid.Bool().Draw(t, "done"),
		Priority:    genPriority(t),
		DueDate:     models.NewDate(year, month, day),
	}
}

// Feature: tdo, Property: Task File Round-Trip
// Saving any store and loading it back reproduces the tasks, their order,
// and the ID counter exactly.
func TestProperty_TaskFileRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dir, err := os.MkdirTemp("", "tdo-storage-*")
		if err != nil {
			t.Fatalf("creating temp dir: %v", err)
		}
		defer os.RemoveAll(dir)

		store := models.NewStore()
		n := rapid.IntRange(0, 25).Draw(t, "n")
		for i := 0; i < n; i++ {
			store.Append(genTask(t))
		}
		removals := rapid.IntRange(0, 5).Draw(t, "removals")
		for i := 0; i < removals && store.Len() > 0; i++ {
			live := store.Tasks()
			victim := live[rapid.IntRange(0, len(live)-1).Draw(t, "victimIdx")]
			store.SwapRemove(victim.ID)
		}

		m := NewStoreManager(filepath.Join(dir, "tasks.json"))
		if err := m.Save(store); err != nil {
			t.Fatalf("saving: %v", err)
		}
		loaded, err := m.Load()
		if err != nil {
			t.Fatalf("loading: %v", err)
		}

		if loaded.NextID() != store.NextID() {
			t.Fatalf("NextID = %d, want %d", loaded.NextID(), store.NextID())
		}
		got, want := loaded.Tasks(), store.Tasks()
		if len(got) != len(want) {
			t.Fatalf("loaded %d tasks, want %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("task %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})
}

// Feature: tdo, Property: Repeated Saves Are Stable
// Saving a loaded store again produces byte-identical file contents.
func TestProperty_RepeatedSavesAreStable(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		dir, err := os.MkdirTemp("", "tdo-storage-*")
		if err != nil {
			t.Fatalf("creating temp dir: %v", err)
		}
		defer os.RemoveAll(dir)

		store := models.NewStore()
		n := rapid.IntRange(0, 15).Draw(t, "n")
		for i := 0; i < n; i++ {
			store.Append(genTask(t))
		}

		m := NewStoreManager(filepath.Join(dir, "tasks.json"))
		if err := m.Save(store); err != nil {
			t.Fatalf("first save: %v", err)
		}
		first, err := os.ReadFile(m.Path())
		if err != nil {
			t.Fatalf("reading: %v", err)
		}

		loaded, err := m.Load()
		if err != nil {
			t.Fatalf("loading: %v", err)
		}
		if err := m.Save(loaded); err != nil {
			t.Fatalf("second save: %v", err)
		}
		second, err := os.ReadFile(m.Path())
		if err != nil {
			t.Fatalf("reading: %v", err)
		}

		if string(first) != string(second) {
			t.Fatalf("file contents changed across save-load-save:\n%s\nvs\n%s", first, second)
		}
	})
}
