package cli

import (
	"testing"

	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/pkg/models"
)

func TestDoneCommand(t *testing.T) {
	tracker := newFakeTracker(models.Task{ID: 1, Title: "finish", Priority: models.PriorityHigh, DueDate: models.NewDate(2025, 1, 1)})
	restore := swapTracker(tracker)
	defer restore()

	if err := doneCmd.RunE(doneCmd, []string{"1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tracker.tasks[0].Done {
		t.Error("expected task 1 to be done")
	}
}

func TestDoneCommand_Idempotent(t *testing.T) {
	tracker := newFakeTracker(models.Task{ID: 1, Title: "finish", Priority: models.PriorityHigh, DueDate: models.NewDate(2025, 1, 1)})
	restore := swapTracker(tracker)
	defer restore()

	for i := 0; i < 2; i++ {
		if err := doneCmd.RunE(doneCmd, []string{"1"}); err != nil {
			t.Fatalf("marking done (attempt %d): %v", i+1, err)
		}
		if !tracker.tasks[0].Done {
			t.Fatalf("expected task done after attempt %d", i+1)
		}
	}
}

func TestDoneCommand_NotFound(t *testing.T) {
	restore := swapTracker(newFakeTracker())
	defer restore()

	if err := doneCmd.RunE(doneCmd, []string{"7"}); !core.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDoneCommand_NilTracker(t *testing.T) {
	restore := swapTracker(nil)
	defer restore()

	if err := doneCmd.RunE(doneCmd, []string{"1"}); err == nil {
		t.Fatal("expected error when Tracker is nil")
	}
}
