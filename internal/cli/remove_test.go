package cli

import (
	"testing"

	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/pkg/models"
)

func TestRemoveCommand(t *testing.T) {
	tracker := newFakeTracker(
		models.Task{ID: 1, Title: "keep", Priority: models.PriorityLow, DueDate: models.NewDate(2025, 1, 1)},
		models.Task{ID: 2, Title: "drop", Priority: models.PriorityLow, DueDate: models.NewDate(2025, 1, 1)},
	)
	restore := swapTracker(tracker)
	defer restore()

	if err := removeCmd.RunE(removeCmd, []string{"2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tracker.tasks) != 1 || tracker.tasks[0].ID != 1 {
		t.Errorf("expected only task 1 to remain, got %v", tracker.tasks)
	}
}

func TestRemoveCommand_NotFound(t *testing.T) {
	restore := swapTracker(newFakeTracker())
	defer restore()

	err := removeCmd.RunE(removeCmd, []string{"99"})
	if err == nil {
		t.Fatal("expected error for missing task")
	}
	if !core.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}

func TestRemoveCommand_RemoveTwice(t *testing.T) {
	tracker := newFakeTracker(models.Task{ID: 1, Title: "once", Priority: models.PriorityLow, DueDate: models.NewDate(2025, 1, 1)})
	restore := swapTracker(tracker)
	defer restore()

	if err := removeCmd.RunE(removeCmd, []string{"1"}); err != nil {
		t.Fatalf("first removal failed: %v", err)
	}
	if err := removeCmd.RunE(removeCmd, []string{"1"}); !core.IsNotFound(err) {
		t.Errorf("expected not-found on second removal, got %v", err)
	}
}

func TestRemoveCommand_BadID(t *testing.T) {
	restore := swapTracker(newFakeTracker())
	defer restore()

	if err := removeCmd.RunE(removeCmd, []string{"abc"}); err == nil {
		t.Fatal("expected error for non-numeric ID")
	}
}

func TestRemoveCommand_NilTracker(t *testing.T) {
	restore := swapTracker(nil)
	defer restore()

	if err := removeCmd.RunE(removeCmd, []string{"1"}); err == nil {
		t.Fatal("expected error when Tracker is nil")
	}
}
