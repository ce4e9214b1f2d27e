package cli

import (
	"errors"
	"testing"

	"github.com/tdo-cli/tdo/internal/core"
	"github.com/tdo-cli/tdo/pkg/models"
)

func TestPriorityCommand(t *testing.T) {
	tracker := newFakeTracker(models.Task{ID: 1, Title: "tweak", Priority: models.PriorityLow, DueDate: models.NewDate(2025, 1, 1)})
	restore := swapTracker(tracker)
	defer restore()

	if err := priorityCmd.RunE(priorityCmd, []string{"1", "high"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tracker.tasks[0].Priority != models.PriorityHigh {
		t.Errorf("expected priority high, got %s", tracker.tasks[0].Priority)
	}

	// The new priority shows up in a subsequent list.
	tasks, err := Tracker.ListTasks()
	if err != nil {
		t.Fatalf("listing tasks: %v", err)
	}
	if tasks[0].Priority != models.PriorityHigh {
		t.Errorf("expected listed priority high, got %s", tasks[0].Priority)
	}
}

func TestPriorityCommand_InvalidToken(t *testing.T) {
	tracker := newFakeTracker(models.Task{ID: 1, Title: "tweak", Priority: models.PriorityLow, DueDate: models.NewDate(2025, 1, 1)})
	restore := swapTracker(tracker)
	defer restore()

	err := priorityCmd.RunE(priorityCmd, []string{"1", "URGENT"})
	if !errors.Is(err, core.ErrInvalidPriority) {
		t.Fatalf("expected invalid-priority error, got %v", err)
	}
	// Validation failed before the tracker ran; nothing changed.
	if tracker.tasks[0].Priority != models.PriorityLow {
		t.Errorf("expected priority unchanged, got %s", tracker.tasks[0].Priority)
	}
}

func TestPriorityCommand_NotFound(t *testing.T) {
	restore := swapTracker(newFakeTracker())
	defer restore()

	if err := priorityCmd.RunE(priorityCmd, []string{"5", "low"}); !core.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestPriorityCommand_NilTracker(t *testing.T) {
	restore := swapTracker(nil)
	defer restore()

	if err := priorityCmd.RunE(priorityCmd, []string{"1", "low"}); err == nil {
		t.Fatal("expected error when Tracker is nil")
	}
}
