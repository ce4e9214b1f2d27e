package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestFieldPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := newFieldPrompter(strings.NewReader("  Finish project  \n"), &out)

	got, err := p.ask("Title", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Finish project" {
		t.Errorf("expected trimmed input, got %q", got)
	}
	if out.String() != "Title: " {
		t.Errorf("expected plain prompt, got %q", out.String())
	}
}

func TestFieldPrompter_AskWithHint(t *testing.T) {
	var out bytes.Buffer
	p := newFieldPrompter(strings.NewReader("high\n"), &out)

	got, err := p.ask("Priority", "low/medium/high")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "high" {
		t.Errorf("expected %q, got %q", "high", got)
	}
	if out.String() != "Priority [low/medium/high]: " {
		t.Errorf("expected hinted prompt, got %q", out.String())
	}
}

func TestFieldPrompter_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := newFieldPrompter(strings.NewReader("22-12-2024"), &out)

	got, err := p.ask("Due date", "DD-MM-YYYY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "22-12-2024" {
		t.Errorf("expected final unterminated line to be read, got %q", got)
	}
}

func TestFieldPrompter_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	p := newFieldPrompter(strings.NewReader(""), &out)

	if _, err := p.ask("Title", ""); err == nil {
		t.Fatal("expected error when input is exhausted")
	}
}
