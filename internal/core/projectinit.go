package core

import (
	"fmt"
	"os"
	"path/filepath"
)

// InitResult holds a summary of what initialization created vs. skipped.
type InitResult struct {
	Created []string
	Skipped []string
}

// WorkspaceInitializer defines the interface for initializing a tdo home
// directory with its configuration file and an empty task file.
type WorkspaceInitializer interface {
	Init(basePath string) (*InitResult, error)
}

type workspaceInitializer struct{}

// NewWorkspaceInitializer creates a new WorkspaceInitializer.
func NewWorkspaceInitializer() WorkspaceInitializer {
	return &workspaceInitializer{}
}

// defaultConfigFile is the commented .tdoconfig written for new workspaces.
// It spells out every default so the values are easy to edit.
const defaultConfigFile = `# tdo configuration.

storage:
  # Task file, resolved relative to this directory.
  file: tasks.json

defaults:
  # Priority assigned when "tdo add" is not given one: low, medium, or high.
  priority: medium

observability:
  # Set to false to stop recording task events.
  enabled: true
  event_log: .tdo_events.jsonl

alerts:
  # A task counts as due soon this many days before its due date.
  due_soon_days: 3
  # An open task counts as stale after this many days without activity.
  stale_days: 7
  # Alert when more open tasks than this accumulate.
  max_open_tasks: 20
`

// emptyTaskFile is the task file contents for a fresh workspace.
const emptyTaskFile = `{
  "schema_version": 1,
  "next_id": 1,
  "tasks": []
}
`

// gitignoreFile keeps the append-only event log out of version control.
const gitignoreFile = ".tdo_events.jsonl\n"

// Init creates the tdo home directory, the .tdoconfig file, and an empty
// task file. It is safe to run on existing workspaces: files that already
// exist are skipped and never overwritten.
func (wi *workspaceInitializer) Init(basePath string) (*InitResult, error) {
	result := &InitResult{}

	if err := os.MkdirAll(basePath, 0o750); err != nil {
		return nil, fmt.Errorf("initializing workspace: creating directory %s: %w", basePath, err)
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(basePath, ".tdoconfig"), defaultConfigFile},
		{filepath.Join(basePath, "tasks.json"), emptyTaskFile},
		{filepath.Join(basePath, ".gitignore"), gitignoreFile},
	}
	for _, f := range files {
		created, err := writeFileIfNotExists(f.path, []byte(f.content))
		if err != nil {
			return nil, fmt.Errorf("initializing workspace: %w", err)
		}
		if created {
			result.Created = append(result.Created, f.path)
		} else {
			result.Skipped = append(result.Skipped, f.path)
		}
	}

	return result, nil
}

// writeFileIfNotExists writes content to path unless the file already
// exists. Returns true if the file was created.
func writeFileIfNotExists(path string, content []byte) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
