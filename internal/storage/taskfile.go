package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tdo-cli/tdo/pkg/models"
)

// ErrCorruptStore reports a task file that exists but cannot be trusted:
// unparseable JSON, a document that fails schema validation, duplicate task
// IDs, or an ID counter behind the highest task ID. A corrupt store is never
// silently replaced; the caller decides what to do with the file.
var ErrCorruptStore = errors.New("corrupt task file")

// schemaVersion is the task file format written by this version of tdo.
const schemaVersion = 1

// taskFileSchemaJSON constrains the raw document before it is decoded, so a
// hand-edited file fails loudly instead of half-loading.
const taskFileSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version", "tasks"],
  "additionalProperties": false,
  "properties": {
    "schema_version": {"const": 1},
    "next_id": {"type": "integer", "minimum": 0},
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "title", "description", "done", "priority", "due_date"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "integer", "minimum": 1},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "done": {"type": "boolean"},
          "priority": {"enum": ["low", "medium", "high"]},
          "due_date": {"type": "string", "pattern": "^[0-9]{2}-[0-9]{2}-[0-9]{4}$"}
        }
      }
    }
  }
}`

var taskFileSchema = jsonschema.MustCompileString("tasks.schema.json", taskFileSchemaJSON)

// taskFile is the top-level structure of the task file.
type taskFile struct {
	SchemaVersion int           `json:"schema_version"`
	NextID        uint64        `json:"next_id"`
	Tasks         []models.Task `json:"tasks"`
}

// StoreManager defines the interface for reading and writing the task file.
type StoreManager interface {
	// Load reads the whole store. A missing file yields a fresh empty store.
	Load() (*models.Store, error)
	// Save writes the whole store atomically.
	Save(store *models.Store) error
	// Path returns the task file location.
	Path() string
}

type fileStoreManager struct {
	path string
}

// NewStoreManager creates a StoreManager backed by the JSON task file at
// path.
func NewStoreManager(path string) StoreManager {
	return &fileStoreManager{path: path}
}

func (m *fileStoreManager) Path() string {
	return m.path
}

func (m *fileStoreManager) Load() (*models.Store, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewStore(), nil
		}
		return nil, fmt.Errorf("loading task file: %w", err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("loading task file: %w", corrupt(err))
	}
	if err := taskFileSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("loading task file: %w", corrupt(err))
	}

	var tf taskFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tf); err != nil {
		return nil, fmt.Errorf("loading task file: %w", corrupt(err))
	}

	store, err := models.RestoreStore(tf.Tasks, tf.NextID)
	if err != nil {
		return nil, fmt.Errorf("loading task file: %w", corrupt(err))
	}
	return store, nil
}

func (m *fileStoreManager) Save(store *models.Store) error {
	tasks := store.Tasks()
	if tasks == nil {
		tasks = []models.Task{}
	}
	data, err := json.MarshalIndent(taskFile{
		SchemaVersion: schemaVersion,
		NextID:        store.NextID(),
		Tasks:         tasks,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("saving task file: marshaling JSON: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(m.path, data, 0o600); err != nil {
		return fmt.Errorf("saving task file: %w", err)
	}
	return nil
}

func corrupt(err error) error {
	return fmt.Errorf("%w: %v", ErrCorruptStore, err)
}

// writeFileAtomic writes data to a temporary file in the target directory,
// syncs it, and renames it over path, so a crash mid-write can never leave a
// half-written task file behind.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return fsyncDir(dir)
}

func fsyncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
