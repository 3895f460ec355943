package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/studytasks/internal/logging"
	"github.com/idilsaglam/studytasks/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// DefaultFileName is the store file used when no config overrides it.
const DefaultFileName = "tasks.json"

// LoadWarning is the text shown to the user when the store had to be discarded.
const LoadWarning = "Could not read tasks file. Starting with empty list."

// Recovery tells the caller how Load got its result.
type Recovery int

const (
	RecoveryNone       Recovery = iota // file parsed, or absent
	RecoveryEmpty                      // file present but blank
	RecoveryReadFailed                 // I/O error while reading
	RecoveryCorrupt                    // bad JSON, schema mismatch or duplicate ids
)

func (r Recovery) String() string {
	switch r {
	case RecoveryNone:
		return "none"
	case RecoveryEmpty:
		return "empty"
	case RecoveryReadFailed:
		return "read-failed"
	case RecoveryCorrupt:
		return "corrupt"
	}
	return fmt.Sprintf("recovery(%d)", int(r))
}

// Store is a handle on one task file.
type Store struct {
	path   string
	logger *log.Logger
}

// New returns a store for path. A nil logger discards diagnostics.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the collection. It never fails: anything it cannot use is
// replaced by an empty collection and reported through the Recovery value.
func (s *Store) Load() (model.Collection, Recovery) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Collection{}, RecoveryNone
		}
		s.discard(fmt.Errorf("read file: %w", err))
		return model.Collection{}, RecoveryReadFailed
	}
	if len(bytes.TrimSpace(b)) == 0 {
		s.discard(errors.New("file is empty"))
		return model.Collection{}, RecoveryEmpty
	}
	tasks, err := decode(b)
	if err != nil {
		s.discard(err)
		return model.Collection{}, RecoveryCorrupt
	}
	return tasks, RecoveryNone
}

// Save writes the full collection, replacing the file via a temp file rename.
func (s *Store) Save(tasks model.Collection) error {
	if tasks == nil {
		tasks = model.Collection{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

func (s *Store) discard(cause error) {
	s.logger.Debug("store discarded", "path", s.path, "err", cause)
}

func decode(b []byte) (model.Collection, error) {
	if err := validateDocument(b); err != nil {
		return nil, err
	}
	var tasks model.Collection
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	seen := make(map[int]struct{}, len(tasks))
	for _, t := range tasks {
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return tasks, nil
}
