// Package tasks implements the add, list and mark-done operations over a
// task store. Every operation loads the collection fresh, mutates it, and
// saves it back; problems are printed for the user, never returned.
package tasks

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/studytasks/internal/logging"
	"github.com/idilsaglam/studytasks/internal/model"
	"github.com/idilsaglam/studytasks/internal/store/jsonstore"
	"github.com/idilsaglam/studytasks/internal/ui"
)

// User-facing messages.
const (
	MsgNoTasks      = "No tasks found. Add a task to get started!"
	MsgListHeader   = "--- Your Tasks ---"
	MsgListFooter   = "------------------"
	MsgAlreadyDone  = "Task already marked as done."
	MsgIDNotFound   = "Error: Task ID not found."
	MsgSaveFailed   = "Error: Could not save tasks."
	MsgIDsExhausted = "Error: No task IDs left."
	MsgLoadWarning  = "Warning: " + jsonstore.LoadWarning
	msgAddedFmt     = "Task added: '%s'"
	msgMarkedFmt    = "Task %d marked as done."
)

// Store is the persistence the operations need.
type Store interface {
	Load() (model.Collection, jsonstore.Recovery)
	Save(model.Collection) error
}

// Repository runs the operations against one store.
type Repository struct {
	store  Store
	out    *ui.Printer
	logger *log.Logger
}

// New returns a Repository. A nil logger discards diagnostics.
func New(store Store, out *ui.Printer, logger *log.Logger) *Repository {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Repository{store: store, out: out, logger: logger}
}

// ErrIDsExhausted is returned by Add when the highest id is already math.MaxInt.
var ErrIDsExhausted = errors.New("task ids exhausted")

// NextID returns 1 for an empty collection, otherwise the highest id plus one.
// Ids are never reused. ok is false when the next id would overflow.
func NextID(c model.Collection) (id int, ok bool) {
	max := c.MaxID()
	if max == math.MaxInt {
		return 0, false
	}
	return max + 1, true
}

// Load reads the collection, warning the user when the store was unusable.
func (r *Repository) Load() model.Collection {
	tasks, rec := r.store.Load()
	if rec != jsonstore.RecoveryNone {
		r.logger.Debug("store recovered", "recovery", rec)
		r.out.Warn(MsgLoadWarning)
	}
	return tasks
}

// AddResult describes what Add did.
type AddResult struct {
	Task  model.Task
	Saved bool
	Err   error
}

// Add appends a pending task with a fresh id. The title is taken as is;
// callers reject blank titles.
func (r *Repository) Add(title string) AddResult {
	tasks := r.Load()

	id, ok := NextID(tasks)
	if !ok {
		r.out.Fail(MsgIDsExhausted)
		return AddResult{Err: ErrIDsExhausted}
	}
	task := model.Task{
		ID:    id,
		Title: title,
		Done:  false,
	}
	tasks = append(tasks, task)

	if err := r.save(tasks); err != nil {
		return AddResult{Task: task, Err: err}
	}
	r.out.OK(fmt.Sprintf(msgAddedFmt, title))
	return AddResult{Task: task, Saved: true}
}

// List prints every task in order and returns the loaded collection.
func (r *Repository) List() model.Collection {
	tasks := r.Load()

	if len(tasks) == 0 {
		r.out.Println(MsgNoTasks)
		return tasks
	}

	r.out.Println("")
	r.out.Heading(MsgListHeader)
	for _, t := range tasks {
		r.out.Println(r.out.TaskLine(t))
	}
	r.out.Println(MsgListFooter)
	r.out.Println("")
	return tasks
}

// MarkResult is the outcome of MarkDone.
type MarkResult int

const (
	MarkDone MarkResult = iota
	MarkAlreadyDone
	MarkNotFound
	MarkSaveFailed
)

func (m MarkResult) String() string {
	switch m {
	case MarkDone:
		return "done"
	case MarkAlreadyDone:
		return "already-done"
	case MarkNotFound:
		return "not-found"
	case MarkSaveFailed:
		return "save-failed"
	}
	return fmt.Sprintf("mark(%d)", int(m))
}

// MarkDone flips the first task with id to done. Nothing is written when
// the task is missing or already done.
func (r *Repository) MarkDone(id int) MarkResult {
	tasks := r.Load()

	i := tasks.Index(id)
	if i < 0 {
		r.out.Fail(MsgIDNotFound)
		return MarkNotFound
	}
	if tasks[i].Done {
		r.out.Info(MsgAlreadyDone)
		return MarkAlreadyDone
	}

	tasks[i].Done = true
	if err := r.save(tasks); err != nil {
		return MarkSaveFailed
	}
	r.out.OK(fmt.Sprintf(msgMarkedFmt, id))
	return MarkDone
}

func (r *Repository) save(tasks model.Collection) error {
	if err := r.store.Save(tasks); err != nil {
		r.logger.Debug("save failed", "err", err)
		r.out.Fail(MsgSaveFailed)
		return err
	}
	return nil
}
