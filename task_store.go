// task_store.go implements the persisted schedule: a mutex-guarded,
// in-memory task list backed by a single JSON file.
//
// Every surface (REPL, HTTP, MCP) goes through this store. The file is read
// whole and rewritten whole on every mutation — there is exactly one writer
// per process, so the mutex is the only locking discipline needed.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// TaskStore holds the schedule in memory, protected by a mutex, and mirrors
// it to a JSON array file. Slice order is insertion order; the conflict
// checker and matcher both resolve ties by that order, so it must be stable
// across load/save round-trips.
type TaskStore struct {
	mu    sync.Mutex
	path  string
	tasks []Task
}

// NewTaskStore creates a store backed by the given file. The file is not
// touched until Load or the first mutation.
func NewTaskStore(path string) *TaskStore {
	return &TaskStore{path: path}
}

// Load reads the backing file into memory. A missing file is an empty
// schedule, and so is an unreadable one — a corrupt tasks.json should not
// take the assistant down, it just starts fresh (the corrupt file is only
// overwritten once a mutation succeeds).
func (s *TaskStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.tasks = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.tasks = nil
		return nil
	}
	s.tasks = tasks
	return nil
}

// save writes the full task list back to disk. Caller must hold s.mu.
// Four-space indent matches the historical on-disk format.
func (s *TaskStore) save() error {
	data, err := json.MarshalIndent(s.tasks, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Tasks returns a snapshot copy of the schedule in insertion order. Callers
// can read the copy freely without holding the store lock.
func (s *TaskStore) Tasks() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Count returns the number of stored tasks.
func (s *TaskStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Get returns a copy of the task with the given id.
func (s *TaskStore) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// Add stamps identity and metadata onto the given tasks, appends them, and
// persists. IDs are assigned here and nowhere else, so every stored task has
// a stable identity from birth.
func (s *TaskStore) Add(tasks []Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().Format(time.RFC3339)
	for i := range tasks {
		tasks[i].ID = uuid.NewString()
		tasks[i].Timestamp = now
		tasks[i].Status = "pending"
	}
	s.tasks = append(s.tasks, tasks...)
	return s.save()
}

// RemoveByID deletes the task with the given id and persists. Returns the
// removed task, or false if no task has that id (store left untouched).
func (s *TaskStore) RemoveByID(id string) (Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return t, true, s.save()
		}
	}
	return Task{}, false, nil
}

// Apply merges the given field updates into the task with the given id and
// persists. Merge is last-write-wins per field; unknown field names are
// ignored rather than rejected (the intent engine is not schema-checked).
// Returns the updated task, or false if no task has that id.
func (s *TaskStore) Apply(id string, fields map[string]string) (Task, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		for key, value := range fields {
			switch key {
			case "description", "task_description", "task", "title":
				t.Description = value
			case "date":
				t.Date = value
			case "start_time":
				t.StartTime = value
			case "end_time":
				t.EndTime = value
			case "category":
				t.Category = value
			case "status":
				t.Status = value
			}
		}
		return *t, true, s.save()
	}
	return Task{}, false, nil
}
