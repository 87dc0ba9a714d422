package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todos/internal/datelabel"
	"github.com/idilsaglam/todos/internal/model"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; two concurrent invocations race and the last writer wins.

// DefaultPath is the backing file used when no path is configured.
const DefaultPath = "db.json"

// ErrIndexOutOfRange is returned by At for positions outside the collection.
var ErrIndexOutOfRange = errors.New("index out of range")

// file is the on-disk wrapper. Todos is a pointer so a document without the
// field is told apart from one with an empty list.
type file struct {
	Todos *[]model.Todo `json:"todos"`
}

// Store is the in-memory, ordered todo collection and its backing file.
type Store struct {
	path   string
	todos  []model.Todo
	logger *log.Logger
	now    func() time.Time
	loc    *time.Location
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for parse diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock overrides the clock used for ids and creation times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation sets the time zone used for the stored date string.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New returns an empty store backed by path (DefaultPath when empty).
// Nothing is read until Load.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultPath
	}
	s := &Store{
		path:   path,
		todos:  []model.Todo{},
		logger: log.Default(),
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads the backing file, creating it when absent.
//
// Empty or whitespace-only content yields an empty collection. Content that
// does not parse as {"todos": [...]} is logged and the current collection is
// kept; Load still returns nil in that case. Only I/O failures are returned.
func (s *Store) Load() error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if strings.TrimSpace(string(b)) == "" {
		s.todos = []model.Todo{}
		return nil
	}

	var doc file
	err = json.Unmarshal(b, &doc)
	if err == nil && doc.Todos == nil {
		err = errors.New("missing field \"todos\"")
	}
	if err != nil {
		s.logger.Error("could not parse todo file, keeping current todos", "path", s.path, "err", err)
		return nil
	}
	s.todos = *doc.Todos
	if s.todos == nil {
		s.todos = []model.Todo{}
	}
	s.logger.Debug("loaded todos", "path", s.path, "count", len(s.todos))
	return nil
}

// Save overwrites the backing file with the whole collection as indented
// JSON. The file must already exist (Load creates it); Save never creates it.
func (s *Store) Save() error {
	todos := s.todos
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.MarshalIndent(file{Todos: &todos}, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	if _, err := f.Write(b); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	s.logger.Debug("saved todos", "path", s.path, "count", len(s.todos))
	return nil
}

// Todos returns the live collection in insertion order. Callers may mutate
// elements in place (the interactive view does); Save persists them.
func (s *Store) Todos() []model.Todo { return s.todos }

// Len returns the number of todos.
func (s *Store) Len() int { return len(s.todos) }

// At returns the todo at position i of the current order.
func (s *Store) At(i int) (model.Todo, error) {
	if i < 0 || i >= len(s.todos) {
		return model.Todo{}, fmt.Errorf("%w: have %d, got %d", ErrIndexOutOfRange, len(s.todos), i)
	}
	return s.todos[i], nil
}

// Add appends a new, incomplete todo and returns it.
func (s *Store) Add(text string) model.Todo {
	now := s.now()
	t := model.Todo{
		ID:          s.nextID(now),
		CreatedAt:   now.Unix(),
		CreatedDate: datelabel.FormatDate(now.Unix(), s.loc),
		Text:        text,
	}
	s.todos = append(s.todos, t)
	return t
}

// nextID keeps the epoch-seconds flavour of ids but never reuses one: a
// second todo created within the same second gets the next integer.
func (s *Store) nextID(now time.Time) int64 {
	id := now.Unix()
	for _, t := range s.todos {
		if t.ID >= id {
			id = t.ID + 1
		}
	}
	return id
}

// Remove deletes the todo with the given id. Unknown ids are ignored.
func (s *Store) Remove(id int64) {
	out := s.todos[:0]
	for _, t := range s.todos {
		if t.ID != id {
			out = append(out, t)
		}
	}
	s.todos = out
}

// MarkCompleted marks the todo with the given id as done.
func (s *Store) MarkCompleted(id int64) { s.setCompleted(id, true) }

// UnmarkCompleted marks the todo with the given id as not done.
func (s *Store) UnmarkCompleted(id int64) { s.setCompleted(id, false) }

func (s *Store) setCompleted(id int64, done bool) {
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i].SetCompleted(done)
			return
		}
	}
}
