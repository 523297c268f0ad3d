package project

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// DefaultNamespace prefixes every key a Repository writes.
const DefaultNamespace = "form-builder"

// Option customises a Repository.
type Option func(*Repository)

// WithNamespace overrides DefaultNamespace.
func WithNamespace(namespace string) Option {
	return func(r *Repository) {
		if ns := strings.TrimSpace(namespace); ns != "" {
			r.namespace = ns
		}
	}
}

// WithClock injects the time source used for LastModified.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		if now != nil {
			r.now = now
		}
	}
}

// WithIDGenerator injects the project ID source.
func WithIDGenerator(newID func() string) Option {
	return func(r *Repository) {
		if newID != nil {
			r.newID = newID
		}
	}
}

// WithLogger routes repository logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Repository persists projects and the current work in a Store under
// "<namespace>:project:<id>" and "<namespace>:current".
type Repository struct {
	store     Store
	namespace string
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
}

// NewRepository wraps store. A nil store gets a fresh MemoryStore.
func NewRepository(store Store, options ...Option) *Repository {
	if store == nil {
		store = NewMemoryStore()
	}
	r := &Repository{
		store:     store,
		namespace: DefaultNamespace,
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

func (r *Repository) key(name string) string {
	return r.namespace + ":" + name
}

func (r *Repository) projectPrefix() string {
	return r.key("project:")
}

// Create stores a new project with a fresh ID.
func (r *Repository) Create(name, jsonSchema, uiSchema, data string) (Project, error) {
	return r.Save(Project{
		ID:         r.newID(),
		Name:       name,
		JSONSchema: jsonSchema,
		UISchema:   uiSchema,
		Data:       data,
	})
}

// Save writes p, replacing any project with the same ID. The name is
// sanitised and LastModified stamped.
func (r *Repository) Save(p Project) (Project, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return Project{}, ErrIDRequired
	}
	p.Name = SanitizeName(p.Name)
	if p.Name == "" {
		return Project{}, ErrNameRequired
	}
	p.LastModified = r.now().UnixMilli()

	if err := r.put(r.projectPrefix()+p.ID, p); err != nil {
		return Project{}, err
	}
	r.logger.Debug("project saved", slog.String("id", p.ID), slog.String("name", p.Name))
	return p, nil
}

// Get loads a project by ID.
func (r *Repository) Get(id string) (Project, error) {
	var p Project
	if err := r.get(r.projectPrefix()+id, &p); err != nil {
		return Project{}, err
	}
	return p, nil
}

// Delete removes a project. Deleting a missing project is not an error.
func (r *Repository) Delete(id string) error {
	if err := r.store.Remove(r.projectPrefix() + id); err != nil {
		return fmt.Errorf("project: remove %s: %w", id, err)
	}
	return nil
}

// List returns every readable project, most recently modified first.
func (r *Repository) List() ([]Project, error) {
	prefix := r.projectPrefix()
	keys, err := r.store.Keys(prefix)
	if err != nil {
		return nil, fmt.Errorf("project: list keys: %w", err)
	}

	projects := make([]Project, 0, len(keys))
	for _, key := range keys {
		p, err := r.Get(strings.TrimPrefix(key, prefix))
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].LastModified > projects[j].LastModified
	})
	return projects, nil
}

// Search returns the projects whose name contains query, ignoring case. A
// blank query matches everything.
func (r *Repository) Search(query string) ([]Project, error) {
	projects, err := r.List()
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return projects, nil
	}
	needle := strings.ToLower(query)
	matches := projects[:0]
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

// SaveCurrent records the work in progress.
func (r *Repository) SaveCurrent(jsonSchema, uiSchema, data string) (Current, error) {
	current := Current{
		JSONSchema:   jsonSchema,
		UISchema:     uiSchema,
		Data:         data,
		LastModified: r.now().UnixMilli(),
	}
	if err := r.put(r.key("current"), current); err != nil {
		return Current{}, err
	}
	return current, nil
}

// Current loads the work in progress.
func (r *Repository) Current() (Current, error) {
	var current Current
	if err := r.get(r.key("current"), &current); err != nil {
		return Current{}, err
	}
	return current, nil
}

func (r *Repository) put(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("project: encode %s: %w", key, err)
	}
	if err := r.store.Set(key, raw); err != nil {
		return fmt.Errorf("project: store %s: %w", key, err)
	}
	return nil
}

func (r *Repository) get(key string, out any) error {
	raw, err := r.store.Get(key)
	if errors.Is(err, ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("project: load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		r.logger.Warn("discarding unreadable entry", slog.String("key", key), slog.String("error", err.Error()))
		return ErrNotFound
	}
	return nil
}
