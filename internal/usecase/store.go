// Package usecase holds the resume store: the in-memory collection for the
// active session and every operation the editing surfaces perform on it.
package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/migration"
	"resume-builder/internal/model"
)

// ErrNotFound signals an operation referencing an id absent from the
// collection. Deletion tolerates it; duplication and update do not.
var ErrNotFound = errors.New("resume not found")

// Store owns the session's resume collection. All loads run migration once
// per record; all mutating operations keep insertion order and never
// duplicate an id. Persistence failures degrade gracefully and are only
// logged, matching the single-writer last-write-wins model.
type Store struct {
	mu      sync.Mutex
	storage repository.Storage
	log     zerolog.Logger

	collection model.Collection
	dirty      map[string]struct{}
}

func NewStore(storage repository.Storage, log zerolog.Logger) *Store {
	return &Store{
		storage: storage,
		log:     log.With().Str("component", "store").Logger(),
		collection: model.Collection{
			Resumes: []model.Resume{},
		},
		dirty: map[string]struct{}{},
	}
}

// Load reads the persisted collection, migrates every record and seeds a
// sample resume into an empty store. An unavailable or corrupt backend
// degrades to an empty collection; Load never fails.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.storage.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("persistence unavailable, starting with empty collection")
		raw = repository.RawCollection{Resumes: []map[string]interface{}{}}
	}

	changedAny := false
	resumes := make([]model.Resume, 0, len(raw.Resumes))
	for _, m := range raw.Resumes {
		if err := model.ValidateRaw(m); err != nil {
			s.log.Warn().Err(err).Msg("malformed record, coercing to defaults")
		}
		rec, changed := migration.Migrate(m)
		if changed {
			s.log.Info().Str("id", rec.ID).Msg("migrated record to current shape")
			changedAny = true
		}
		resumes = append(resumes, rec)
	}
	s.collection = model.Collection{Resumes: resumes, LastID: raw.LastID}

	if len(s.collection.Resumes) == 0 {
		s.collection.Resumes = []model.Resume{model.SampleResume()}
		s.collection.LastID = 1
		s.persist(ctx)
		return
	}

	// persist corrected shapes so future loads skip re-migration
	if changedAny {
		s.persist(ctx)
	}
}

// List returns records in insertion order. A non-empty query filters by
// case-insensitive substring match on the record name and the person's name.
func (s *Store) List(query string) []model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Resume, 0, len(s.collection.Resumes))
	q := strings.ToLower(query)
	for _, r := range s.collection.Resumes {
		if q == "" ||
			strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.PersonalInfo.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) Get(id string) (model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.index(id); i >= 0 {
		return s.collection.Resumes[i], nil
	}
	return model.Resume{}, ErrNotFound
}

// Create appends a new empty record and persists synchronously.
func (s *Store) Create(ctx context.Context, name string) model.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := model.NewEmptyResume(name)
	s.collection.Resumes = append(s.collection.Resumes, rec)
	s.collection.LastID++
	s.persist(ctx)
	return rec
}

// Duplicate deep-copies a record under a fresh id with a " (Copy)" name
// suffix and refreshed timestamps, appends it and persists synchronously.
func (s *Store) Duplicate(ctx context.Context, id string) (model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Resume{}, ErrNotFound
	}

	dup := clone(s.collection.Resumes[i])
	dup.ID = model.NewResumeID()
	dup.Name += " (Copy)"
	now := time.Now().UTC().Format(time.RFC3339Nano)
	dup.CreatedAt = now
	dup.UpdatedAt = now

	s.collection.Resumes = append(s.collection.Resumes, dup)
	s.collection.LastID++
	s.persist(ctx)
	return dup, nil
}

// Delete removes a record if present and persists. Deleting an absent id is
// a no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return
	}
	s.collection.Resumes = append(s.collection.Resumes[:i], s.collection.Resumes[i+1:]...)
	delete(s.dirty, id)
	s.persist(ctx)
}

// Update shallow-merges patch into the record's top-level fields and marks
// it dirty. Nested objects replace wholesale; id and createdAt are
// immutable; updatedAt moves only on commit. Update does not persist;
// committing is the caller's responsibility (autosave or manual save).
func (s *Store) Update(id string, patch map[string]interface{}) (model.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return model.Resume{}, ErrNotFound
	}

	current := s.collection.Resumes[i]
	merged := toMap(current)
	for k, v := range patch {
		switch k {
		case "id", "createdAt", "updatedAt":
			continue
		}
		merged[k] = v
	}

	// the tolerant decode keeps a malformed patch from corrupting the record
	rec, _ := migration.Migrate(merged)
	rec.ID = current.ID
	rec.CreatedAt = current.CreatedAt
	rec.UpdatedAt = current.UpdatedAt

	s.collection.Resumes[i] = rec
	s.dirty[id] = struct{}{}
	return rec, nil
}

// Commit refreshes UpdatedAt on every dirty record and writes the
// collection through the adapter. Each commit overwrites the full slot:
// last committed write wins.
func (s *Store) Commit(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.dirty) == 0 {
		return
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for i := range s.collection.Resumes {
		if _, ok := s.dirty[s.collection.Resumes[i].ID]; ok {
			s.collection.Resumes[i].UpdatedAt = now
		}
	}
	s.dirty = map[string]struct{}{}
	s.persist(ctx)
}

// HasUnsaved reports whether edits are waiting for a commit.
func (s *Store) HasUnsaved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.dirty) > 0
}

// index returns the position of id, or -1. Callers hold the lock.
func (s *Store) index(id string) int {
	for i, r := range s.collection.Resumes {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// persist writes through the adapter, absorbing failures. Callers hold the
// lock.
func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.collection); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist collection")
	}
}

func clone(rec model.Resume) model.Resume {
	b, err := json.Marshal(rec)
	if err != nil {
		return rec
	}
	var out model.Resume
	if err := json.Unmarshal(b, &out); err != nil {
		return rec
	}
	return out
}

func toMap(rec model.Resume) map[string]interface{} {
	b, err := json.Marshal(rec)
	if err != nil {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}
