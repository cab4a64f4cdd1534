package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/adapter/repository"
	"resume-builder/internal/model"
)

// memStorage is an in-memory persistence adapter recording every save.
type memStorage struct {
	raw     repository.RawCollection
	saves   []model.Collection
	loadErr error
	saveErr error
}

func (m *memStorage) Load(ctx context.Context) (repository.RawCollection, error) {
	if m.loadErr != nil {
		return repository.RawCollection{Resumes: []map[string]interface{}{}}, m.loadErr
	}
	return m.raw, nil
}

func (m *memStorage) Save(ctx context.Context, c model.Collection) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves = append(m.saves, c)
	return nil
}

func rawRecord(t *testing.T, rec model.Resume) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(rec)
	require.NoError(t, err)
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func loadedStore(t *testing.T, recs ...model.Resume) (*Store, *memStorage) {
	t.Helper()
	raws := make([]map[string]interface{}, 0, len(recs))
	for _, r := range recs {
		raws = append(raws, rawRecord(t, r))
	}
	mem := &memStorage{raw: repository.RawCollection{Resumes: raws, LastID: len(raws)}}
	s := NewStore(mem, zerolog.Nop())
	s.Load(context.Background())
	mem.saves = nil
	return s, mem
}

func named(name, personName string) model.Resume {
	rec := model.NewEmptyResume(name)
	rec.PersonalInfo.Name = personName
	return rec
}

func parseTS(t *testing.T, iso string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339Nano, iso)
	require.NoError(t, err)
	return ts
}

func TestLoad_UnavailableBackendDegradesToSample(t *testing.T) {
	mem := &memStorage{loadErr: errors.New("no browser context"), saveErr: errors.New("still down")}
	s := NewStore(mem, zerolog.Nop())

	s.Load(context.Background())

	// degrades to the seeded sample collection, never crashes
	got := s.List("")
	require.Len(t, got, 1)
	assert.Equal(t, "Sample Resume", got[0].Name)
}

func TestLoad_EmptyCollectionSeedsSample(t *testing.T) {
	mem := &memStorage{raw: repository.RawCollection{Resumes: []map[string]interface{}{}}}
	s := NewStore(mem, zerolog.Nop())

	s.Load(context.Background())

	require.Len(t, s.List(""), 1)
	require.Len(t, mem.saves, 1)
	assert.Equal(t, 1, mem.saves[0].LastID)
}

func TestLoad_MigratesAndPersistsCorrectedShapes(t *testing.T) {
	legacy := map[string]interface{}{
		"id":   "resume_old",
		"name": "Legacy",
		"personalInfo": map[string]interface{}{
			"name":     "Jo",
			"linkedin": "linkedin.com/in/jo",
		},
	}
	mem := &memStorage{raw: repository.RawCollection{Resumes: []map[string]interface{}{legacy}, LastID: 1}}
	s := NewStore(mem, zerolog.Nop())

	s.Load(context.Background())

	rec, err := s.Get("resume_old")
	require.NoError(t, err)
	assert.Equal(t, model.LinkRef{Text: "LinkedIn", URL: "linkedin.com/in/jo"}, rec.PersonalInfo.LinkedIn)
	// corrected shape written back so future loads skip re-migration
	require.Len(t, mem.saves, 1)
}

func TestLoad_CurrentShapeDoesNotRewrite(t *testing.T) {
	rec := named("A", "Alice")
	mem := &memStorage{raw: repository.RawCollection{
		Resumes: []map[string]interface{}{rawRecord(t, rec)},
		LastID:  1,
	}}
	s := NewStore(mem, zerolog.Nop())

	s.Load(context.Background())

	assert.Empty(t, mem.saves, "already-migrated data must not be rewritten")
	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestList_QueryMatchesBothNames(t *testing.T) {
	s, _ := loadedStore(t, named("My Resume", "John Smith"), named("Jane Doe CV", "Jane Doe"))

	got := s.List("smith")
	require.Len(t, got, 1)
	assert.Equal(t, "John Smith", got[0].PersonalInfo.Name)

	got = s.List("JANE DOE CV")
	require.Len(t, got, 1)

	assert.Len(t, s.List(""), 2)
	assert.Empty(t, s.List("nobody"))
}

func TestList_PreservesInsertionOrder(t *testing.T) {
	s, _ := loadedStore(t, named("first", "A"), named("second", "B"), named("third", "C"))

	got := s.List("")
	require.Len(t, got, 3)
	assert.Equal(t, "first", got[0].Name)
	assert.Equal(t, "second", got[1].Name)
	assert.Equal(t, "third", got[2].Name)
}

func TestCreate_AppendsAndPersists(t *testing.T) {
	s, mem := loadedStore(t, named("existing", ""))

	rec := s.Create(context.Background(), "")

	assert.Equal(t, "Untitled Resume", rec.Name)
	assert.NotEmpty(t, rec.ID)
	got := s.List("")
	require.Len(t, got, 2)
	assert.Equal(t, rec.ID, got[1].ID, "new record appends at the end")
	require.Len(t, mem.saves, 1)
	assert.Equal(t, 2, mem.saves[0].LastID)
}

func TestDuplicate(t *testing.T) {
	orig := named("Mine", "Me")
	s, mem := loadedStore(t, orig)

	dup, err := s.Duplicate(context.Background(), orig.ID)
	require.NoError(t, err)

	assert.Len(t, s.List(""), 2)
	assert.NotEqual(t, orig.ID, dup.ID)
	assert.Equal(t, "Mine (Copy)", dup.Name)
	assert.True(t, parseTS(t, dup.CreatedAt).After(parseTS(t, orig.CreatedAt)))
	assert.True(t, parseTS(t, dup.UpdatedAt).After(parseTS(t, orig.UpdatedAt)))
	assert.Equal(t, orig.PersonalInfo, dup.PersonalInfo)
	require.Len(t, mem.saves, 1)
}

func TestDuplicate_NotFound(t *testing.T) {
	s, _ := loadedStore(t)

	_, err := s.Duplicate(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_Idempotent(t *testing.T) {
	rec := named("Mine", "")
	s, mem := loadedStore(t, rec)

	s.Delete(context.Background(), rec.ID)
	assert.Empty(t, s.List(""))
	require.Len(t, mem.saves, 1)

	// deleting an absent id is a no-op, not an error, and does not persist
	s.Delete(context.Background(), rec.ID)
	assert.Empty(t, s.List(""))
	assert.Len(t, mem.saves, 1)
}

func TestUpdate_ShallowMergeWithoutPersist(t *testing.T) {
	rec := named("Mine", "Me")
	s, mem := loadedStore(t, rec)

	got, err := s.Update(rec.ID, map[string]interface{}{
		"name": "Renamed",
		"personalInfo": map[string]interface{}{
			"name":  "New Me",
			"email": "me@example.com",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "New Me", got.PersonalInfo.Name)
	assert.Equal(t, "me@example.com", got.PersonalInfo.Email)
	assert.Equal(t, rec.UpdatedAt, got.UpdatedAt, "updatedAt moves on commit, not on edit")
	assert.Empty(t, mem.saves, "update must not persist by itself")
	assert.True(t, s.HasUnsaved())
}

func TestUpdate_IgnoresImmutableFields(t *testing.T) {
	rec := named("Mine", "")
	s, _ := loadedStore(t, rec)

	got, err := s.Update(rec.ID, map[string]interface{}{
		"id":        "hijacked",
		"createdAt": "1970-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.CreatedAt, got.CreatedAt)
}

func TestUpdate_NotFound(t *testing.T) {
	s, _ := loadedStore(t)

	_, err := s.Update("missing", map[string]interface{}{"name": "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommit_RefreshesUpdatedAtAndPersists(t *testing.T) {
	rec := named("Mine", "")
	s, mem := loadedStore(t, rec)

	_, err := s.Update(rec.ID, map[string]interface{}{"name": "Changed"})
	require.NoError(t, err)

	s.Commit(context.Background())

	got, err := s.Get(rec.ID)
	require.NoError(t, err)
	assert.True(t, parseTS(t, got.UpdatedAt).After(parseTS(t, rec.UpdatedAt)))
	require.Len(t, mem.saves, 1)
	assert.False(t, s.HasUnsaved())

	// commit with nothing dirty is a no-op
	s.Commit(context.Background())
	assert.Len(t, mem.saves, 1)
}
