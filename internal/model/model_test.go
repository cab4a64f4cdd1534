package model

import (
	"regexp"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkRef(t *testing.T) {
	full := LinkRef{Text: "LinkedIn", URL: "https://linkedin.com/in/jane"}
	textOnly := LinkRef{Text: "Portfolio"}
	urlOnly := LinkRef{URL: "jane.dev"}
	empty := LinkRef{}

	assert.True(t, full.Renderable())
	assert.True(t, full.Hyperlink())
	assert.Equal(t, "LinkedIn", full.Display())

	assert.True(t, textOnly.Renderable())
	assert.False(t, textOnly.Hyperlink())
	assert.Equal(t, "Portfolio", textOnly.Display())

	assert.True(t, urlOnly.Renderable())
	assert.False(t, urlOnly.Hyperlink())
	assert.Equal(t, "jane.dev", urlOnly.Display())

	assert.False(t, empty.Renderable())
	assert.False(t, empty.Hyperlink())
}

func TestNewResumeID_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^resume_\d+_[0-9a-f]{9}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewResumeID()
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "identifiers must not repeat")
		seen[id] = true
	}
}

func TestNewEntryID_CarriesKind(t *testing.T) {
	assert.Regexp(t, `^edu_\d+_[0-9a-f]{9}$`, NewEntryID("edu"))
}

func TestNewEmptyResume(t *testing.T) {
	rec := NewEmptyResume("My Resume")

	assert.Equal(t, "My Resume", rec.Name)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)
	require.NotNil(t, rec.Experience)
	assert.Empty(t, rec.Experience)
	assert.Equal(t, DefaultSectionHeadings(), rec.SectionHeadings)
}

func TestNewEmptyResume_DefaultName(t *testing.T) {
	assert.Equal(t, "Untitled Resume", NewEmptyResume("").Name)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 15, 2024", FormatDate("2024-01-15T10:30:00Z"))
	assert.Equal(t, "Dec 3, 2025", FormatDate("2025-12-03T23:59:59.123456789Z"))
	// unparseable values pass through untouched
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
	assert.Equal(t, "", FormatDate(""))
}

func TestSampleResume_ValidatesAgainstSchema(t *testing.T) {
	b, err := json.Marshal(SampleResume())
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &raw))

	assert.NoError(t, ValidateRaw(raw))
}
