package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Canonical link labels assigned when migrating plain-string links.
const (
	LabelLinkedIn  = "LinkedIn"
	LabelPortfolio = "Portfolio"
	LabelGitHub    = "GitHub"
)

// DefaultSectionHeadings returns the canonical English headings used when a
// record carries none of its own.
func DefaultSectionHeadings() SectionHeadings {
	return SectionHeadings{
		Education:  "EDUCATION",
		Experience: "EXPERIENCE",
		Leadership: "LEADERSHIP AND ACTIVITIES",
		Awards:     "HONORS AND AWARDS",
		Skills:     "SKILLS",
	}
}

// NewResumeID generates an opaque stable identifier: a millisecond timestamp
// plus a random suffix. Uniqueness does not depend on Collection.LastID.
func NewResumeID() string {
	return newID("resume")
}

// NewEntryID generates an identifier for a section entry, e.g. an education
// row created during migration.
func NewEntryID(kind string) string {
	return newID(kind)
}

func newID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

// NewEmptyResume creates a blank record: all fields empty, no entries, and
// the canonical section headings.
func NewEmptyResume(name string) Resume {
	if name == "" {
		name = "Untitled Resume"
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	return Resume{
		ID:              NewResumeID(),
		Name:            name,
		CreatedAt:       now,
		UpdatedAt:       now,
		Experience:      []Experience{},
		Education:       []Education{},
		Leadership:      []Leadership{},
		Awards:          []Award{},
		Skills:          Skills{Technical: []string{}, Soft: []string{}},
		SectionHeadings: DefaultSectionHeadings(),
	}
}

// FormatDate renders a stored ISO-8601 timestamp for dashboard listings,
// e.g. "Jan 2, 2026". The raw value is returned when it does not parse.
func FormatDate(iso string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return t.Format("Jan 2, 2006")
}
