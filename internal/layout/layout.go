// Package layout builds the canonical document tree for a resume. Both the
// interactive preview and the PDF export paint this one tree, which is what
// keeps the two outputs semantically identical.
package layout

import (
	"strings"

	"resume-builder/internal/model"
)

// Canonical A4 page geometry at 96 DPI. Every renderer derives its box
// model from these numbers and nothing else.
const (
	PageWidth     = 794
	PageHeight    = 1123
	MarginX       = 35
	MarginTop     = 28
	MarginBottom  = 40
	ContentWidth  = PageWidth - 2*MarginX            // 724
	ContentHeight = PageHeight - MarginTop - MarginBottom // 1055
)

// Type sizes shared by both renderers, in page units.
const (
	BodySize    = 10
	NameSize    = 24
	HeadingSize = 12
)

// Section keys, also the fixed emission order.
const (
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionLeadership = "leadership"
	SectionAwards     = "awards"
	SectionSkills     = "skills"
)

// Span is one item of the header contact line. URL is empty unless the
// underlying LinkRef qualifies as a real hyperlink.
type Span struct {
	Text string
	URL  string
}

// Entry is one dated item within a section. Last marks the final entry,
// which drops the trailing spacing that separates entries.
type Entry struct {
	Title    string
	Subtitle string
	Date     string
	Bullets  []string
	Extra    string // e.g. the "GPA: x" line
	Last     bool
}

// Group is one labeled skill list.
type Group struct {
	Label string
	Items []string
	Last  bool
}

// Section is one of the five fixed document sections. Either Entries or
// Groups is populated, never both.
type Section struct {
	Key     string
	Title   string
	Entries []Entry
	Groups  []Group
	Last    bool
}

// Document is the paginated visual tree for one resume.
type Document struct {
	Name     string
	Contact  []Span
	Sections []Section
}

// Build constructs the document tree. It is a pure function of the record:
// same record in, same tree out.
func Build(rec model.Resume) Document {
	doc := Document{
		Name:    rec.PersonalInfo.Name,
		Contact: contactLine(rec.PersonalInfo),
	}
	if doc.Name == "" {
		doc.Name = "Your Name"
	}

	if s, ok := educationSection(rec); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := experienceSection(rec); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := leadershipSection(rec); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := awardsSection(rec); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := skillsSection(rec); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if n := len(doc.Sections); n > 0 {
		doc.Sections[n-1].Last = true
	}
	return doc
}

// contactLine emits the header spans in fixed order: email, linkedin,
// portfolio, github. Non-renderable refs are skipped entirely, so the
// " | " separator only ever sits between present, adjacent items.
func contactLine(pi model.PersonalInfo) []Span {
	var spans []Span
	if pi.Email != "" {
		spans = append(spans, Span{Text: pi.Email})
	}
	for _, ref := range []model.LinkRef{pi.LinkedIn, pi.Portfolio, pi.GitHub} {
		if !ref.Renderable() {
			continue
		}
		s := Span{Text: ref.Display()}
		if ref.Hyperlink() {
			s.URL = ref.URL
		}
		spans = append(spans, s)
	}
	return spans
}

// ContactText renders the contact line as plain text, separators included.
func (d Document) ContactText() string {
	parts := make([]string, 0, len(d.Contact))
	for _, s := range d.Contact {
		parts = append(parts, s.Text)
	}
	return strings.Join(parts, " | ")
}

func educationSection(rec model.Resume) (Section, bool) {
	if len(rec.Education) == 0 {
		return Section{}, false
	}
	s := Section{Key: SectionEducation, Title: rec.SectionHeadings.Education}
	for _, e := range rec.Education {
		entry := Entry{Title: e.Degree, Subtitle: e.Institution, Date: e.Duration}
		if e.GPA != "" {
			entry.Extra = "GPA: " + e.GPA
		}
		s.Entries = append(s.Entries, entry)
	}
	markLast(s.Entries)
	return s, true
}

func experienceSection(rec model.Resume) (Section, bool) {
	if len(rec.Experience) == 0 {
		return Section{}, false
	}
	s := Section{Key: SectionExperience, Title: rec.SectionHeadings.Experience}
	for _, e := range rec.Experience {
		s.Entries = append(s.Entries, Entry{
			Title:    e.Title,
			Subtitle: e.Company,
			Date:     e.Duration,
			Bullets:  presentBullets(e.Bullets),
		})
	}
	markLast(s.Entries)
	return s, true
}

func leadershipSection(rec model.Resume) (Section, bool) {
	if len(rec.Leadership) == 0 {
		return Section{}, false
	}
	s := Section{Key: SectionLeadership, Title: rec.SectionHeadings.Leadership}
	for _, l := range rec.Leadership {
		s.Entries = append(s.Entries, Entry{
			Title:    l.Title,
			Subtitle: l.Organization,
			Date:     l.Duration,
			Bullets:  presentBullets(l.Bullets),
		})
	}
	markLast(s.Entries)
	return s, true
}

func awardsSection(rec model.Resume) (Section, bool) {
	if len(rec.Awards) == 0 {
		return Section{}, false
	}
	s := Section{Key: SectionAwards, Title: rec.SectionHeadings.Awards}
	for _, a := range rec.Awards {
		s.Entries = append(s.Entries, Entry{
			Title:    a.Title,
			Subtitle: a.Organization,
			Date:     a.Date,
			Bullets:  presentBullets(a.Bullets),
		})
	}
	markLast(s.Entries)
	return s, true
}

func skillsSection(rec model.Resume) (Section, bool) {
	s := Section{Key: SectionSkills, Title: rec.SectionHeadings.Skills}
	groups := []Group{
		{Label: "Technical", Items: rec.Skills.Technical},
		{Label: "Soft Skills", Items: rec.Skills.Soft},
		{Label: "Product", Items: rec.Skills.Product},
	}
	for _, g := range groups {
		if len(g.Items) > 0 {
			s.Groups = append(s.Groups, g)
		}
	}
	if len(s.Groups) == 0 {
		return Section{}, false
	}
	s.Groups[len(s.Groups)-1].Last = true
	return s, true
}

// presentBullets filters blank and whitespace-only bullets. A nil result
// suppresses the bullet list altogether.
func presentBullets(in []string) []string {
	var out []string
	for _, b := range in {
		if strings.TrimSpace(b) != "" {
			out = append(out, b)
		}
	}
	return out
}

func markLast(entries []Entry) {
	if n := len(entries); n > 0 {
		entries[n-1].Last = true
	}
}
