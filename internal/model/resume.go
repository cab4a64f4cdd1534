package model

// Go models for the resume collection. These match resume.schema.json, which
// is the current persisted shape; older shapes are upgraded in
// internal/migration before they ever reach this package's consumers.

// LinkRef is an optionally-hyperlinked contact reference. It renders as a
// hyperlink only when both Text and URL are set; as plain text when exactly
// one is set; and not at all when both are empty.
type LinkRef struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Renderable reports whether the ref produces any output.
func (l LinkRef) Renderable() bool { return l.Text != "" || l.URL != "" }

// Hyperlink reports whether the ref renders as a real link.
func (l LinkRef) Hyperlink() bool { return l.Text != "" && l.URL != "" }

// Display is the text shown for the ref: the label when present, otherwise
// the bare URL.
func (l LinkRef) Display() string {
	if l.Text != "" {
		return l.Text
	}
	return l.URL
}

type PersonalInfo struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	LinkedIn  LinkRef `json:"linkedin"`
	Portfolio LinkRef `json:"portfolio"`
	GitHub    LinkRef `json:"github"`
}

type Experience struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Duration string   `json:"duration"`
	Bullets  []string `json:"bullets"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Duration    string `json:"duration"`
	GPA         string `json:"gpa,omitempty"`
}

type Leadership struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Duration     string   `json:"duration"`
	Bullets      []string `json:"bullets"`
}

type Award struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Date         string   `json:"date"`
	Bullets      []string `json:"bullets"`
}

// Skills holds the labeled skill groups. Product belongs to the extended
// schema variant and stays empty for most records.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Product   []string `json:"product,omitempty"`
}

// SectionHeadings maps each fixed document section to its printed heading.
// Only the heading text is user-configurable, never the section order.
type SectionHeadings struct {
	Education  string `json:"education"`
	Experience string `json:"experience"`
	Leadership string `json:"leadership"`
	Awards     string `json:"awards"`
	Skills     string `json:"skills"`
}

// Resume is one saved resume document plus its metadata. Name labels the
// document itself and is distinct from PersonalInfo.Name. Timestamps are
// ISO-8601 strings; UpdatedAt is refreshed on committed saves only.
type Resume struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	Experience      []Experience    `json:"experience"`
	Education       []Education     `json:"education"`
	Leadership      []Leadership    `json:"leadership"`
	Awards          []Award         `json:"awards"`
	Skills          Skills          `json:"skills"`
	SectionHeadings SectionHeadings `json:"sectionHeadings"`
}

// Collection is the persisted record set. LastID is a legacy counter kept
// for backward compatibility with old payloads; real identifiers come from
// NewResumeID and do not correlate with it.
type Collection struct {
	Resumes []Resume `json:"resumes"`
	LastID  int      `json:"lastId"`
}
