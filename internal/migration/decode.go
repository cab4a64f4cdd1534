package migration

import (
	"time"

	"resume-builder/internal/model"
)

// decode extracts a typed record from an upgraded raw map. Every field is
// read through a tolerant accessor so a malformed value degrades to its
// zero default instead of poisoning the whole record.
func decode(m map[string]interface{}) model.Resume {
	rec := model.Resume{
		ID:        str(m, "id"),
		Name:      str(m, "name"),
		CreatedAt: str(m, "createdAt"),
		UpdatedAt: str(m, "updatedAt"),
	}
	if rec.ID == "" {
		rec.ID = model.NewResumeID()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if rec.CreatedAt == "" {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt == "" || rec.UpdatedAt < rec.CreatedAt {
		rec.UpdatedAt = rec.CreatedAt
	}

	pi, _ := m["personalInfo"].(map[string]interface{})
	rec.PersonalInfo = model.PersonalInfo{
		Name:      str(pi, "name"),
		Email:     str(pi, "email"),
		LinkedIn:  linkRef(pi, "linkedin"),
		Portfolio: linkRef(pi, "portfolio"),
		GitHub:    linkRef(pi, "github"),
	}

	rec.Experience = []model.Experience{}
	for _, it := range objSlice(m, "experience") {
		rec.Experience = append(rec.Experience, model.Experience{
			ID:       entryID(it, "exp"),
			Title:    str(it, "title"),
			Company:  str(it, "company"),
			Duration: str(it, "duration"),
			Bullets:  bullets(it),
		})
	}

	rec.Education = []model.Education{}
	for _, it := range objSlice(m, "education") {
		rec.Education = append(rec.Education, model.Education{
			ID:          entryID(it, "edu"),
			Institution: str(it, "institution"),
			Degree:      str(it, "degree"),
			Duration:    str(it, "duration"),
			GPA:         str(it, "gpa"),
		})
	}

	rec.Leadership = []model.Leadership{}
	for _, it := range objSlice(m, "leadership") {
		rec.Leadership = append(rec.Leadership, model.Leadership{
			ID:           entryID(it, "lead"),
			Title:        str(it, "title"),
			Organization: str(it, "organization"),
			Duration:     str(it, "duration"),
			Bullets:      bullets(it),
		})
	}

	rec.Awards = []model.Award{}
	for _, it := range objSlice(m, "awards") {
		rec.Awards = append(rec.Awards, model.Award{
			ID:           entryID(it, "award"),
			Title:        str(it, "title"),
			Organization: str(it, "organization"),
			Date:         str(it, "date"),
			Bullets:      bullets(it),
		})
	}

	sk, _ := m["skills"].(map[string]interface{})
	rec.Skills = model.Skills{
		Technical: strSlice(sk, "technical"),
		Soft:      strSlice(sk, "soft"),
	}
	if p := strSlice(sk, "product"); len(p) > 0 {
		rec.Skills.Product = p
	}

	sh, _ := m["sectionHeadings"].(map[string]interface{})
	defaults := model.DefaultSectionHeadings()
	rec.SectionHeadings = model.SectionHeadings{
		Education:  strOr(sh, "education", defaults.Education),
		Experience: strOr(sh, "experience", defaults.Experience),
		Leadership: strOr(sh, "leadership", defaults.Leadership),
		Awards:     strOr(sh, "awards", defaults.Awards),
		Skills:     strOr(sh, "skills", defaults.Skills),
	}

	return rec
}

func str(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func strOr(m map[string]interface{}, key, fallback string) string {
	if s := str(m, key); s != "" {
		return s
	}
	return fallback
}

func linkRef(m map[string]interface{}, key string) model.LinkRef {
	if m == nil {
		return model.LinkRef{}
	}
	switch v := m[key].(type) {
	case map[string]interface{}:
		return model.LinkRef{Text: str(v, "text"), URL: str(v, "url")}
	case string:
		// a string surviving here means the upgrade step was bypassed;
		// treat it like the legacy shape without a label
		return model.LinkRef{URL: v}
	default:
		return model.LinkRef{}
	}
}

func objSlice(m map[string]interface{}, key string) []map[string]interface{} {
	items, _ := m[key].([]interface{})
	out := make([]map[string]interface{}, 0, len(items))
	for _, it := range items {
		if obj, ok := it.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}

func strSlice(m map[string]interface{}, key string) []string {
	if m == nil {
		return []string{}
	}
	items, _ := m[key].([]interface{})
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func entryID(m map[string]interface{}, kind string) string {
	if id := str(m, "id"); id != "" {
		return id
	}
	return model.NewEntryID(kind)
}

// bullets reads an entry's bullet list, keeping the editing invariant that
// a list always has at least one element.
func bullets(m map[string]interface{}) []string {
	out := strSlice(m, "bullets")
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}
