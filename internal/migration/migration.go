// Package migration upgrades persisted resume records from any historical
// shape to the current model.Resume shape. Migration is pure, total and
// idempotent: it never fails, never touches its input, and running it on
// already-migrated data is a no-op.
package migration

import (
	"reflect"

	json "github.com/goccy/go-json"

	"resume-builder/internal/model"
)

// Step is one shape upgrader. Steps run in order over the raw record map;
// each historical schema generation gets exactly one step, so a newly
// discovered legacy shape is one more entry in the slice.
type Step struct {
	Name string
	Up   func(raw map[string]interface{}) map[string]interface{}
}

// Steps returns the upgrade chain, oldest shape first.
func Steps() []Step {
	return []Step{
		{Name: "personal_links", Up: upgradePersonalLinks},
		{Name: "education_slice", Up: upgradeEducationSlice},
		{Name: "award_bullets", Up: upgradeAwardBullets},
		{Name: "section_headings", Up: upgradeSectionHeadings},
	}
}

// Migrate normalizes a raw record to the current shape. The bool reports
// whether the canonical form structurally differs from the stored one, which
// tells the store to persist the corrected record. Freshly generated ids are
// the only non-deterministic output.
func Migrate(raw map[string]interface{}) (model.Resume, bool) {
	if raw == nil {
		rec := model.NewEmptyResume("")
		return rec, true
	}

	m := deepCopy(raw)
	for _, s := range Steps() {
		m = s.Up(m)
	}
	rec := decode(m)
	return rec, !equalShape(raw, rec)
}

// upgradePersonalLinks converts the legacy plain-string link fields to
// LinkRef objects with their canonical labels. An entirely absent github
// becomes an empty ref.
func upgradePersonalLinks(raw map[string]interface{}) map[string]interface{} {
	pi, ok := raw["personalInfo"].(map[string]interface{})
	if !ok {
		pi = map[string]interface{}{}
		raw["personalInfo"] = pi
	}
	labels := map[string]string{
		"linkedin":  model.LabelLinkedIn,
		"portfolio": model.LabelPortfolio,
		"github":    model.LabelGitHub,
	}
	for key, label := range labels {
		switch v := pi[key].(type) {
		case map[string]interface{}:
			// already a LinkRef
		case string:
			if v != "" {
				pi[key] = map[string]interface{}{"text": label, "url": v}
			} else {
				pi[key] = map[string]interface{}{"text": "", "url": ""}
			}
		default:
			_ = v
			pi[key] = map[string]interface{}{"text": "", "url": ""}
		}
	}
	return raw
}

// upgradeEducationSlice wraps the legacy singleton education object in a
// one-element slice when it carries content, otherwise replaces it with an
// empty slice.
func upgradeEducationSlice(raw map[string]interface{}) map[string]interface{} {
	switch v := raw["education"].(type) {
	case []interface{}:
		// current shape
	case map[string]interface{}:
		inst, _ := v["institution"].(string)
		degree, _ := v["degree"].(string)
		if inst != "" || degree != "" {
			v["id"] = model.NewEntryID("edu")
			raw["education"] = []interface{}{v}
		} else {
			raw["education"] = []interface{}{}
		}
	default:
		_ = v
		raw["education"] = []interface{}{}
	}
	return raw
}

// upgradeAwardBullets derives the bullets slice from the legacy single
// description field.
func upgradeAwardBullets(raw map[string]interface{}) map[string]interface{} {
	awards, ok := raw["awards"].([]interface{})
	if !ok {
		return raw
	}
	for _, it := range awards {
		a, ok := it.(map[string]interface{})
		if !ok {
			continue
		}
		if _, ok := a["bullets"].([]interface{}); ok {
			continue
		}
		if d, _ := a["description"].(string); d != "" {
			a["bullets"] = []interface{}{d}
		} else {
			a["bullets"] = []interface{}{""}
		}
	}
	return raw
}

// upgradeSectionHeadings assigns the canonical headings when a record
// predates configurable headings.
func upgradeSectionHeadings(raw map[string]interface{}) map[string]interface{} {
	if _, ok := raw["sectionHeadings"].(map[string]interface{}); !ok {
		h := model.DefaultSectionHeadings()
		raw["sectionHeadings"] = map[string]interface{}{
			"education":  h.Education,
			"experience": h.Experience,
			"leadership": h.Leadership,
			"awards":     h.Awards,
			"skills":     h.Skills,
		}
	}
	return raw
}

func deepCopy(m map[string]interface{}) map[string]interface{} {
	b, err := json.Marshal(m)
	if err != nil {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}

// equalShape deep-compares the stored raw record with the canonical
// serialization of the migrated one.
func equalShape(raw map[string]interface{}, rec model.Resume) bool {
	a, err := json.Marshal(raw)
	if err != nil {
		return false
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return false
	}
	var av, bv interface{}
	if err := json.Unmarshal(a, &av); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bv); err != nil {
		return false
	}
	return reflect.DeepEqual(av, bv)
}
