// Package api is the persistence bridge: it converts between the
// in-memory resume shape and the backend wire shape, and speaks the
// backend's REST contract.
package api

import (
	"encoding/json"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// SkillList is the wire form of skills. The backend stores a list;
// shared-resume payloads from older saves may carry the joined string
// instead, so unmarshalling accepts both.
type SkillList []string

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-separated string.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = types.SplitSkills(joined)
	return nil
}

// ResumeData is the nested resume object inside the wire payload. It
// matches the in-memory record except that skills are a list and there is
// no score: score is a client-side derivation, never persisted as
// authoritative.
type ResumeData struct {
	Name       string                  `json:"name"`
	Email      string                  `json:"email"`
	Phone      string                  `json:"phone"`
	Address    string                  `json:"address"`
	Profession string                  `json:"profession"`
	Education  []types.EducationEntry  `json:"education"`
	Experience []types.ExperienceEntry `json:"experience"`
	Skills     SkillList               `json:"skills"`
}

// WirePayload is the save request body: the resume data plus the template
// and accent color selections as siblings.
type WirePayload struct {
	ResumeData       ResumeData `json:"resumeData"`
	SelectedTemplate string     `json:"selectedTemplate"`
	Color            string     `json:"color"`
}

// SavedResume is a backend-owned stored resume.
type SavedResume struct {
	ID               string     `json:"id"`
	Title            string     `json:"title"`
	Owner            string     `json:"user"`
	ResumeData       ResumeData `json:"resumeData"`
	SelectedTemplate string     `json:"selectedTemplate"`
	Color            string     `json:"color"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// ToWire serializes a record for the backend. This is the only place the
// skills string is split into a list on the way out.
func ToWire(rec types.ResumeRecord, template types.TemplateID) WirePayload {
	return WirePayload{
		ResumeData: ResumeData{
			Name:       rec.Name,
			Email:      rec.Email,
			Phone:      rec.Phone,
			Address:    rec.Address,
			Profession: rec.Profession,
			Education:  rec.Education,
			Experience: rec.Experience,
			Skills:     types.SplitSkills(rec.Skills),
		},
		SelectedTemplate: string(template),
		Color:            rec.Color,
	}
}

// FromWire converts a stored payload back into the in-memory shape.
// Absent fields become empty strings, empty sections get their single
// empty entry back, missing color falls back to the brand default, and
// skills are rejoined with ", " (whitespace normalization relative to the
// original input is intentional). Score is left at zero; the state store
// recomputes it on install.
func FromWire(p WirePayload) types.ResumeRecord {
	rec := types.ResumeRecord{
		Name:       p.ResumeData.Name,
		Email:      p.ResumeData.Email,
		Phone:      p.ResumeData.Phone,
		Address:    p.ResumeData.Address,
		Profession: p.ResumeData.Profession,
		Education:  p.ResumeData.Education,
		Experience: p.ResumeData.Experience,
		Skills:     types.JoinSkills(p.ResumeData.Skills),
		Color:      p.Color,
	}
	if len(rec.Education) == 0 {
		rec.Education = []types.EducationEntry{{}}
	}
	if len(rec.Experience) == 0 {
		rec.Experience = []types.ExperienceEntry{{}}
	}
	if rec.Color == "" {
		rec.Color = types.DefaultColor
	}
	return rec
}

// Payload re-derives the wire payload for a saved resume, used when
// loading it back into the editor.
func (r SavedResume) Payload() WirePayload {
	return WirePayload{
		ResumeData:       r.ResumeData,
		SelectedTemplate: r.SelectedTemplate,
		Color:            r.Color,
	}
}

// Template returns the saved resume's template selection, falling back to
// the default when the stored value is absent or unknown.
func (r SavedResume) Template() types.TemplateID {
	id, err := types.ParseTemplateID(r.SelectedTemplate)
	if err != nil {
		return types.DefaultTemplate
	}
	return id
}
