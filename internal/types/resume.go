// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import "strings"

// DefaultColor is the brand accent color applied to new resumes.
const DefaultColor = "#2563eb"

// ResumeRecord is the in-memory canonical resume being edited across the
// wizard steps. Skills are held as a single comma-separated string; the
// list form only exists on the wire.
type ResumeRecord struct {
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	Profession string            `json:"profession"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	Skills     string            `json:"skills"`
	Score      int               `json:"score"`
	Color      string            `json:"color"`
}

// EducationEntry is a single education item. Index 0 always exists on an
// initialized record.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ExperienceEntry is a single work experience item. Index 0 always exists
// on an initialized record.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// NewResumeRecord returns an all-empty record satisfying the shape
// invariants: one empty education entry, one empty experience entry, and
// the default accent color.
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		Education:  []EducationEntry{{}},
		Experience: []ExperienceEntry{{}},
		Color:      DefaultColor,
	}
}

// Clone returns a deep copy of the record. Entry slices are copied so the
// clone can be mutated without aliasing the original.
func (r ResumeRecord) Clone() ResumeRecord {
	out := r
	out.Education = make([]EducationEntry, len(r.Education))
	copy(out.Education, r.Education)
	out.Experience = make([]ExperienceEntry, len(r.Experience))
	copy(out.Experience, r.Experience)
	return out
}

// SplitSkills converts the comma-separated skills string into a list,
// trimming whitespace and discarding empty pieces. Duplicates are kept.
func SplitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinSkills converts a skills list back into the canonical in-memory
// string form: comma plus a single space between entries. Round-tripping
// through SplitSkills is stable after one normalization pass.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}
