package record

import "github.com/jonathan/resume-builder/internal/types"

// Section names a top-level list field targeted by a nested edit.
type Section string

// The sections a ListEntryEdit may address.
const (
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
)

// EditOp is a single edit event from the form layer. The set is closed:
// either a top-level scalar write or a write into one entry of a section
// list. The caller knows which case applies, so no runtime shape
// inspection is needed.
type EditOp interface {
	apply(r *types.ResumeRecord) error
}

// TopLevelEdit writes one of the top-level scalar fields (name, email,
// phone, address, profession, skills). Skills are always written as the
// whole joined string, never split at this layer.
type TopLevelEdit struct {
	Field string
	Value string
}

// ListEntryEdit writes a single field of one entry in a section list. All
// other entries are untouched. The list never changes length.
type ListEntryEdit struct {
	Section Section
	Index   int
	Field   string
	Value   string
}

// EditListEntry builds a ListEntryEdit addressing entry 0, the common
// case: every wizard step edits the first entry of its collection.
func EditListEntry(section Section, field, value string) ListEntryEdit {
	return ListEntryEdit{Section: section, Index: 0, Field: field, Value: value}
}

// Apply is the field mutator: it produces a new record from the current
// one and an edit event, with the completeness score recomputed against
// the new field values. The input record is never modified. On error the
// input record is returned unchanged.
func Apply(r types.ResumeRecord, op EditOp) (types.ResumeRecord, error) {
	next := r.Clone()
	if err := op.apply(&next); err != nil {
		return r, err
	}
	next.Score = ComputeScore(next)
	return next, nil
}

func (e TopLevelEdit) apply(r *types.ResumeRecord) error {
	switch e.Field {
	case "name":
		r.Name = e.Value
	case "email":
		r.Email = e.Value
	case "phone":
		r.Phone = e.Value
	case "address":
		r.Address = e.Value
	case "profession":
		r.Profession = e.Value
	case "skills":
		r.Skills = e.Value
	default:
		return &ErrUnknownField{Field: e.Field}
	}
	return nil
}

func (e ListEntryEdit) apply(r *types.ResumeRecord) error {
	switch e.Section {
	case SectionEducation:
		if e.Index < 0 || e.Index >= len(r.Education) {
			return &ErrIndexOutOfRange{Section: e.Section, Index: e.Index, Length: len(r.Education)}
		}
		entry := r.Education[e.Index]
		switch e.Field {
		case "degree":
			entry.Degree = e.Value
		case "institution":
			entry.Institution = e.Value
		case "year":
			entry.Year = e.Value
		default:
			return &ErrUnknownField{Field: e.Field, Section: e.Section}
		}
		r.Education[e.Index] = entry
	case SectionExperience:
		if e.Index < 0 || e.Index >= len(r.Experience) {
			return &ErrIndexOutOfRange{Section: e.Section, Index: e.Index, Length: len(r.Experience)}
		}
		entry := r.Experience[e.Index]
		switch e.Field {
		case "company":
			entry.Company = e.Value
		case "role":
			entry.Role = e.Value
		case "duration":
			entry.Duration = e.Value
		case "description":
			entry.Description = e.Value
		default:
			return &ErrUnknownField{Field: e.Field, Section: e.Section}
		}
		r.Experience[e.Index] = entry
	default:
		return &ErrUnknownSection{Section: e.Section}
	}
	return nil
}
