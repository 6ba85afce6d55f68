package record

import "github.com/jonathan/resume-builder/internal/types"

// Point values for each contributing field. The sum over a fully
// populated record is exactly 100.
const (
	namePoints        = 6
	emailPoints       = 7
	phonePoints       = 6
	addressPoints     = 6
	professionPoints  = 5
	degreePoints      = 8
	institutionPoints = 8
	yearPoints        = 9
	companyPoints     = 7
	rolePoints        = 8
	durationPoints    = 7
	descriptionPoints = 8
	skillsPoints      = 15
)

// ComputeScore maps a record to its 0-100 completeness score. Each
// contributing field adds its points when non-empty, independently of the
// others. A record whose education or experience list is empty simply
// scores zero for those fields.
func ComputeScore(r types.ResumeRecord) int {
	score := 0
	if r.Name != "" {
		score += namePoints
	}
	if r.Email != "" {
		score += emailPoints
	}
	if r.Phone != "" {
		score += phonePoints
	}
	if r.Address != "" {
		score += addressPoints
	}
	if r.Profession != "" {
		score += professionPoints
	}
	if len(r.Education) > 0 {
		edu := r.Education[0]
		if edu.Degree != "" {
			score += degreePoints
		}
		if edu.Institution != "" {
			score += institutionPoints
		}
		if edu.Year != "" {
			score += yearPoints
		}
	}
	if len(r.Experience) > 0 {
		exp := r.Experience[0]
		if exp.Company != "" {
			score += companyPoints
		}
		if exp.Role != "" {
			score += rolePoints
		}
		if exp.Duration != "" {
			score += durationPoints
		}
		if exp.Description != "" {
			score += descriptionPoints
		}
	}
	if r.Skills != "" {
		score += skillsPoints
	}
	return score
}

// ScoreLine pairs a contributing field with the points it currently earns,
// for breakdown displays.
type ScoreLine struct {
	Field  string
	Earned int
	Worth  int
}

// ScoreBreakdown returns the per-field contribution table for the record,
// in the same order as the score calculation.
func ScoreBreakdown(r types.ResumeRecord) []ScoreLine {
	var edu types.EducationEntry
	if len(r.Education) > 0 {
		edu = r.Education[0]
	}
	var exp types.ExperienceEntry
	if len(r.Experience) > 0 {
		exp = r.Experience[0]
	}

	lines := []ScoreLine{
		{Field: "name", Worth: namePoints},
		{Field: "email", Worth: emailPoints},
		{Field: "phone", Worth: phonePoints},
		{Field: "address", Worth: addressPoints},
		{Field: "profession", Worth: professionPoints},
		{Field: "education.degree", Worth: degreePoints},
		{Field: "education.institution", Worth: institutionPoints},
		{Field: "education.year", Worth: yearPoints},
		{Field: "experience.company", Worth: companyPoints},
		{Field: "experience.role", Worth: rolePoints},
		{Field: "experience.duration", Worth: durationPoints},
		{Field: "experience.description", Worth: descriptionPoints},
		{Field: "skills", Worth: skillsPoints},
	}
	values := []string{
		r.Name, r.Email, r.Phone, r.Address, r.Profession,
		edu.Degree, edu.Institution, edu.Year,
		exp.Company, exp.Role, exp.Duration, exp.Description,
		r.Skills,
	}
	for i, v := range values {
		if v != "" {
			lines[i].Earned = lines[i].Worth
		}
	}
	return lines
}
