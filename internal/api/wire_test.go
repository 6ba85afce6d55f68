package api

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWire_SplitsSkills(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Skills = " Go , SQL,,Docker "

	payload := ToWire(rec, types.TemplateModern)

	assert.Equal(t, SkillList{"Go", "SQL", "Docker"}, payload.ResumeData.Skills)
	assert.Equal(t, "modern", payload.SelectedTemplate)
}

func TestToWire_OmitsScore(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Name = "Ada"
	rec.Score = 6

	data, err := json.Marshal(ToWire(rec, types.TemplateClassic))

	require.NoError(t, err)
	assert.NotContains(t, string(data), "score")
}

func TestFromWire_EmptyPayloadDefaults(t *testing.T) {
	rec := FromWire(WirePayload{})

	assert.Len(t, rec.Education, 1)
	assert.Len(t, rec.Experience, 1)
	assert.Empty(t, rec.Skills)
	assert.Equal(t, types.DefaultColor, rec.Color)
	assert.Equal(t, 0, rec.Score)
}

func TestFromWire_JoinsSkillsWithCanonicalSpacing(t *testing.T) {
	payload := WirePayload{ResumeData: ResumeData{Skills: SkillList{"Go", "SQL"}}}

	rec := FromWire(payload)

	assert.Equal(t, "Go, SQL", rec.Skills)
}

func TestRoundTrip_NormalizesWhitespaceKeepsDuplicates(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Skills = "Python,  Python , SQL"

	normalized := FromWire(ToWire(rec, types.TemplateClassic))

	assert.Equal(t, "Python, Python, SQL", normalized.Skills)
}

func TestRoundTrip_IdempotentAfterOneNormalization(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Name = "Ada"
	rec.Skills = "Go,  SQL ,Docker"
	rec.Education[0] = types.EducationEntry{Degree: "BSc", Institution: "MIT", Year: "2020"}

	once := ToWire(rec, types.TemplateCreative)
	twice := ToWire(FromWire(once), types.TemplateCreative)

	assert.Equal(t, once, twice)
}

func TestSkillList_UnmarshalsArray(t *testing.T) {
	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`["Go","SQL"]`), &s))
	assert.Equal(t, SkillList{"Go", "SQL"}, s)
}

func TestSkillList_UnmarshalsJoinedString(t *testing.T) {
	var s SkillList
	require.NoError(t, json.Unmarshal([]byte(`"Go, SQL,,Docker "`), &s))
	assert.Equal(t, SkillList{"Go", "SQL", "Docker"}, s)
}

func TestSkillList_RejectsNumber(t *testing.T) {
	var s SkillList
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestSavedResume_TemplateFallback(t *testing.T) {
	assert.Equal(t, types.TemplateModern, SavedResume{SelectedTemplate: "modern"}.Template())
	assert.Equal(t, types.DefaultTemplate, SavedResume{SelectedTemplate: "neon"}.Template())
	assert.Equal(t, types.DefaultTemplate, SavedResume{}.Template())
}

func TestFromWire_ScoreRecomputableByConsumer(t *testing.T) {
	payload := WirePayload{ResumeData: ResumeData{Name: "Ada", Skills: SkillList{"Go"}}}

	rec := FromWire(payload)

	// FromWire leaves score at zero; installing through the store is what
	// refreshes it.
	assert.Equal(t, 0, rec.Score)
	assert.Equal(t, "Ada", rec.Name)
	assert.Equal(t, "Go", rec.Skills)
}
