package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResumeRecord_ShapeInvariants(t *testing.T) {
	rec := NewResumeRecord()

	assert.Len(t, rec.Education, 1)
	assert.Len(t, rec.Experience, 1)
	assert.Equal(t, DefaultColor, rec.Color)
	assert.Equal(t, 0, rec.Score)
	assert.Empty(t, rec.Skills)
}

func TestClone_DoesNotAliasEntrySlices(t *testing.T) {
	rec := NewResumeRecord()
	clone := rec.Clone()

	clone.Education[0].Degree = "MBA"
	clone.Experience[0].Company = "Acme"

	assert.Empty(t, rec.Education[0].Degree)
	assert.Empty(t, rec.Experience[0].Company)
}

func TestSplitSkills_TrimsAndDropsEmpty(t *testing.T) {
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, SplitSkills(" Go , SQL,,Docker, "))
}

func TestSplitSkills_KeepsDuplicatesAndOrder(t *testing.T) {
	assert.Equal(t, []string{"Python", "Python", "SQL"}, SplitSkills("Python,  Python , SQL"))
}

func TestSplitSkills_EmptyString(t *testing.T) {
	assert.Empty(t, SplitSkills(""))
}

func TestJoinSkills_CanonicalSpacing(t *testing.T) {
	assert.Equal(t, "Go, SQL", JoinSkills([]string{"Go", "SQL"}))
}

func TestSkillsRoundTrip_StableAfterOneNormalization(t *testing.T) {
	normalized := JoinSkills(SplitSkills("Python,  Python , SQL"))
	assert.Equal(t, "Python, Python, SQL", normalized)
	assert.Equal(t, normalized, JoinSkills(SplitSkills(normalized)))
}

func TestParseTemplateID_ValidAndInvalid(t *testing.T) {
	for _, id := range TemplateIDs() {
		parsed, err := ParseTemplateID(string(id))
		assert.NoError(t, err)
		assert.Equal(t, id, parsed)
	}

	_, err := ParseTemplateID("brutalist")
	assert.Error(t, err)
}
