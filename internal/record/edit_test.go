package record

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply_TopLevelField(t *testing.T) {
	rec := types.NewResumeRecord()

	next, err := Apply(rec, TopLevelEdit{Field: "email", Value: "ada@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", next.Email)
	assert.Empty(t, rec.Email, "input record must not be mutated")
}

func TestApply_SkillsWrittenAsWholeString(t *testing.T) {
	rec := types.NewResumeRecord()

	next, err := Apply(rec, TopLevelEdit{Field: "skills", Value: "Go, SQL, Docker"})

	require.NoError(t, err)
	assert.Equal(t, "Go, SQL, Docker", next.Skills)
}

func TestApply_ListEntryDefaultsToIndexZero(t *testing.T) {
	rec := types.NewResumeRecord()

	next, err := Apply(rec, EditListEntry(SectionEducation, "degree", "MBA"))

	require.NoError(t, err)
	assert.Equal(t, "MBA", next.Education[0].Degree)
	assert.Len(t, next.Education, 1, "list length must not change")
}

func TestApply_ListEntryPreservesSiblingFields(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Experience[0] = types.ExperienceEntry{Company: "Acme", Role: "Engineer"}

	next, err := Apply(rec, EditListEntry(SectionExperience, "duration", "2019-2023"))

	require.NoError(t, err)
	assert.Equal(t, "Acme", next.Experience[0].Company)
	assert.Equal(t, "Engineer", next.Experience[0].Role)
	assert.Equal(t, "2019-2023", next.Experience[0].Duration)
}

func TestApply_ListEntryExplicitIndex(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Education = append(rec.Education, types.EducationEntry{Degree: "BSc"})

	next, err := Apply(rec, ListEntryEdit{Section: SectionEducation, Index: 1, Field: "institution", Value: "MIT"})

	require.NoError(t, err)
	assert.Equal(t, "MIT", next.Education[1].Institution)
	assert.Empty(t, next.Education[0].Institution)
}

func TestApply_IndexOutOfRange(t *testing.T) {
	rec := types.NewResumeRecord()

	next, err := Apply(rec, ListEntryEdit{Section: SectionEducation, Index: 3, Field: "degree", Value: "MBA"})

	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 3, oor.Index)
	assert.Equal(t, rec, next, "failed edit returns the input record unchanged")
}

func TestApply_NegativeIndex(t *testing.T) {
	rec := types.NewResumeRecord()

	_, err := Apply(rec, ListEntryEdit{Section: SectionExperience, Index: -1, Field: "role", Value: "CTO"})

	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
}

func TestApply_UnknownSection(t *testing.T) {
	rec := types.NewResumeRecord()

	_, err := Apply(rec, ListEntryEdit{Section: "awards", Field: "title", Value: "x"})

	var unknown *ErrUnknownSection
	require.ErrorAs(t, err, &unknown)
}

func TestApply_UnknownTopLevelField(t *testing.T) {
	rec := types.NewResumeRecord()

	_, err := Apply(rec, TopLevelEdit{Field: "nickname", Value: "x"})

	var unknown *ErrUnknownField
	require.ErrorAs(t, err, &unknown)
}

func TestApply_UnknownSectionField(t *testing.T) {
	rec := types.NewResumeRecord()

	_, err := Apply(rec, EditListEntry(SectionEducation, "company", "Acme"))

	var unknown *ErrUnknownField
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, SectionEducation, unknown.Section)
}

func TestApply_ScoreRecomputedAgainstNewRecord(t *testing.T) {
	rec := types.NewResumeRecord()
	assert.Equal(t, 0, ComputeScore(rec))

	next, err := Apply(rec, TopLevelEdit{Field: "name", Value: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, 6, next.Score)

	next, err = Apply(next, TopLevelEdit{Field: "email", Value: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, 13, next.Score)
}

func TestApply_ClearingFieldLowersScore(t *testing.T) {
	rec := types.NewResumeRecord()
	rec.Name = "Ada"
	rec.Score = ComputeScore(rec)

	next, err := Apply(rec, TopLevelEdit{Field: "name", Value: ""})

	require.NoError(t, err)
	assert.Equal(t, 0, next.Score)
}

func TestApply_EditSequenceScoreNeverStale(t *testing.T) {
	rec := types.NewResumeRecord()
	ops := []EditOp{
		TopLevelEdit{Field: "name", Value: "Ada"},
		TopLevelEdit{Field: "phone", Value: "5551234567"},
		EditListEntry(SectionEducation, "degree", "BSc"),
		EditListEntry(SectionExperience, "company", "Acme"),
		TopLevelEdit{Field: "skills", Value: "Go"},
	}

	for _, op := range ops {
		var err error
		rec, err = Apply(rec, op)
		require.NoError(t, err)
		assert.Equal(t, ComputeScore(rec), rec.Score)
	}
}
