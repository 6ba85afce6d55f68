package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisories_EmptyRecordHasNone(t *testing.T) {
	assert.Empty(t, NewResumeRecord().Advisories())
}

func TestAdvisories_BadEmail(t *testing.T) {
	rec := NewResumeRecord()
	rec.Email = "not-an-email"

	advisories := rec.Advisories()

	assert.Len(t, advisories, 1)
	assert.Equal(t, "email", advisories[0].Field)
}

func TestAdvisories_ValidEmail(t *testing.T) {
	rec := NewResumeRecord()
	rec.Email = "ada@example.com"

	assert.Empty(t, rec.Advisories())
}

func TestAdvisories_ShortPhone(t *testing.T) {
	rec := NewResumeRecord()
	rec.Phone = "12345"

	advisories := rec.Advisories()

	assert.Len(t, advisories, 1)
	assert.Equal(t, "phone", advisories[0].Field)
}

func TestAdvisories_FormattedPhoneAccepted(t *testing.T) {
	rec := NewResumeRecord()
	rec.Phone = "+1 (555) 123-4567"

	assert.Empty(t, rec.Advisories())
}

func TestAdvisories_YearOutOfRange(t *testing.T) {
	rec := NewResumeRecord()
	rec.Education[0].Year = "1776"

	advisories := rec.Advisories()

	assert.Len(t, advisories, 1)
	assert.Equal(t, "education[0].year", advisories[0].Field)
}

func TestAdvisories_NonNumericYear(t *testing.T) {
	rec := NewResumeRecord()
	rec.Education[0].Year = "senior year"

	assert.Len(t, rec.Advisories(), 1)
}

func TestAdvisories_NeverBlockEdits(t *testing.T) {
	// Advisories are derived from the record after the fact; a record with
	// warnings is still a fully valid record.
	rec := NewResumeRecord()
	rec.Email = "nope"
	rec.Phone = "1"

	assert.Len(t, rec.Advisories(), 2)
	assert.Equal(t, "nope", rec.Email)
}
