package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateResumePayload_FullPayload(t *testing.T) {
	raw := []byte(`{
		"id": "abc123",
		"selectedTemplate": "modern",
		"color": "#ff8800",
		"resumeData": {
			"name": "Ada",
			"email": "ada@example.com",
			"skills": ["Go", "SQL"],
			"education": [{"degree": "BSc", "institution": "MIT", "year": "2020"}],
			"experience": [{"company": "Acme", "role": "Engineer", "duration": "2y", "description": "Built things"}]
		}
	}`)

	assert.NoError(t, ValidateResumePayload(raw))
}

func TestValidateResumePayload_EmptyObjectIsValid(t *testing.T) {
	// Missing fields are the defaulting layer's problem, not a schema
	// violation.
	assert.NoError(t, ValidateResumePayload([]byte(`{}`)))
}

func TestValidateResumePayload_SkillsAsJoinedString(t *testing.T) {
	raw := []byte(`{"resumeData": {"skills": "Go, SQL"}}`)

	assert.NoError(t, ValidateResumePayload(raw))
}

func TestValidateResumePayload_SkillsAsNumberRejected(t *testing.T) {
	raw := []byte(`{"resumeData": {"skills": 42}}`)

	err := ValidateResumePayload(raw)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateResumePayload_EducationAsStringRejected(t *testing.T) {
	raw := []byte(`{"resumeData": {"education": "Cambridge"}}`)

	var ve *ValidationError
	require.ErrorAs(t, ValidateResumePayload(raw), &ve)
}

func TestValidateResumePayload_NotJSON(t *testing.T) {
	err := ValidateResumePayload([]byte(`{nope`))

	require.Error(t, err)
	var ve *ValidationError
	assert.NotErrorAs(t, err, &ve, "non-JSON is a plain error, not a schema violation")
}
