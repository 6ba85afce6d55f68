package preview

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() types.ResumeRecord {
	rec := types.NewResumeRecord()
	rec.Name = "Ada Lovelace"
	rec.Email = "ada@example.com"
	rec.Phone = "5551234567"
	rec.Profession = "Engineer"
	rec.Education[0] = types.EducationEntry{Degree: "BSc", Institution: "Cambridge", Year: "1840"}
	rec.Experience[0] = types.ExperienceEntry{Company: "Babbage & Co", Role: "Programmer", Duration: "1842-1843", Description: "Wrote the first program"}
	rec.Skills = "Mathematics, Analysis"
	return rec
}

func renderDoc(t *testing.T, rec types.ResumeRecord, id types.TemplateID) *goquery.Document {
	t.Helper()
	html, err := Render(rec, id)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRender_AllTemplatesShowTheRecord(t *testing.T) {
	rec := sampleRecord()

	for _, id := range types.TemplateIDs() {
		doc := renderDoc(t, rec, id)

		assert.Equal(t, "Ada Lovelace", doc.Find("h1").First().Text(), "template %s", id)
		assert.Contains(t, doc.Find(".contact").Text(), "ada@example.com", "template %s", id)
		assert.Contains(t, doc.Find(".education").Text(), "Cambridge", "template %s", id)
		assert.Contains(t, doc.Find(".experience").Text(), "Babbage & Co", "template %s", id)
		assert.Equal(t, 2, doc.Find(".skills li").Length(), "template %s", id)
	}
}

func TestRender_TemplatesCarryDistinctBodyClass(t *testing.T) {
	rec := sampleRecord()

	for _, id := range types.TemplateIDs() {
		doc := renderDoc(t, rec, id)
		class, _ := doc.Find("body").Attr("class")
		assert.Equal(t, "template-"+string(id), class)
	}
}

func TestRender_AccentColorApplied(t *testing.T) {
	rec := sampleRecord()
	rec.Color = "#ff8800"

	html, err := Render(rec, types.TemplateModern)

	require.NoError(t, err)
	assert.Contains(t, html, "#ff8800")
	assert.NotContains(t, html, types.DefaultColor)
}

func TestRender_EmptyColorFallsBackToDefault(t *testing.T) {
	rec := sampleRecord()
	rec.Color = ""

	html, err := Render(rec, types.TemplateClassic)

	require.NoError(t, err)
	assert.Contains(t, html, types.DefaultColor)
}

func TestRender_EmptyRecordStillRenders(t *testing.T) {
	doc := renderDoc(t, types.NewResumeRecord(), types.TemplateProfessional)

	// Empty skills render no section at all rather than an empty list.
	assert.Zero(t, doc.Find(".skills").Length())
}

func TestRender_EscapesUserInput(t *testing.T) {
	rec := sampleRecord()
	rec.Name = `<script>alert("x")</script>`

	html, err := Render(rec, types.TemplateClassic)

	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, err := Render(sampleRecord(), types.TemplateID("neon"))
	assert.Error(t, err)
}

func TestRender_SkillsSplitForDisplayOnly(t *testing.T) {
	rec := sampleRecord()
	rec.Skills = " Go ,  SQL,,"

	doc := renderDoc(t, rec, types.TemplateModern)

	items := doc.Find(".skills li")
	require.Equal(t, 2, items.Length())
	assert.Equal(t, "Go", items.First().Text())
}
