// Package preview renders a resume record into a standalone HTML
// document for one of the visual templates. It is a read-only consumer
// of the editing state: rendering never mutates the record.
package preview

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// templateData is the shape handed to every template. Skills are split
// into list form for display only; the record keeps the joined string.
type templateData struct {
	Record types.ResumeRecord
	Accent string
	Skills []string
}

// Render produces a full HTML document for the record using the given
// template. The record's accent color is applied; an empty color falls
// back to the brand default.
func Render(rec types.ResumeRecord, id types.TemplateID) (string, error) {
	tmpl, ok := templates[id]
	if !ok {
		return "", fmt.Errorf("unknown template %q", id)
	}

	accent := rec.Color
	if accent == "" {
		accent = types.DefaultColor
	}
	data := templateData{
		Record: rec,
		Accent: accent,
		Skills: types.SplitSkills(rec.Skills),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render %s preview: %w", id, err)
	}
	return sb.String(), nil
}

var templates = map[types.TemplateID]*template.Template{
	types.TemplateClassic:      template.Must(template.New("classic").Parse(classicHTML)),
	types.TemplateModern:       template.Must(template.New("modern").Parse(modernHTML)),
	types.TemplateCreative:     template.Must(template.New("creative").Parse(creativeHTML)),
	types.TemplateProfessional: template.Must(template.New("professional").Parse(professionalHTML)),
}

// sectionsHTML is the shared body markup: contact block, education,
// experience, and skills. Templates differ in page chrome and header
// treatment, not in which fields they show.
const sectionsHTML = `
<section class="contact">
  <p>{{.Record.Email}}{{if .Record.Phone}} · {{.Record.Phone}}{{end}}{{if .Record.Address}} · {{.Record.Address}}{{end}}</p>
</section>
{{if .Record.Education}}
<section class="education">
  <h2>Education</h2>
  {{range .Record.Education}}
  <div class="entry">
    <p class="title">{{.Degree}}{{if .Institution}} — {{.Institution}}{{end}}</p>
    {{if .Year}}<p class="meta">{{.Year}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}
{{if .Record.Experience}}
<section class="experience">
  <h2>Experience</h2>
  {{range .Record.Experience}}
  <div class="entry">
    <p class="title">{{.Role}}{{if .Company}} at {{.Company}}{{end}}</p>
    {{if .Duration}}<p class="meta">{{.Duration}}</p>{{end}}
    {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
  </div>
  {{end}}
</section>
{{end}}
{{if .Skills}}
<section class="skills">
  <h2>Skills</h2>
  <ul>
    {{range .Skills}}<li>{{.}}</li>{{end}}
  </ul>
</section>
{{end}}
`

const classicHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Record.Name}} — Resume</title>
<style>
  body { font-family: Georgia, serif; margin: 2rem auto; max-width: 46rem; color: #1f2937; }
  h1 { border-bottom: 3px solid {{.Accent}}; padding-bottom: .3rem; }
  h2 { color: {{.Accent}}; font-variant: small-caps; }
  .meta { color: #6b7280; font-style: italic; }
</style>
</head>
<body class="template-classic">
<header>
  <h1>{{.Record.Name}}</h1>
  {{if .Record.Profession}}<p class="profession">{{.Record.Profession}}</p>{{end}}
</header>
` + sectionsHTML + `</body>
</html>
`

const modernHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Record.Name}} — Resume</title>
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; margin: 0; color: #111827; }
  header { background: {{.Accent}}; color: #ffffff; padding: 2rem; }
  main { padding: 1.5rem 2rem; max-width: 48rem; }
  h2 { border-left: 4px solid {{.Accent}}; padding-left: .5rem; }
  .skills ul { display: flex; flex-wrap: wrap; gap: .5rem; list-style: none; padding: 0; }
  .skills li { background: #f3f4f6; border-radius: 9999px; padding: .2rem .8rem; }
</style>
</head>
<body class="template-modern">
<header>
  <h1>{{.Record.Name}}</h1>
  {{if .Record.Profession}}<p class="profession">{{.Record.Profession}}</p>{{end}}
</header>
<main>
` + sectionsHTML + `</main>
</body>
</html>
`

const creativeHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Record.Name}} — Resume</title>
<style>
  body { font-family: "Trebuchet MS", sans-serif; margin: 2rem; background: #fafaf9; color: #292524; }
  h1 { font-size: 2.6rem; color: {{.Accent}}; transform: rotate(-1deg); }
  h2 { display: inline-block; background: {{.Accent}}; color: #ffffff; padding: .1rem .6rem; border-radius: .4rem; }
  .entry { border-left: 2px dashed {{.Accent}}; padding-left: 1rem; margin: .8rem 0; }
</style>
</head>
<body class="template-creative">
<header>
  <h1>{{.Record.Name}}</h1>
  {{if .Record.Profession}}<p class="profession">{{.Record.Profession}}</p>{{end}}
</header>
` + sectionsHTML + `</body>
</html>
`

const professionalHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Record.Name}} — Resume</title>
<style>
  body { font-family: "Times New Roman", serif; margin: 2.5rem auto; max-width: 44rem; color: #0f172a; }
  h1 { text-transform: uppercase; letter-spacing: .15em; text-align: center; }
  .profession { text-align: center; color: {{.Accent}}; }
  h2 { text-transform: uppercase; font-size: 1rem; letter-spacing: .1em; border-bottom: 1px solid {{.Accent}}; }
  .skills ul { columns: 2; }
</style>
</head>
<body class="template-professional">
<header>
  <h1>{{.Record.Name}}</h1>
  {{if .Record.Profession}}<p class="profession">{{.Record.Profession}}</p>{{end}}
</header>
` + sectionsHTML + `</body>
</html>
`
