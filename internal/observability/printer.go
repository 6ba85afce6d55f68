// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/api"
	"github.com/jonathan/resume-builder/internal/record"
	"github.com/jonathan/resume-builder/internal/types"
)

// boxWidth is the default width for formatted output boxes
const boxWidth = 60

// Printer handles formatted output for the show/list commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of the current record,
// its template selection, and its completeness score.
func (p *Printer) PrintResume(rec types.ResumeRecord, template types.TemplateID) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:       %s\n", orDash(rec.Name)))
	sb.WriteString(fmt.Sprintf("Profession: %s\n", orDash(rec.Profession)))
	sb.WriteString(fmt.Sprintf("Email:      %s\n", orDash(rec.Email)))
	sb.WriteString(fmt.Sprintf("Phone:      %s\n", orDash(rec.Phone)))
	sb.WriteString(fmt.Sprintf("Address:    %s\n", orDash(rec.Address)))
	sb.WriteString("\n")

	if len(rec.Education) > 0 {
		edu := rec.Education[0]
		sb.WriteString("Education:\n")
		sb.WriteString(fmt.Sprintf("  %s — %s (%s)\n", orDash(edu.Degree), orDash(edu.Institution), orDash(edu.Year)))
	}
	if len(rec.Experience) > 0 {
		exp := rec.Experience[0]
		sb.WriteString("Experience:\n")
		sb.WriteString(fmt.Sprintf("  %s at %s (%s)\n", orDash(exp.Role), orDash(exp.Company), orDash(exp.Duration)))
		if exp.Description != "" {
			sb.WriteString(fmt.Sprintf("  %s\n", exp.Description))
		}
	}
	sb.WriteString("\n")

	skills := types.SplitSkills(rec.Skills)
	if len(skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(skills, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Template: %s   Accent: %s\n", template, rec.Color))
	sb.WriteString(fmt.Sprintf("Completeness: %d/100", rec.Score))

	p.printBox("RESUME", sb.String())
}

// PrintScoreBreakdown outputs the per-field score contribution table.
func (p *Printer) PrintScoreBreakdown(rec types.ResumeRecord) {
	var sb strings.Builder

	for _, line := range record.ScoreBreakdown(rec) {
		marker := " "
		if line.Earned > 0 {
			marker = "✓"
		}
		sb.WriteString(fmt.Sprintf("%s %-24s %2d/%2d\n", marker, line.Field, line.Earned, line.Worth))
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d/100", record.ComputeScore(rec)))

	p.printBox("COMPLETENESS", sb.String())
}

// PrintAdvisories outputs non-blocking field warnings, if any.
func (p *Printer) PrintAdvisories(advisories []types.Advisory) {
	if len(advisories) == 0 {
		return
	}
	var sb strings.Builder
	for _, a := range advisories {
		sb.WriteString(fmt.Sprintf("! %s\n", a))
	}
	p.printBox("WARNINGS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSavedResumes outputs the saved-resume listing.
func (p *Printer) PrintSavedResumes(resumes []api.SavedResume) {
	if len(resumes) == 0 {
		p.printBox("SAVED RESUMES", "No saved resumes yet.")
		return
	}

	var sb strings.Builder
	for i, r := range resumes {
		title := r.Title
		if title == "" {
			title = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("   id: %s  template: %s\n", r.ID, r.Template()))
		if !r.UpdatedAt.IsZero() {
			sb.WriteString(fmt.Sprintf("   updated: %s\n", r.UpdatedAt.Format("2006-01-02 15:04")))
		}
	}
	p.printBox("SAVED RESUMES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUser outputs the authenticated account summary.
func (p *Printer) PrintUser(user *types.User) {
	if user == nil {
		return
	}
	content := fmt.Sprintf("Name:  %s\nEmail: %s\nID:    %s", user.Name, user.Email, user.ID)
	p.printBox("ACCOUNT", content)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
