package types

import "fmt"

// TemplateID identifies one of the visual resume templates. The set is
// closed; ParseTemplateID rejects anything else.
type TemplateID string

// The supported visual templates.
const (
	TemplateClassic      TemplateID = "classic"
	TemplateModern       TemplateID = "modern"
	TemplateCreative     TemplateID = "creative"
	TemplateProfessional TemplateID = "professional"
)

// DefaultTemplate is the template selected for a fresh resume.
const DefaultTemplate = TemplateClassic

// TemplateIDs returns all valid template identifiers in display order.
func TemplateIDs() []TemplateID {
	return []TemplateID{TemplateClassic, TemplateModern, TemplateCreative, TemplateProfessional}
}

// ParseTemplateID validates a raw template identifier string.
func ParseTemplateID(raw string) (TemplateID, error) {
	for _, id := range TemplateIDs() {
		if raw == string(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("unknown template %q (valid: classic, modern, creative, professional)", raw)
}
