package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/types"
)

// Theme is the dark/light display preference persisted with the session.
type Theme string

// Supported themes.
const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme validates a raw theme string.
func ParseTheme(raw string) (Theme, error) {
	switch Theme(raw) {
	case ThemeLight, ThemeDark:
		return Theme(raw), nil
	default:
		return "", fmt.Errorf("unknown theme %q (valid: light, dark)", raw)
	}
}

// Session is the locally persisted editing state: the last-edited record,
// the last-selected template, and the theme preference. It resumes an
// in-progress edit across restarts; once a backend session exists the
// backend copy is the source of truth.
type Session struct {
	Record   types.ResumeRecord `json:"record"`
	Template types.TemplateID   `json:"template"`
	Theme    Theme              `json:"theme"`
}

// LoadSession reads the session file at path. A missing file is not an
// error: it yields a fresh default session. A corrupt file is an error so
// a typo'd path never silently discards prior work.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultSession(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file %s: %w", path, err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session file %s: %w", path, err)
	}
	normalizeSession(&sess)
	return &sess, nil
}

// Save writes the session to path, creating parent directories as needed.
func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file %s: %w", path, err)
	}
	return nil
}

func defaultSession() *Session {
	return &Session{
		Record:   types.NewResumeRecord(),
		Template: types.DefaultTemplate,
		Theme:    ThemeLight,
	}
}

// normalizeSession restores shape invariants a hand-edited or older
// session file may lack.
func normalizeSession(sess *Session) {
	if len(sess.Record.Education) == 0 {
		sess.Record.Education = []types.EducationEntry{{}}
	}
	if len(sess.Record.Experience) == 0 {
		sess.Record.Experience = []types.ExperienceEntry{{}}
	}
	if sess.Record.Color == "" {
		sess.Record.Color = types.DefaultColor
	}
	if _, err := types.ParseTemplateID(string(sess.Template)); err != nil {
		sess.Template = types.DefaultTemplate
	}
	if sess.Theme != ThemeDark {
		sess.Theme = ThemeLight
	}
}
