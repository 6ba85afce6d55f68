// Package store holds the current resume editing state: the record under
// edit, the selected template, and the theme preference. Every mutation
// is an atomic read-modify-write, so observers never see a record whose
// score lags its fields.
package store

import (
	"fmt"
	"sync"

	"github.com/jonathan/resume-builder/internal/record"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store owns the current (record, template, theme) triple. A zero path
// disables persistence; otherwise every successful mutation rewrites the
// session file before returning.
type Store struct {
	mu       sync.Mutex
	rec      types.ResumeRecord
	template types.TemplateID
	theme    Theme
	path     string
}

// New creates an in-memory store seeded with the given record and
// template. The record's score is recomputed on install, so callers may
// pass records with stale or absent scores.
func New(rec types.ResumeRecord, template types.TemplateID) *Store {
	rec = rec.Clone()
	rec.Score = record.ComputeScore(rec)
	return &Store{rec: rec, template: template, theme: ThemeLight}
}

// Open loads the session file at path (or starts a fresh session if the
// file does not exist) and returns a store that persists back to it.
func Open(path string) (*Store, error) {
	sess, err := LoadSession(path)
	if err != nil {
		return nil, err
	}
	s := New(sess.Record, sess.Template)
	s.theme = sess.Theme
	s.path = path
	return s, nil
}

// Edit applies a single edit operation and installs the result. The
// returned record already carries the recomputed score.
func (s *Store) Edit(op record.EditOp) (types.ResumeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := record.Apply(s.rec, op)
	if err != nil {
		return s.rec.Clone(), err
	}
	s.rec = next
	if err := s.persistLocked(); err != nil {
		return next.Clone(), err
	}
	return next.Clone(), nil
}

// Replace swaps in a whole new record and template, used by "create new"
// and by loading a saved or shared resume. The incoming score is always
// discarded and recomputed; a persisted score is never trusted. Replace
// is last-write-wins: whichever call commits last owns the state.
func (s *Store) Replace(rec types.ResumeRecord, template types.TemplateID) (types.ResumeRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = rec.Clone()
	rec.Score = record.ComputeScore(rec)
	s.rec = rec
	s.template = template
	if err := s.persistLocked(); err != nil {
		return rec.Clone(), err
	}
	return rec.Clone(), nil
}

// SetTemplate changes the template selection without touching the record
// or its score.
func (s *Store) SetTemplate(id types.TemplateID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = id
	return s.persistLocked()
}

// SetColor changes the accent color. Color does not contribute to the
// completeness score, so the score is left as is.
func (s *Store) SetColor(hex string) error {
	if err := validateColor(hex); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rec.Color = hex
	return s.persistLocked()
}

// SetTheme changes the dark/light preference.
func (s *Store) SetTheme(theme Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return s.persistLocked()
}

// Snapshot returns a copy of the current record and template. The copy is
// fixed at call time; later edits do not affect it, which is what makes
// in-flight saves serialize the record as it was when the save started.
func (s *Store) Snapshot() (types.ResumeRecord, types.TemplateID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rec.Clone(), s.template
}

// Theme returns the current theme preference.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}
	sess := Session{Record: s.rec, Template: s.template, Theme: s.theme}
	if err := sess.Save(s.path); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

func validateColor(hex string) error {
	if len(hex) != 7 || hex[0] != '#' {
		return fmt.Errorf("invalid color %q: expected #rrggbb", hex)
	}
	for _, ch := range hex[1:] {
		switch {
		case ch >= '0' && ch <= '9':
		case ch >= 'a' && ch <= 'f':
		case ch >= 'A' && ch <= 'F':
		default:
			return fmt.Errorf("invalid color %q: expected #rrggbb", hex)
		}
	}
	return nil
}
