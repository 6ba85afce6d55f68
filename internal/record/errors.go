// Package record implements the resume editing core: the field mutator
// and the completeness score calculator.
package record

import "fmt"

// ErrUnknownField indicates an edit targeted a field that does not exist
// on the edited shape.
type ErrUnknownField struct {
	Field   string
	Section Section
}

func (e *ErrUnknownField) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("unknown field %q in section %q", e.Field, e.Section)
	}
	return fmt.Sprintf("unknown top-level field %q", e.Field)
}

// ErrUnknownSection indicates an edit targeted a section that is not part
// of the record.
type ErrUnknownSection struct {
	Section Section
}

func (e *ErrUnknownSection) Error() string {
	return fmt.Sprintf("unknown section %q (valid: education, experience)", e.Section)
}

// ErrIndexOutOfRange indicates an edit addressed an entry the section list
// does not contain. The mutator never grows or shrinks a list.
type ErrIndexOutOfRange struct {
	Section Section
	Index   int
	Length  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for section %q (length %d)", e.Index, e.Section, e.Length)
}
