package types

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Advisory is a non-blocking validation warning tied to a single field.
// Advisories never prevent an edit from being applied; the form layer
// surfaces them inline next to the offending field.
type Advisory struct {
	Field   string
	Message string
}

func (a Advisory) String() string {
	return fmt.Sprintf("%s: %s", a.Field, a.Message)
}

// minYear and maxYear bound the plausible graduation-year range.
const (
	minYear = 1900
	maxYear = 2100
)

var advisoryValidator = validator.New()

// Advisories inspects the populated fields of the record and returns
// warnings for values that look malformed. Empty fields never warn; an
// incomplete resume is a score concern, not a validity one.
func (r ResumeRecord) Advisories() []Advisory {
	var out []Advisory

	if r.Email != "" {
		if err := advisoryValidator.Var(r.Email, "email"); err != nil {
			out = append(out, Advisory{Field: "email", Message: "does not look like an email address"})
		}
	}

	if r.Phone != "" {
		digits := 0
		for _, ch := range r.Phone {
			if ch >= '0' && ch <= '9' {
				digits++
			}
		}
		if digits < 7 || digits > 15 {
			out = append(out, Advisory{Field: "phone", Message: "expected 7-15 digits"})
		}
	}

	for i, edu := range r.Education {
		year := strings.TrimSpace(edu.Year)
		if year == "" {
			continue
		}
		n, err := strconv.Atoi(year)
		if err != nil || n < minYear || n > maxYear {
			out = append(out, Advisory{
				Field:   fmt.Sprintf("education[%d].year", i),
				Message: fmt.Sprintf("expected a year between %d and %d", minYear, maxYear),
			})
		}
	}

	return out
}
