// Package roster resolves requesters against the invitee roster and
// checks their access codes.  The roster is read-only here; any data
// problem (missing or duplicated rows) is surfaced to the caller
// instead of being resolved by guesswork.
package roster

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mkhach/grad-seating/internal/model"
)

// ErrStudentNotFound is returned when no roster row matches the
// given name pair.
var ErrStudentNotFound = errors.New("student not found")

// ErrAmbiguousRecord is returned when more than one roster row
// matches the given name pair.  The lookup never silently picks one;
// the duplication has to be fixed in the roster itself.
var ErrAmbiguousRecord = errors.New("ambiguous student record")

// FindStudent resolves a (lastName, firstName) pair to exactly one
// roster row.  Matching is exact and case-sensitive against the
// stored values.
func FindStudent(students []model.Student, lastName, firstName string) (model.Student, error) {
	var found model.Student
	matches := 0
	for _, s := range students {
		if s.LastName == lastName && s.FirstName == firstName {
			found = s
			matches++
		}
	}
	switch matches {
	case 0:
		return model.Student{}, ErrStudentNotFound
	case 1:
		return found, nil
	default:
		return model.Student{}, ErrAmbiguousRecord
	}
}

// trailingZeroFraction matches a "." followed only by zeros at the
// end of a code, the artifact left behind when the spreadsheet
// coerced a code to a number ("1234" stored, "1234.0" read back).
var trailingZeroFraction = regexp.MustCompile(`\.0+$`)

// NormalizeAccessCode prepares a code for comparison: surrounding
// whitespace is trimmed and a trailing all-zeros fraction is
// stripped.  This is a boundary workaround for the storage
// collaborator's type coercion, not a business rule, and it is
// applied identically to stored and submitted values.
func NormalizeAccessCode(code string) string {
	code = strings.TrimSpace(code)
	return trailingZeroFraction.ReplaceAllString(code, "")
}

// AccessCodeMatches compares a submitted code against a student's
// stored code, normalizing both sides first.  An empty submission
// never matches: callers treat it as "not yet attempted" rather than
// a denial.
func AccessCodeMatches(s model.Student, candidate string) bool {
	cand := NormalizeAccessCode(candidate)
	if cand == "" {
		return false
	}
	return cand == NormalizeAccessCode(s.AccessCode)
}
