package roster

import (
	"errors"
	"testing"

	"github.com/mkhach/grad-seating/internal/model"
)

func sampleRoster() []model.Student {
	return []model.Student{
		{LastName: "Doe", FirstName: "Jane", TicketAllotment: 4, AccessCode: "4521"},
		{LastName: "Lee", FirstName: "Sam", TicketAllotment: 2, AccessCode: "7700.0"},
		{LastName: "Park", FirstName: "Robin", TicketAllotment: 3, AccessCode: "0042"},
		{LastName: "Park", FirstName: "Robin", TicketAllotment: 3, AccessCode: "0042"}, // duplicated row
	}
}

func TestFindStudent(t *testing.T) {
	students := sampleRoster()

	s, err := FindStudent(students, "Doe", "Jane")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if s.TicketAllotment != 4 {
		t.Errorf("Expected allotment 4, got %d", s.TicketAllotment)
	}

	if _, err := FindStudent(students, "doe", "jane"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("Matching is case-sensitive; expected ErrStudentNotFound, got: %v", err)
	}
	if _, err := FindStudent(students, "Nguyen", "Kim"); !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("Expected ErrStudentNotFound, got: %v", err)
	}
	if _, err := FindStudent(students, "Park", "Robin"); !errors.Is(err, ErrAmbiguousRecord) {
		t.Errorf("Expected ErrAmbiguousRecord for duplicated row, got: %v", err)
	}
}

func TestAccessCodeNormalization(t *testing.T) {
	plain := model.Student{AccessCode: "4521"}
	coerced := model.Student{AccessCode: "4521.0"}

	// Both storage shapes match the same user input.
	if !AccessCodeMatches(plain, "4521") {
		t.Error("Code stored as \"4521\" must match input \"4521\"")
	}
	if !AccessCodeMatches(coerced, "4521") {
		t.Error("Code stored as \"4521.0\" must match input \"4521\"")
	}
	if !AccessCodeMatches(plain, " 4521.0 ") {
		t.Error("Coerced, padded input must still match")
	}

	// Empty submission never matches; handlers treat it as "not yet
	// attempted" rather than a denial.
	if AccessCodeMatches(plain, "") {
		t.Error("Empty submission must never match")
	}
	if AccessCodeMatches(model.Student{AccessCode: ""}, "") {
		t.Error("Empty vs empty must not match either")
	}

	// Only an all-zeros fraction is a coercion artifact.
	if AccessCodeMatches(model.Student{AccessCode: "4521.5"}, "4521") {
		t.Error("\"4521.5\" is a distinct code, not a coercion artifact")
	}
	if got := NormalizeAccessCode("1234.00"); got != "1234" {
		t.Errorf("Expected \"1234\", got %q", got)
	}
}
