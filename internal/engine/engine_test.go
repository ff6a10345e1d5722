package engine

import (
	"errors"
	"testing"

	"github.com/mkhach/grad-seating/internal/model"
)

func floor() []model.Table {
	return []model.Table{
		{ID: "A1", Capacity: 8, Taken: 8, Guests: []model.GuestEntry{{Name: "Jane Doe", PartySize: 8}}},
		{ID: "A2", Capacity: 6, Taken: 0},
	}
}

func TestCandidates_InclusiveBoundary(t *testing.T) {
	tables := []model.Table{
		{ID: "T0", Capacity: 4, Taken: 4},   // remaining 0
		{ID: "T3", Capacity: 6, Taken: 3},   // remaining 3
		{ID: "T5", Capacity: 5, Taken: 0},   // remaining 5
		{ID: "T10", Capacity: 10, Taken: 0}, // remaining 10
	}

	got := Candidates(tables, 5)
	if len(got) != 2 || got[0].ID != "T5" || got[1].ID != "T10" {
		t.Fatalf("Expected candidates [T5 T10], got %v", got)
	}

	// A party exactly filling the remaining seats is eligible.
	got = Candidates(tables, 3)
	if len(got) != 3 {
		t.Errorf("Expected 3 candidates for party of 3, got %d", len(got))
	}

	// A full table is never a candidate, even for a party of 1.
	for _, c := range Candidates(tables, 1) {
		if c.ID == "T0" {
			t.Error("Full table T0 must never be a candidate")
		}
	}
}

func TestBook_RejectsIneligibleSelection(t *testing.T) {
	tables := []model.Table{
		{ID: "T3", Capacity: 6, Taken: 3},
		{ID: "T10", Capacity: 10, Taken: 0},
	}
	_, err := Book(tables, "Pat Kim", 5, "T3")
	if !errors.Is(err, ErrIneligibleTable) {
		t.Fatalf("Expected ErrIneligibleTable for table with remaining=3, got: %v", err)
	}
}

func TestBook_Scenario(t *testing.T) {
	tables := floor()

	// Jane Doe already sits at A1; a second booking must fail there
	// with no mutation regardless of target table.
	_, err := Book(tables, "Jane Doe", 2, "A2")
	var seated *AlreadySeatedError
	if !errors.As(err, &seated) {
		t.Fatalf("Expected AlreadySeatedError, got: %v", err)
	}
	if seated.TableID != "A1" {
		t.Errorf("Expected existing booking at A1, got %s", seated.TableID)
	}

	// A new guest books A2.
	next, err := Book(tables, "Sam Lee", 2, "A2")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	var a2 model.Table
	for _, tb := range next {
		if tb.ID == "A2" {
			a2 = tb
		}
	}
	if a2.Taken != 2 {
		t.Errorf("Expected A2 taken 2, got %d", a2.Taken)
	}
	if got := model.FormatGuestList(a2.Guests); got != "Sam Lee (2)" {
		t.Errorf("Expected guest list %q, got %q", "Sam Lee (2)", got)
	}

	// No other table changed.
	for _, tb := range next {
		if tb.ID == "A1" && tb.Taken != 8 {
			t.Errorf("A1 must be untouched, taken=%d", tb.Taken)
		}
	}
	// The input snapshot itself is untouched.
	if tables[1].Taken != 0 || len(tables[1].Guests) != 0 {
		t.Error("Book mutated its input snapshot")
	}
}

func TestBook_DuplicateIsIdempotent(t *testing.T) {
	tables := []model.Table{
		{ID: "A1", Capacity: 8, Taken: 0},
		{ID: "A2", Capacity: 8, Taken: 0},
	}
	next, err := Book(tables, "Robin Park", 3, "A1")
	if err != nil {
		t.Fatalf("Expected first booking to succeed, got: %v", err)
	}
	// Every later attempt fails, whichever table is targeted, and
	// case differences do not slip through.
	for _, target := range []string{"A1", "A2"} {
		_, err := Book(next, "robin park", 2, target)
		var seated *AlreadySeatedError
		if !errors.As(err, &seated) {
			t.Errorf("Expected AlreadySeatedError for target %s, got: %v", target, err)
		}
	}
}

func TestFindGuest_ExactNameOnly(t *testing.T) {
	tables := []model.Table{
		{ID: "B1", Capacity: 8, Taken: 4, Guests: []model.GuestEntry{{Name: "Ann Lee-Smith", PartySize: 4}}},
	}
	// "Ann Lee" is a substring of "Ann Lee-Smith" but a different
	// person; the structured ledger must not confuse them.
	if _, seated := FindGuest(tables, "Ann Lee"); seated {
		t.Error("Substring of another guest's name must not count as seated")
	}
	if id, seated := FindGuest(tables, "ann lee-smith"); !seated || id != "B1" {
		t.Errorf("Expected exact case-insensitive match at B1, got (%q, %v)", id, seated)
	}
}

func TestBook_NoCapacity(t *testing.T) {
	tables := []model.Table{
		{ID: "A1", Capacity: 4, Taken: 3},
		{ID: "A2", Capacity: 4, Taken: 4},
	}
	_, err := Book(tables, "Lee Chan", 2, "A1")
	if !errors.Is(err, ErrNoCapacity) {
		t.Fatalf("Expected ErrNoCapacity, got: %v", err)
	}
}

func TestSearchGuests_Substring(t *testing.T) {
	tables := floor()
	hits := SearchGuests(tables, "jane")
	if len(hits) != 1 || hits[0].ID != "A1" {
		t.Fatalf("Expected one hit at A1, got %v", hits)
	}
	if hits := SearchGuests(tables, ""); hits != nil {
		t.Error("Empty query must return no hits")
	}
}
