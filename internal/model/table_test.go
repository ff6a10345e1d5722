package model

import "testing"

func TestStatusOf(t *testing.T) {
	if got := StatusOf(Table{Capacity: 10, Taken: 10}, 3); got != StatusSoldOut {
		t.Errorf("Expected SOLD_OUT, got %s", got)
	}
	if got := StatusOf(Table{Capacity: 10, Taken: 8}, 3); got != StatusNearlyFull {
		t.Errorf("Expected NEARLY_FULL, got %s", got)
	}
	if got := StatusOf(Table{Capacity: 10, Taken: 5}, 3); got != StatusAvailable {
		t.Errorf("Expected AVAILABLE, got %s", got)
	}
	// A table exactly at the threshold is still AVAILABLE (< is strict).
	if got := StatusOf(Table{Capacity: 10, Taken: 7}, 3); got != StatusAvailable {
		t.Errorf("Expected AVAILABLE at remaining==threshold, got %s", got)
	}
	// The threshold has drifted between 3 and 4 historically.
	if got := StatusOf(Table{Capacity: 10, Taken: 7}, 4); got != StatusNearlyFull {
		t.Errorf("Expected NEARLY_FULL with threshold 4, got %s", got)
	}
	// Non-positive threshold falls back to the default of 3.
	if got := StatusOf(Table{Capacity: 10, Taken: 8}, 0); got != StatusNearlyFull {
		t.Errorf("Expected default threshold to apply, got %s", got)
	}
}

func TestGuestListRoundTrip(t *testing.T) {
	guests := []GuestEntry{{Name: "Jane Doe", PartySize: 8}, {Name: "Sam Lee", PartySize: 2}}
	text := FormatGuestList(guests)
	if text != "Jane Doe (8), Sam Lee (2)" {
		t.Fatalf("Unexpected serialization: %q", text)
	}
	back := ParseGuestList(text)
	if len(back) != 2 || back[0] != guests[0] || back[1] != guests[1] {
		t.Fatalf("Round trip lost data: %v", back)
	}
	if FormatGuestList(nil) != "" {
		t.Error("Empty list must serialize to empty string, no separator")
	}
}

func TestParseGuestList_LegacyShapes(t *testing.T) {
	// The old sheet wrote "Name(n), " with a trailing comma and no
	// space before the parenthesis.
	got := ParseGuestList("Jane Doe(8), Sam Lee(2), ")
	if len(got) != 2 {
		t.Fatalf("Expected 2 entries, got %v", got)
	}
	if got[0].Name != "Jane Doe" || got[0].PartySize != 8 {
		t.Errorf("Bad first entry: %+v", got[0])
	}
	// An entry without a party marker survives as a party of one.
	got = ParseGuestList("Mystery Guest")
	if len(got) != 1 || got[0].PartySize != 1 {
		t.Fatalf("Markerless entry must be kept: %v", got)
	}
	if ParseGuestList("  ") != nil {
		t.Error("Blank text parses to no entries")
	}
}
