package export

import (
	"strings"
	"testing"

	"github.com/mkhach/grad-seating/internal/model"
)

func TestWriteTablesCSV(t *testing.T) {
	tables := []model.Table{
		{ID: "A1", Capacity: 8, Taken: 8, Guests: []model.GuestEntry{
			{Name: "Jane Doe", PartySize: 6},
			{Name: "Sam Lee", PartySize: 2},
		}},
		{ID: "A2", Capacity: 6, Taken: 0},
	}
	var sb strings.Builder
	if err := WriteTablesCSV(&sb, tables); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 records, got %d lines", len(lines))
	}
	if lines[0] != "table_id,capacity,taken,guest_list" {
		t.Errorf("Bad header: %q", lines[0])
	}
	// A multi-guest list contains commas, so the field gets quoted.
	if lines[1] != `A1,8,8,"Jane Doe (6), Sam Lee (2)"` {
		t.Errorf("Bad record: %q", lines[1])
	}
	if lines[2] != "A2,6,0," {
		t.Errorf("Bad empty-table record: %q", lines[2])
	}
}
