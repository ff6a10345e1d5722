package model

// Table is a single seating unit on the event floor.  Capacity is
// fixed at setup time; Taken and Guests change only through
// successful reservations.  X and Y place the table on the visual
// map and carry no booking semantics.
//
// Fields:
//
//	ID       – stable table identifier (e.g. "A1").
//	Capacity – maximum number of seats, always > 0.
//	Taken    – seats currently occupied, 0 <= Taken <= Capacity.
//	Guests   – ordered, append-only list of who sits here.
//	X, Y     – map coordinates.
type Table struct {
	ID       string       `json:"id"`       // seating_tables.table_id
	Capacity int          `json:"capacity"` // seating_tables.capacity
	Taken    int          `json:"taken"`    // seating_tables.taken
	Guests   []GuestEntry `json:"guests"`   // seating_tables.guest_list (parsed)
	X        float64      `json:"x"`        // seating_tables.pos_x
	Y        float64      `json:"y"`        // seating_tables.pos_y
}

// Remaining reports how many seats are still free.  It is always
// derived, never stored.
func (t Table) Remaining() int {
	return t.Capacity - t.Taken
}

// Clone returns a deep copy of the table.  The guest slice is copied
// so mutations on the clone never leak back into the original.
func (t Table) Clone() Table {
	c := t
	if t.Guests != nil {
		c.Guests = make([]GuestEntry, len(t.Guests))
		copy(c.Guests, t.Guests)
	}
	return c
}

// CloneTables deep-copies a whole snapshot.
func CloneTables(tables []Table) []Table {
	out := make([]Table, len(tables))
	for i, t := range tables {
		out[i] = t.Clone()
	}
	return out
}

// TableStatus classifies a table for the floor map.  The status is
// purely presentational and never gates a booking: a NEARLY_FULL
// table is still bookable when its remaining seats suffice.
type TableStatus string

const (
	StatusSoldOut    TableStatus = "SOLD_OUT"
	StatusNearlyFull TableStatus = "NEARLY_FULL"
	StatusAvailable  TableStatus = "AVAILABLE"
)

// DefaultNearlyFullThreshold is the cutoff below which a table is
// flagged NEARLY_FULL.  It has drifted between 3 and 4 over this
// system's lifetime and is therefore configurable.
const DefaultNearlyFullThreshold = 3

// StatusOf classifies a single table.  A non-positive threshold
// falls back to the default.
func StatusOf(t Table, threshold int) TableStatus {
	if threshold <= 0 {
		threshold = DefaultNearlyFullThreshold
	}
	switch r := t.Remaining(); {
	case r <= 0:
		return StatusSoldOut
	case r < threshold:
		return StatusNearlyFull
	default:
		return StatusAvailable
	}
}
