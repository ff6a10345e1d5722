package engine

import (
	"strings"

	"github.com/mkhach/grad-seating/internal/model"
)

// Candidates returns every table that can still seat a party of the
// given size.  The boundary is inclusive: a party exactly filling
// the remaining seats is eligible, a table with zero remaining never
// is.  A non-positive party size yields no candidates.
func Candidates(tables []model.Table, partySize int) []model.Table {
	if partySize <= 0 {
		return nil
	}
	var out []model.Table
	for _, t := range tables {
		if t.Remaining() >= partySize {
			out = append(out, t)
		}
	}
	return out
}

// FindGuest reports the table holding a booking for the given full
// name, if any.  Matching is case-insensitive but exact on the whole
// name: "Ann Lee" does not match a booking by "Ann Lee-Smith".  The
// old free-text substring scan produced exactly that false positive,
// which is why the ledger is kept structured in memory.
func FindGuest(tables []model.Table, fullName string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(fullName))
	if want == "" {
		return "", false
	}
	for _, t := range tables {
		for _, g := range t.Guests {
			if strings.ToLower(strings.TrimSpace(g.Name)) == want {
				return t.ID, true
			}
		}
	}
	return "", false
}

// Book validates and applies one reservation against a snapshot.  On
// success it returns a new snapshot in which only the chosen table
// changed: its Taken grew by partySize and one guest entry was
// appended.  The input snapshot is never mutated.
//
// Checks run in order: duplicate booking, floor-wide capacity,
// eligibility of the chosen table.  Any failure returns a nil
// snapshot and leaves the input untouched.
func Book(tables []model.Table, fullName string, partySize int, tableID string) ([]model.Table, error) {
	if id, seated := FindGuest(tables, fullName); seated {
		return nil, &AlreadySeatedError{TableID: id}
	}
	candidates := Candidates(tables, partySize)
	if len(candidates) == 0 {
		return nil, ErrNoCapacity
	}
	eligible := false
	for _, c := range candidates {
		if c.ID == tableID {
			eligible = true
			break
		}
	}
	if !eligible {
		// The table was either never on the floor or filled up
		// between display and commit.
		return nil, ErrIneligibleTable
	}

	next := model.CloneTables(tables)
	for i := range next {
		if next[i].ID == tableID {
			next[i].Taken += partySize
			next[i].Guests = append(next[i].Guests, model.GuestEntry{
				Name:      strings.TrimSpace(fullName),
				PartySize: partySize,
			})
			break
		}
	}
	return next, nil
}

// SearchGuests returns every table whose guest list mentions the
// query as a case-insensitive substring of a guest name.  This is
// the public lookup surface ("where am I sitting?") and deliberately
// keeps substring semantics; the duplicate check above does not.
func SearchGuests(tables []model.Table, query string) []model.Table {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []model.Table
	for _, t := range tables {
		for _, g := range t.Guests {
			if strings.Contains(strings.ToLower(g.Name), q) {
				out = append(out, t.Clone())
				break
			}
		}
	}
	return out
}
