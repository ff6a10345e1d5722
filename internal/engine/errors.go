// Package engine holds the reservation rules: which tables can take
// a party and how a snapshot changes when a booking commits.  The
// package is pure — it reads and returns snapshot values and never
// touches the store, which keeps every rule testable without I/O.
package engine

import (
	"errors"
	"fmt"
)

// ErrNoCapacity is returned when no table on the floor can seat the
// requested party.
var ErrNoCapacity = errors.New("no table has enough remaining seats")

// ErrIneligibleTable is returned when the chosen table either does
// not exist or no longer has room for the party.  Selection is a
// user choice made from a possibly stale candidate list, so the
// engine re-validates it at commit time.
var ErrIneligibleTable = errors.New("chosen table cannot seat this party")

// AlreadySeatedError reports that the requester's full name already
// appears on a guest list.  TableID names the table holding the
// existing booking.
type AlreadySeatedError struct {
	TableID string
}

func (e *AlreadySeatedError) Error() string {
	return fmt.Sprintf("already seated at table %s", e.TableID)
}
