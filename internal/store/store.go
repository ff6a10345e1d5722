// Package store isolates all persistence behind the Table Store
// contract: whole collections are read and replaced wholesale.  There
// is deliberately no per-row update primitive and no concurrency
// token — the backing spreadsheet-style store offers neither, so the
// contract does not pretend otherwise.  Callers that need safer
// commits layer a re-read check on top (see the booking service).
package store

import (
	"context"
	"errors"

	"github.com/mkhach/grad-seating/internal/model"
)

// ErrStoreUnavailable is returned (wrapped) when the backing store
// cannot be reached or an I/O operation fails.  Handlers should
// translate this into an HTTP 503 and abort the current request
// rather than re-prompting.
var ErrStoreUnavailable = errors.New("table store unavailable")

// TableStore is the persistence boundary of the whole system.
//
// ReadTables and ReadStudents return the full collections as flat,
// ordered lists.  ReplaceTables overwrites the entire Tables
// collection in a single call; callers must always pass the full,
// current set of rows including unmodified ones.  Students are
// read-only through this interface.
type TableStore interface {
	ReadTables(ctx context.Context) ([]model.Table, error)
	ReplaceTables(ctx context.Context, tables []model.Table) error
	ReadStudents(ctx context.Context) ([]model.Student, error)
}
