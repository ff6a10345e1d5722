// Package export renders administrator-facing flat files from a
// tables snapshot.  Exports are generated on demand and never
// persisted.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mkhach/grad-seating/internal/model"
)

// WriteTablesCSV writes one comma-separated record per table:
// table id, capacity, taken, and the guest list in its free-text
// form.  A header row comes first.  Row order follows the snapshot.
func WriteTablesCSV(w io.Writer, tables []model.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"table_id", "capacity", "taken", "guest_list"}); err != nil {
		return err
	}
	for _, t := range tables {
		rec := []string{
			t.ID,
			strconv.Itoa(t.Capacity),
			strconv.Itoa(t.Taken),
			model.FormatGuestList(t.Guests),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
