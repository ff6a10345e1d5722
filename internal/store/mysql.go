package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkhach/grad-seating/internal/model"
)

// MySQLStore implements TableStore on top of a MySQL database.  The
// guest list is persisted in the legacy free-text form ("Jane Doe
// (8), Sam Lee (2)") and parsed back into structured entries on
// read, so the stored shape stays interchangeable with the old
// spreadsheet export format.
type MySQLStore struct {
	db *sql.DB
}

// NewMySQLStore constructs a MySQLStore with the given DB handle.
func NewMySQLStore(db *sql.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

// EnsureSchema creates the two backing tables when they do not exist.
// Access codes are VARCHAR end to end; the "1234.0" coercion hazard
// only appears when rows are imported from the old spreadsheet.
func (s *MySQLStore) EnsureSchema(ctx context.Context) error {
	const tables = `CREATE TABLE IF NOT EXISTS seating_tables (
	    table_id   VARCHAR(32) NOT NULL PRIMARY KEY,
	    capacity   INT NOT NULL,
	    taken      INT NOT NULL DEFAULT 0,
	    guest_list TEXT NOT NULL,
	    pos_x      DOUBLE NOT NULL DEFAULT 0,
	    pos_y      DOUBLE NOT NULL DEFAULT 0
	)`
	const students = `CREATE TABLE IF NOT EXISTS students (
	    last_name        VARCHAR(128) NOT NULL,
	    first_name       VARCHAR(128) NOT NULL,
	    ticket_allotment INT NOT NULL,
	    access_code      VARCHAR(32) NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, tables); err != nil {
		return fmt.Errorf("%w: create seating_tables: %v", ErrStoreUnavailable, err)
	}
	if _, err := s.db.ExecContext(ctx, students); err != nil {
		return fmt.Errorf("%w: create students: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ReadTables returns every seating table, ordered by id.
func (s *MySQLStore) ReadTables(ctx context.Context) ([]model.Table, error) {
	const q = `SELECT table_id, capacity, taken, guest_list, pos_x, pos_y
	           FROM seating_tables
	           ORDER BY table_id`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: read tables: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []model.Table
	for rows.Next() {
		var t model.Table
		var guestText string
		if err := rows.Scan(&t.ID, &t.Capacity, &t.Taken, &guestText, &t.X, &t.Y); err != nil {
			return nil, fmt.Errorf("%w: scan table: %v", ErrStoreUnavailable, err)
		}
		t.Guests = model.ParseGuestList(guestText)
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read tables: %v", ErrStoreUnavailable, err)
	}
	return result, nil
}

// ReplaceTables overwrites the whole seating_tables collection in one
// transaction.  The delete-and-reinsert shape mirrors the store
// contract: there is no partial-row update, every commit writes the
// full snapshot.
func (s *MySQLStore) ReplaceTables(ctx context.Context, tables []model.Table) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin replace: %v", ErrStoreUnavailable, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM seating_tables`); err != nil {
		return fmt.Errorf("%w: clear tables: %v", ErrStoreUnavailable, err)
	}
	if len(tables) > 0 {
		query := `INSERT INTO seating_tables (table_id, capacity, taken, guest_list, pos_x, pos_y) VALUES `
		args := make([]interface{}, 0, len(tables)*6)
		for i, t := range tables {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?, ?, ?, ?)"
			args = append(args, t.ID, t.Capacity, t.Taken, model.FormatGuestList(t.Guests), t.X, t.Y)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: write tables: %v", ErrStoreUnavailable, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit replace: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// ReadStudents returns the full roster, ordered by name.
func (s *MySQLStore) ReadStudents(ctx context.Context) ([]model.Student, error) {
	const q = `SELECT last_name, first_name, ticket_allotment, access_code
	           FROM students
	           ORDER BY last_name, first_name`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: read students: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var result []model.Student
	for rows.Next() {
		var st model.Student
		if err := rows.Scan(&st.LastName, &st.FirstName, &st.TicketAllotment, &st.AccessCode); err != nil {
			return nil, fmt.Errorf("%w: scan student: %v", ErrStoreUnavailable, err)
		}
		result = append(result, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read students: %v", ErrStoreUnavailable, err)
	}
	return result, nil
}
