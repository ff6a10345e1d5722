package store

import (
	"context"
	"sync"

	"github.com/mkhach/grad-seating/internal/model"
)

// MemoryStore is an in-process TableStore used by tests and as a demo
// backend.  It copies on every read and write so callers can never
// alias its internal snapshot.  Like the real store it has no
// transactional isolation beyond the single replace call.
type MemoryStore struct {
	mu       sync.Mutex
	tables   []model.Table
	students []model.Student
}

// NewMemoryStore seeds a MemoryStore with the given collections.
func NewMemoryStore(tables []model.Table, students []model.Student) *MemoryStore {
	return &MemoryStore{
		tables:   model.CloneTables(tables),
		students: append([]model.Student(nil), students...),
	}
}

// ReadTables returns a deep copy of the current Tables collection.
func (s *MemoryStore) ReadTables(ctx context.Context) ([]model.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CloneTables(s.tables), nil
}

// ReplaceTables overwrites the Tables collection with a deep copy of
// the given snapshot.
func (s *MemoryStore) ReplaceTables(ctx context.Context, tables []model.Table) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = model.CloneTables(tables)
	return nil
}

// ReadStudents returns a copy of the roster.
func (s *MemoryStore) ReadStudents(ctx context.Context) ([]model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Student(nil), s.students...), nil
}
