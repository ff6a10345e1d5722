package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mkhach/grad-seating/internal/engine"
	"github.com/mkhach/grad-seating/internal/model"
	"github.com/mkhach/grad-seating/internal/queue"
	"github.com/mkhach/grad-seating/internal/roster"
	"github.com/mkhach/grad-seating/internal/store"
)

func seedStore() *store.MemoryStore {
	tables := []model.Table{
		{ID: "A1", Capacity: 8, Taken: 8, Guests: []model.GuestEntry{{Name: "Jane Doe", PartySize: 8}}},
		{ID: "A2", Capacity: 6, Taken: 0},
	}
	students := []model.Student{
		{LastName: "Lee", FirstName: "Sam", TicketAllotment: 2, AccessCode: "7700.0"},
		{LastName: "Doe", FirstName: "Jane", TicketAllotment: 8, AccessCode: "4521"},
	}
	return store.NewMemoryStore(tables, students)
}

type recordingPublisher struct {
	events []queue.ReservationConfirmedEvent
}

func (p *recordingPublisher) PublishReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error {
	p.events = append(p.events, ev)
	return nil
}

type recordingCache struct{ invalidations int }

func (c *recordingCache) Invalidate(ctx context.Context) { c.invalidations++ }

func TestBookGated_Success(t *testing.T) {
	st := seedStore()
	pub := &recordingPublisher{}
	cache := &recordingCache{}
	svc := NewBookingService(st, pub, cache)

	booked, err := svc.BookGated(context.Background(), "Lee", "Sam", "7700", "A2")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if booked.ID != "A2" || booked.Taken != 2 {
		t.Errorf("Expected A2 with taken=2, got %s taken=%d", booked.ID, booked.Taken)
	}

	// The commit is persisted: a fresh read shows the new occupancy.
	tables, _ := st.ReadTables(context.Background())
	for _, tb := range tables {
		if tb.ID == "A2" {
			if tb.Taken != 2 || model.FormatGuestList(tb.Guests) != "Sam Lee (2)" {
				t.Errorf("Persisted A2 wrong: taken=%d guests=%q", tb.Taken, model.FormatGuestList(tb.Guests))
			}
		}
		if tb.ID == "A1" && tb.Taken != 8 {
			t.Errorf("A1 must be untouched, taken=%d", tb.Taken)
		}
	}

	if cache.invalidations != 1 {
		t.Errorf("Expected 1 cache invalidation, got %d", cache.invalidations)
	}
	if len(pub.events) != 1 {
		t.Fatalf("Expected 1 published event, got %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.TableID != "A2" || ev.FullName != "Sam Lee" || ev.PartySize != 2 {
		t.Errorf("Bad event payload: %+v", ev)
	}
}

func TestBookGated_AccessGate(t *testing.T) {
	svc := NewBookingService(seedStore(), nil, nil)
	ctx := context.Background()

	// Empty code: not yet attempted, not a denial.
	if _, err := svc.BookGated(ctx, "Lee", "Sam", "", "A2"); !errors.Is(err, ErrCodeRequired) {
		t.Errorf("Expected ErrCodeRequired, got: %v", err)
	}
	// Wrong code: denial, no mutation.
	if _, err := svc.BookGated(ctx, "Lee", "Sam", "9999", "A2"); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("Expected ErrAccessDenied, got: %v", err)
	}
	// Unknown name.
	if _, err := svc.BookGated(ctx, "Nguyen", "Kim", "1234", "A2"); !errors.Is(err, roster.ErrStudentNotFound) {
		t.Errorf("Expected ErrStudentNotFound, got: %v", err)
	}

	tables, _ := svc.Store.ReadTables(ctx)
	for _, tb := range tables {
		if tb.ID == "A2" && tb.Taken != 0 {
			t.Errorf("Failed attempts must not mutate; A2 taken=%d", tb.Taken)
		}
	}
}

func TestBookGated_AlreadySeated(t *testing.T) {
	svc := NewBookingService(seedStore(), nil, nil)
	_, err := svc.BookGated(context.Background(), "Doe", "Jane", "4521", "A2")
	var seated *engine.AlreadySeatedError
	if !errors.As(err, &seated) || seated.TableID != "A1" {
		t.Fatalf("Expected AlreadySeatedError at A1, got: %v", err)
	}
}

// racingStore lets another writer sneak a commit in between the
// service's first read and its commit-time re-read.
type racingStore struct {
	*store.MemoryStore
	reads    int
	onSecond func(s *store.MemoryStore)
}

func (r *racingStore) ReadTables(ctx context.Context) ([]model.Table, error) {
	r.reads++
	if r.reads == 2 && r.onSecond != nil {
		r.onSecond(r.MemoryStore)
		r.onSecond = nil
	}
	return r.MemoryStore.ReadTables(ctx)
}

func TestBookOpen_StaleSelection(t *testing.T) {
	rs := &racingStore{MemoryStore: seedStore()}
	rs.onSecond = func(s *store.MemoryStore) {
		// A rival party fills A2 before the re-read.
		tables, _ := s.ReadTables(context.Background())
		next, err := engine.Book(tables, "Rival Party", 6, "A2")
		if err != nil {
			t.Fatalf("rival booking setup failed: %v", err)
		}
		_ = s.ReplaceTables(context.Background(), next)
	}
	svc := NewBookingService(rs, nil, nil)

	_, err := svc.BookOpen(context.Background(), "Sam Lee", 2, "A2")
	if !errors.Is(err, ErrStaleSelection) {
		t.Fatalf("Expected ErrStaleSelection, got: %v", err)
	}

	// The rival's booking stands; ours left no trace.
	tables, _ := rs.MemoryStore.ReadTables(context.Background())
	for _, tb := range tables {
		if tb.ID == "A2" {
			if tb.Taken != 6 {
				t.Errorf("Expected A2 taken=6 from rival booking, got %d", tb.Taken)
			}
			if _, seated := engine.FindGuest([]model.Table{tb}, "Sam Lee"); seated {
				t.Error("Aborted booking must not appear on the guest list")
			}
		}
	}
}

type failingStore struct{ store.TableStore }

func (failingStore) ReadTables(ctx context.Context) ([]model.Table, error) {
	return nil, store.ErrStoreUnavailable
}

func TestBookOpen_StoreUnavailable(t *testing.T) {
	svc := NewBookingService(failingStore{seedStore()}, nil, nil)
	_, err := svc.BookOpen(context.Background(), "Sam Lee", 2, "A2")
	if !errors.Is(err, store.ErrStoreUnavailable) {
		t.Fatalf("Expected ErrStoreUnavailable, got: %v", err)
	}
}
