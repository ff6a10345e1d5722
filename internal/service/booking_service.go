// Package service wires the pure reservation engine to the outside
// world: it reads snapshots from the table store, applies the engine,
// re-checks right before writing, and persists the result.  Cache
// invalidation and event publishing hang off a successful commit and
// never fail it.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/mkhach/grad-seating/internal/engine"
	"github.com/mkhach/grad-seating/internal/model"
	"github.com/mkhach/grad-seating/internal/queue"
	"github.com/mkhach/grad-seating/internal/roster"
	"github.com/mkhach/grad-seating/internal/store"
)

// ErrAccessDenied is returned when a submitted access code does not
// match the student's stored code.  An empty submission is rejected
// earlier with ErrCodeRequired and never reaches this error.
var ErrAccessDenied = errors.New("access code does not match")

// ErrCodeRequired is returned for an empty access-code submission.
// Handlers treat it as "not yet attempted", not as a denial.
var ErrCodeRequired = errors.New("access code required")

// ErrStaleSelection is returned when the commit-time re-read shows
// the chosen table can no longer seat the party.  The requester may
// retry immediately against the fresh floor state.
var ErrStaleSelection = errors.New("table filled up, pick again")

// EventPublisher publishes a confirmation after a commit.  Failures
// are logged and swallowed; the booking already happened.
type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

// CacheInvalidator drops cached public views after a commit so the
// floor map and search reflect the new occupancy on the next read.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// BookingService runs one reservation attempt end to end.  Every
// attempt is stateless given a fresh snapshot; there is no session
// state between calls.
type BookingService struct {
	Store     store.TableStore
	Publisher EventPublisher   // optional, may be nil
	Cache     CacheInvalidator // optional, may be nil
}

// NewBookingService constructs a BookingService.  The store is
// required; publisher and cache are optional collaborators.
func NewBookingService(st store.TableStore, pub EventPublisher, cache CacheInvalidator) *BookingService {
	if st == nil {
		panic("nil store passed to NewBookingService")
	}
	return &BookingService{Store: st, Publisher: pub, Cache: cache}
}

// BookGated runs the gated booking flow: resolve the student on the
// roster, verify the access code, then seat the student's full
// ticket allotment at the chosen table.
func (s *BookingService) BookGated(ctx context.Context, lastName, firstName, accessCode, tableID string) (model.Table, error) {
	if accessCode == "" {
		return model.Table{}, ErrCodeRequired
	}
	students, err := s.Store.ReadStudents(ctx)
	if err != nil {
		return model.Table{}, err
	}
	st, err := roster.FindStudent(students, lastName, firstName)
	if err != nil {
		return model.Table{}, err
	}
	if !roster.AccessCodeMatches(st, accessCode) {
		return model.Table{}, ErrAccessDenied
	}
	return s.book(ctx, st.FullName(), st.TicketAllotment, tableID)
}

// BookOpen runs the ungated variant: a freely typed name and party
// size, no roster involvement.
func (s *BookingService) BookOpen(ctx context.Context, fullName string, partySize int, tableID string) (model.Table, error) {
	return s.book(ctx, fullName, partySize, tableID)
}

// book is the shared read–validate–recheck–write sequence.  The
// second engine pass against a fresh snapshot narrows (but cannot
// close) the lost-update window the store's full-snapshot write
// contract leaves open: two writers racing between the re-read and
// the replace can still both land.
func (s *BookingService) book(ctx context.Context, fullName string, partySize int, tableID string) (model.Table, error) {
	tables, err := s.Store.ReadTables(ctx)
	if err != nil {
		return model.Table{}, err
	}
	if _, err := engine.Book(tables, fullName, partySize, tableID); err != nil {
		return model.Table{}, err
	}

	// Commit re-check: the candidate list shown to the user may be
	// stale by the time they click.  Re-read and re-validate against
	// the current floor state.
	fresh, err := s.Store.ReadTables(ctx)
	if err != nil {
		return model.Table{}, err
	}
	next, err := engine.Book(fresh, fullName, partySize, tableID)
	if err != nil {
		if errors.Is(err, engine.ErrIneligibleTable) || errors.Is(err, engine.ErrNoCapacity) {
			return model.Table{}, ErrStaleSelection
		}
		return model.Table{}, err
	}
	if err := s.Store.ReplaceTables(ctx, next); err != nil {
		return model.Table{}, err
	}

	var booked model.Table
	for _, t := range next {
		if t.ID == tableID {
			booked = t.Clone()
			break
		}
	}
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
	if s.Publisher != nil {
		ev := queue.ReservationConfirmedEvent{
			TableID:     booked.ID,
			FullName:    fullName,
			PartySize:   partySize,
			Taken:       booked.Taken,
			Capacity:    booked.Capacity,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.Publisher.PublishReservationConfirmed(ctx, ev); err != nil {
			log.Printf("booking: publish confirmation failed: %v", err)
		}
	}
	return booked, nil
}
