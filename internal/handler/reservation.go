package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkhach/grad-seating/internal/engine"
	"github.com/mkhach/grad-seating/internal/roster"
	"github.com/mkhach/grad-seating/internal/service"
	"github.com/mkhach/grad-seating/internal/store"
)

// ReservationHandler exposes the two booking flows over HTTP: the
// gated flow (roster + access code) and the open flow (free-typed
// name and party size).  All validation beyond basic shape checks
// lives in the booking service and the engine.
type ReservationHandler struct {
	Bookings *service.BookingService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(b *service.BookingService) *ReservationHandler {
	if b == nil {
		panic("nil booking service passed to NewReservationHandler")
	}
	return &ReservationHandler{Bookings: b}
}

type gatedReservationReq struct {
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	AccessCode string `json:"access_code"`
	TableID    string `json:"table_id"`
}

type openReservationReq struct {
	FullName  string `json:"full_name"`
	PartySize int    `json:"party_size"`
	TableID   string `json:"table_id"`
}

type reservationResp struct {
	TableID   string `json:"table_id"`
	Taken     int    `json:"taken"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
}

// CreateGated handles POST /v1/reservations.  The student identifies
// themselves by name, presents their access code, and picks a table;
// the party size is the student's ticket allotment.
func (h *ReservationHandler) CreateGated(c echo.Context) error {
	var req gatedReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.LastName = strings.TrimSpace(req.LastName)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.TableID = strings.TrimSpace(req.TableID)
	if req.LastName == "" || req.FirstName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "last_name and first_name required"})
	}
	if req.TableID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	booked, err := h.Bookings.BookGated(ctx, req.LastName, req.FirstName, req.AccessCode, req.TableID)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusCreated, reservationResp{
		TableID:   booked.ID,
		Taken:     booked.Taken,
		Capacity:  booked.Capacity,
		Remaining: booked.Remaining(),
	})
}

// CreateOpen handles POST /v1/reservations/open, the variant with no
// identity gate.  Name and party size are taken as typed.
func (h *ReservationHandler) CreateOpen(c echo.Context) error {
	var req openReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.TableID = strings.TrimSpace(req.TableID)
	if req.FullName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name required"})
	}
	if req.PartySize <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "party_size must be positive"})
	}
	if req.TableID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	booked, err := h.Bookings.BookOpen(ctx, req.FullName, req.PartySize, req.TableID)
	if err != nil {
		return writeBookingError(c, err)
	}
	return c.JSON(http.StatusCreated, reservationResp{
		TableID:   booked.ID,
		Taken:     booked.Taken,
		Capacity:  booked.Capacity,
		Remaining: booked.Remaining(),
	})
}

// writeBookingError maps the booking error taxonomy onto HTTP.  Every
// failure here happened with no mutation; all but the store outage
// invite an immediate retry with corrected input.
func writeBookingError(c echo.Context, err error) error {
	var seated *engine.AlreadySeatedError
	switch {
	case errors.Is(err, service.ErrCodeRequired):
		// Empty code means "not yet attempted", so no access-denied
		// wording in the message.
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code_required", "message": "enter your access code"})
	case errors.Is(err, roster.ErrStudentNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "student_not_found", "message": "name not on the roster"})
	case errors.Is(err, roster.ErrAmbiguousRecord):
		return c.JSON(http.StatusConflict, echo.Map{"error": "ambiguous_record", "message": "more than one roster row matches; contact an administrator"})
	case errors.Is(err, service.ErrAccessDenied):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "access_denied", "message": "access code does not match"})
	case errors.As(err, &seated):
		return c.JSON(http.StatusConflict, echo.Map{"error": "already_seated", "table_id": seated.TableID})
	case errors.Is(err, engine.ErrNoCapacity):
		return c.JSON(http.StatusConflict, echo.Map{"error": "no_capacity", "message": "no table can seat this party"})
	case errors.Is(err, engine.ErrIneligibleTable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "ineligible_table", "message": "chosen table cannot seat this party"})
	case errors.Is(err, service.ErrStaleSelection):
		return c.JSON(http.StatusConflict, echo.Map{"error": "stale_selection", "message": "table filled up, pick another"})
	case errors.Is(err, store.ErrStoreUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store_unavailable"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal"})
	}
}
