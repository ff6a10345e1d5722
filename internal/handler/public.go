package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mkhach/grad-seating/internal/engine"
	"github.com/mkhach/grad-seating/internal/model"
	"github.com/mkhach/grad-seating/internal/store"
)

// PublicHandler serves the unauthenticated browse surface: the floor
// map and the guest-name search.  Both render straight from the
// latest table store snapshot.
type PublicHandler struct {
	Store     store.TableStore
	Threshold int // remaining-seats cutoff for NEARLY_FULL
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(st store.TableStore, threshold int) *PublicHandler {
	if st == nil {
		panic("nil store passed to NewPublicHandler")
	}
	return &PublicHandler{Store: st, Threshold: threshold}
}

// mapEntry is one table on the floor map.  Guests are summarized as
// names only; party sizes stay on the admin export.
type mapEntry struct {
	ID        string            `json:"id"`
	Capacity  int               `json:"capacity"`
	Taken     int               `json:"taken"`
	Remaining int               `json:"remaining"`
	X         float64           `json:"x"`
	Y         float64           `json:"y"`
	Status    model.TableStatus `json:"status"`
	Candidate *bool             `json:"candidate,omitempty"`
}

// GetTables handles GET /v1/tables.  It returns every table with its
// derived remaining count and map status.  With ?party_size=N each
// entry additionally carries a candidate flag: whether that table
// could seat a party of N right now.  The flag is informational; the
// booking flow re-validates at commit time.
func (h *PublicHandler) GetTables(c echo.Context) error {
	tables, err := h.Store.ReadTables(c.Request().Context())
	if err != nil {
		return writeStoreError(c, err)
	}

	var candidateIDs map[string]bool
	if ps := strings.TrimSpace(c.QueryParam("party_size")); ps != "" {
		n, err := strconv.Atoi(ps)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid party_size"})
		}
		candidateIDs = make(map[string]bool)
		for _, t := range engine.Candidates(tables, n) {
			candidateIDs[t.ID] = true
		}
	}

	out := make([]mapEntry, 0, len(tables))
	for _, t := range tables {
		e := mapEntry{
			ID:        t.ID,
			Capacity:  t.Capacity,
			Taken:     t.Taken,
			Remaining: t.Remaining(),
			X:         t.X,
			Y:         t.Y,
			Status:    model.StatusOf(t, h.Threshold),
		}
		if candidateIDs != nil {
			ok := candidateIDs[t.ID]
			e.Candidate = &ok
		}
		out = append(out, e)
	}
	return c.JSON(http.StatusOK, echo.Map{"tables": out})
}

// searchHit is one search result: the table plus the guest names on it.
type searchHit struct {
	ID        string   `json:"id"`
	Remaining int      `json:"remaining"`
	Guests    []string `json:"guests"`
}

// SearchTables handles GET /v1/tables/search?q=.  It returns every
// table whose guest list mentions the query as a case-insensitive
// substring, so guests can find their seat by a partial name.
func (h *PublicHandler) SearchTables(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
	}
	tables, err := h.Store.ReadTables(c.Request().Context())
	if err != nil {
		return writeStoreError(c, err)
	}

	hits := []searchHit{}
	for _, t := range engine.SearchGuests(tables, q) {
		names := make([]string, len(t.Guests))
		for i, g := range t.Guests {
			names[i] = g.Name
		}
		hits = append(hits, searchHit{ID: t.ID, Remaining: t.Remaining(), Guests: names})
	}
	return c.JSON(http.StatusOK, echo.Map{"query": q, "tables": hits})
}

func writeStoreError(c echo.Context, err error) error {
	if errors.Is(err, store.ErrStoreUnavailable) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "store_unavailable"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal"})
}
