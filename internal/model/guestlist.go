package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GuestEntry is one booking on a table's guest list: who booked and
// how many seats they hold.  Entries are append-only; the engine
// never rewrites or removes them.
type GuestEntry struct {
	Name      string `json:"name"`
	PartySize int    `json:"party_size"`
}

// String renders the entry in the legacy ledger form "Name (n)".
func (g GuestEntry) String() string {
	return fmt.Sprintf("%s (%d)", g.Name, g.PartySize)
}

// guestEntryRx matches a trailing "(n)" party-size marker, with or
// without a space before the parenthesis.  Legacy rows wrote
// "Name(n)", newer ones "Name (n)".
var guestEntryRx = regexp.MustCompile(`^(.*?)\s*\((\d+)\)$`)

// FormatGuestList serializes a guest list into the comma-separated
// free text the backing store keeps ("Jane Doe (8), Sam Lee (2)").
// An empty list serializes to the empty string with no leading
// separator.
func FormatGuestList(guests []GuestEntry) string {
	if len(guests) == 0 {
		return ""
	}
	parts := make([]string, len(guests))
	for i, g := range guests {
		parts[i] = g.String()
	}
	return strings.Join(parts, ", ")
}

// ParseGuestList turns the store's free-text ledger back into
// structured entries.  Segments are comma-separated; blank segments
// (legacy trailing commas) are skipped.  A segment without a "(n)"
// marker is kept as a party of one rather than dropped, so no ledger
// entry is ever lost on a round trip.
func ParseGuestList(raw string) []GuestEntry {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var out []GuestEntry
	for _, seg := range strings.Split(raw, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		if m := guestEntryRx.FindStringSubmatch(seg); m != nil {
			n, err := strconv.Atoi(m[2])
			if err == nil && n > 0 {
				out = append(out, GuestEntry{Name: strings.TrimSpace(m[1]), PartySize: n})
				continue
			}
		}
		out = append(out, GuestEntry{Name: seg, PartySize: 1})
	}
	return out
}
