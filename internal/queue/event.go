// Package queue defines message payloads exchanged over the message
// broker plus the publisher and background consumer that move them.
package queue

// ReservationConfirmedEvent is published when a booking commits.  It
// carries enough for downstream consumers to log or notify without
// re-reading the table store.
type ReservationConfirmedEvent struct {
	TableID     string `json:"table_id"`
	FullName    string `json:"full_name"`
	PartySize   int    `json:"party_size"`
	Taken       int    `json:"taken"`
	Capacity    int    `json:"capacity"`
	ConfirmedAt string `json:"confirmed_at"`
}
