package models

import (
	"fmt"
	"strings"
	"time"
)

// bookingTransitions defines the allowed status flow. Terminal states admit
// no further transitions; cancellation is reachable from every other state.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPendingPayment: {BookingConfirmed, BookingCancelled},
	BookingConfirmed:      {BookingInProgress, BookingCancelled},
	BookingInProgress:     {BookingCompleted, BookingCancelled},
	BookingCompleted:      {},
	BookingCancelled:      {},
}

// ValidBookingStatus reports whether s names a known status.
func ValidBookingStatus(s BookingStatus) bool {
	_, ok := bookingTransitions[s]
	return ok
}

// CanTransition reports whether from -> to is an allowed status move.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the given one.
func NextStatuses(from BookingStatus) []BookingStatus {
	return bookingTransitions[from]
}

// ApplyTransition moves a booking to the target status, stamping the matching
// timestamp field. It fails without mutating the booking on an invalid move.
func ApplyTransition(b *Booking, to BookingStatus, now time.Time) error {
	if b == nil {
		return fmt.Errorf("booking is nil")
	}
	if !CanTransition(b.Status, to) {
		return fmt.Errorf("invalid status transition %s -> %s (allowed: %s)",
			b.Status, to, describeNext(b.Status))
	}

	b.Status = to

	switch to {
	case BookingConfirmed:
		if b.ConfirmedAt == nil {
			t := now
			b.ConfirmedAt = &t
		}
	case BookingInProgress:
		if b.StartedAt == nil {
			t := now
			b.StartedAt = &t
		}
	case BookingCompleted:
		if b.CompletedAt == nil {
			t := now
			b.CompletedAt = &t
		}
	case BookingCancelled:
		if b.CancelledAt == nil {
			t := now
			b.CancelledAt = &t
		}
	}
	return nil
}

func describeNext(from BookingStatus) string {
	next := bookingTransitions[from]
	if len(next) == 0 {
		return "none, terminal state"
	}
	names := make([]string, len(next))
	for i, s := range next {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
