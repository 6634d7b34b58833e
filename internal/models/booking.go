package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is persisted as a string column.
type BookingStatus string

const (
	BookingPendingPayment BookingStatus = "pending_payment"
	BookingConfirmed      BookingStatus = "confirmed"
	BookingInProgress     BookingStatus = "in_progress"
	BookingCompleted      BookingStatus = "completed"
	BookingCancelled      BookingStatus = "cancelled"
)

// Booking is the core entity. Origin and destination are resolved to display
// names at creation time, not living references; the record is mutated only
// by status transitions and never deleted.
type Booking struct {
	BaseModel
	UserID       uuid.UUID     `gorm:"type:uuid;index" json:"userId"`
	FromLocation string        `json:"fromLocation"`
	ToLocation   string        `json:"toLocation"`
	BirdID       string        `gorm:"default:unknown" json:"birdId"`
	Status       BookingStatus `gorm:"type:varchar(16);index" json:"status"`
	Date         time.Time     `json:"date"`
	Cost         float64       `json:"cost"`
	Currency     string        `gorm:"default:INR" json:"currency"`
	EtaMinutes   int           `gorm:"default:15" json:"etaMinutes"`
	DistanceKm   float64       `json:"distanceKm"`
	PaymentID    string        `json:"paymentId,omitempty"`

	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}
