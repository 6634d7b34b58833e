package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/example/shipra/internal/models"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// UserStore persists rider identities.
type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	IncrementTrips(ctx context.Context, id uuid.UUID) error
}

// LocationStore reads the hub registry.
type LocationStore interface {
	List(ctx context.Context) ([]models.Location, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
}

// BirdStore reads the vehicle registry.
type BirdStore interface {
	ListByStatus(ctx context.Context, status string) ([]models.Bird, error)
}

// BookingStore persists bookings. Bookings are never deleted.
type BookingStore interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	Save(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
}

// CodeStore holds outstanding one-time codes, at most one per phone.
type CodeStore interface {
	Upsert(ctx context.Context, phone, codeHash string, expiresAt time.Time) error
	Find(ctx context.Context, phone string) (*models.OneTimeCode, error)
	Delete(ctx context.Context, phone string) error
}

// Store bundles the repositories handlers depend on. Swappable between the
// gorm-backed implementation and the in-memory one used in tests.
type Store struct {
	Users     UserStore
	Locations LocationStore
	Birds     BirdStore
	Bookings  BookingStore
	Codes     CodeStore
}
