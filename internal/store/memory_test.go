package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/example/shipra/internal/models"
)

func TestCodeUpsertReplacesOutstandingCode(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	expires := time.Now().Add(10 * time.Minute)

	if err := st.Codes.Upsert(ctx, "9876543210", "hash-one", expires); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := st.Codes.Upsert(ctx, "9876543210", "hash-two", expires); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	code, err := st.Codes.Find(ctx, "9876543210")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if code.CodeHash != "hash-two" {
		t.Fatalf("CodeHash = %q, want replacement hash", code.CodeHash)
	}

	if err := st.Codes.Delete(ctx, "9876543210"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Codes.Find(ctx, "9876543210"); err != ErrNotFound {
		t.Fatalf("Find after delete: err = %v, want ErrNotFound", err)
	}
}

func TestBookingListByUserOrdersByDateDescending(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, offset := range []int{2, 0, 1} {
		b := models.Booking{
			UserID: userID,
			Status: models.BookingCompleted,
			Date:   base.AddDate(0, 0, offset),
		}
		if err := st.Bookings.Create(ctx, &b); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	// A different user's booking must not leak in.
	other := models.Booking{UserID: uuid.New(), Date: base}
	if err := st.Bookings.Create(ctx, &other); err != nil {
		t.Fatalf("Create: %v", err)
	}

	bookings, err := st.Bookings.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("len = %d, want 3", len(bookings))
	}
	for i := 1; i < len(bookings); i++ {
		if bookings[i].Date.After(bookings[i-1].Date) {
			t.Fatalf("bookings not ordered by date descending at index %d", i)
		}
	}
}

func TestUserIncrementTrips(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	user := models.User{Name: "Test Traveler", Phone: "1231231234"}
	if err := st.Users.Create(ctx, &user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := st.Users.IncrementTrips(ctx, user.ID); err != nil {
		t.Fatalf("IncrementTrips: %v", err)
	}
	if err := st.Users.IncrementTrips(ctx, user.ID); err != nil {
		t.Fatalf("IncrementTrips: %v", err)
	}

	got, err := st.Users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Trips != 2 {
		t.Fatalf("Trips = %d, want 2", got.Trips)
	}
}

func TestUserLookupsByProviderIdentity(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	user := models.User{Name: "Shipra Singh", Email: "shipra@example.com", GoogleID: "sub-1"}
	if err := st.Users.Create(ctx, &user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := st.Users.FindByGoogleID(ctx, "sub-1"); err != nil {
		t.Fatalf("FindByGoogleID: %v", err)
	}
	if _, err := st.Users.FindByEmail(ctx, "shipra@example.com"); err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	// Empty identifiers must never match the empty fields of other rows.
	if _, err := st.Users.FindByPhone(ctx, ""); err != ErrNotFound {
		t.Fatalf("FindByPhone(\"\") err = %v, want ErrNotFound", err)
	}
}
