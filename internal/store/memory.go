package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/example/shipra/internal/models"
)

// MemoryStore is a Store backed by in-process maps. Used in tests and when
// running without a database. Locations and birds have no write path on the
// HTTP surface, so seeding goes through AddLocation/AddBird.
type MemoryStore struct {
	Store
	locations *memLocationStore
	birds     *memBirdStore
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	locations := &memLocationStore{locations: map[uuid.UUID]models.Location{}}
	birds := &memBirdStore{birds: map[uuid.UUID]models.Bird{}}
	return &MemoryStore{
		Store: Store{
			Users:     &memUserStore{users: map[uuid.UUID]models.User{}},
			Locations: locations,
			Birds:     birds,
			Bookings:  &memBookingStore{bookings: map[uuid.UUID]models.Booking{}},
			Codes:     &memCodeStore{codes: map[string]models.OneTimeCode{}},
		},
		locations: locations,
		birds:     birds,
	}
}

// AddLocation seeds a hub, generating an id when absent.
func (m *MemoryStore) AddLocation(loc models.Location) models.Location {
	return m.locations.add(loc)
}

// AddBird seeds a vehicle, generating an id when absent.
func (m *MemoryStore) AddBird(bird models.Bird) models.Bird {
	return m.birds.add(bird)
}

type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]models.User
}

func (s *memUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *memUserStore) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	return s.findBy(func(u models.User) bool { return u.GoogleID != "" && u.GoogleID == googleID })
}

func (s *memUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findBy(func(u models.User) bool { return u.Email != "" && u.Email == email })
}

func (s *memUserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	return s.findBy(func(u models.User) bool { return u.Phone != "" && u.Phone == phone })
}

func (s *memUserStore) findBy(match func(models.User) bool) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if match(user) {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUserStore) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) Save(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) IncrementTrips(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	user.Trips++
	s.users[id] = user
	return nil
}

type memLocationStore struct {
	mu        sync.Mutex
	locations map[uuid.UUID]models.Location
}

func (s *memLocationStore) List(ctx context.Context) ([]models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Location, 0, len(s.locations))
	for _, loc := range s.locations {
		out = append(out, loc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memLocationStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.locations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &loc, nil
}

func (s *memLocationStore) add(loc models.Location) models.Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	if loc.ID == uuid.Nil {
		loc.ID = uuid.New()
	}
	s.locations[loc.ID] = loc
	return loc
}

type memBirdStore struct {
	mu    sync.Mutex
	birds map[uuid.UUID]models.Bird
}

func (s *memBirdStore) ListByStatus(ctx context.Context, status string) ([]models.Bird, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Bird, 0, len(s.birds))
	for _, bird := range s.birds {
		if status == "" || bird.Status == status {
			out = append(out, bird)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}

func (s *memBirdStore) add(bird models.Bird) models.Bird {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bird.ID == uuid.Nil {
		bird.ID = uuid.New()
	}
	s.birds[bird.ID] = bird
	return bird
}

type memBookingStore struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]models.Booking
}

func (s *memBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &booking, nil
}

func (s *memBookingStore) Save(ctx context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.UpdatedAt = time.Now()
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *memBookingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Booking, 0)
	for _, booking := range s.bookings {
		if booking.UserID == userID {
			out = append(out, booking)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

type memCodeStore struct {
	mu    sync.Mutex
	codes map[string]models.OneTimeCode
}

func (s *memCodeStore) Upsert(ctx context.Context, phone, codeHash string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[phone]
	if !ok {
		code = models.OneTimeCode{Phone: phone}
		code.ID = uuid.New()
		code.CreatedAt = time.Now()
	}
	code.CodeHash = codeHash
	code.ExpiresAt = expiresAt
	code.UpdatedAt = time.Now()
	s.codes[phone] = code
	return nil
}

func (s *memCodeStore) Find(ctx context.Context, phone string) (*models.OneTimeCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[phone]
	if !ok {
		return nil, ErrNotFound
	}
	return &code, nil
}

func (s *memCodeStore) Delete(ctx context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, phone)
	return nil
}
