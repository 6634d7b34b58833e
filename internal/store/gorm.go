package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/shipra/internal/models"
)

// NewGormStore returns a Store backed by the given database connection.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:     &gormUserStore{db: db},
		Locations: &gormLocationStore{db: db},
		Birds:     &gormBirdStore{db: db},
		Bookings:  &gormBookingStore{db: db},
		Codes:     &gormCodeStore{db: db},
	}
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *gormUserStore) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *gormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *gormUserStore) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *gormUserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *gormUserStore) Save(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *gormUserStore) IncrementTrips(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Update("trips", gorm.Expr("trips + 1")).Error
}

type gormLocationStore struct {
	db *gorm.DB
}

func (s *gormLocationStore) List(ctx context.Context) ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.WithContext(ctx).Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (s *gormLocationStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	var location models.Location
	if err := s.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &location, nil
}

type gormBirdStore struct {
	db *gorm.DB
}

func (s *gormBirdStore) ListByStatus(ctx context.Context, status string) ([]models.Bird, error) {
	var birds []models.Bird
	query := s.db.WithContext(ctx)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&birds).Error; err != nil {
		return nil, err
	}
	return birds, nil
}

type gormBookingStore struct {
	db *gorm.DB
}

func (s *gormBookingStore) Create(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Create(booking).Error
}

func (s *gormBookingStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &booking, nil
}

func (s *gormBookingStore) Save(ctx context.Context, booking *models.Booking) error {
	return s.db.WithContext(ctx).Save(booking).Error
}

func (s *gormBookingStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

type gormCodeStore struct {
	db *gorm.DB
}

// Upsert enforces the at-most-one-code-per-phone invariant through the
// database's conflict handling rather than application-level locking.
func (s *gormCodeStore) Upsert(ctx context.Context, phone, codeHash string, expiresAt time.Time) error {
	code := models.OneTimeCode{
		Phone:     phone,
		CodeHash:  codeHash,
		ExpiresAt: expiresAt,
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "updated_at"}),
	}).Create(&code).Error
}

func (s *gormCodeStore) Find(ctx context.Context, phone string) (*models.OneTimeCode, error) {
	var code models.OneTimeCode
	if err := s.db.WithContext(ctx).Where("phone = ?", phone).First(&code).Error; err != nil {
		return nil, translateErr(err)
	}
	return &code, nil
}

func (s *gormCodeStore) Delete(ctx context.Context, phone string) error {
	return s.db.WithContext(ctx).Where("phone = ?", phone).Delete(&models.OneTimeCode{}).Error
}
