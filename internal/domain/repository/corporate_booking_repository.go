package repository

import (
	"context"
	"time"

	"smashlabs-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type CorporateBookingRepository interface {
	Create(ctx context.Context, booking *entity.CorporateBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CorporateBooking, error)
	FindByReference(ctx context.Context, reference string) (*entity.CorporateBooking, error)
	FindAll(ctx context.Context, status entity.BookingStatus) ([]entity.CorporateBooking, error)
	Save(ctx context.Context, booking *entity.CorporateBooking) error
	CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error)
	// FindActiveDuplicate returns the first non-cancelled corporate booking
	// matching the duplicate-submission key, or nil.
	FindActiveDuplicate(ctx context.Context, companyName, email string, preferredDate time.Time) (*entity.CorporateBooking, error)
}
