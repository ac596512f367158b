package repository

import (
	"context"
	"time"

	"smashlabs-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindAll(ctx context.Context, status entity.BookingStatus) ([]entity.Booking, error)
	Save(ctx context.Context, booking *entity.Booking) error
	CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error)
	FindUpcomingConfirmed(ctx context.Context, from time.Time, limit int) ([]entity.Booking, error)
}
