package repository

import (
	"context"
	"errors"
	"time"

	"smashlabs-backend/internal/domain/entity"
	domainRepo "smashlabs-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type corporateBookingRepository struct {
	db *gorm.DB
}

func NewCorporateBookingRepository(db *gorm.DB) domainRepo.CorporateBookingRepository {
	return &corporateBookingRepository{db: db}
}

func (r *corporateBookingRepository) Create(ctx context.Context, booking *entity.CorporateBooking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *corporateBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CorporateBooking, error) {
	var booking entity.CorporateBooking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *corporateBookingRepository) FindByReference(ctx context.Context, reference string) (*entity.CorporateBooking, error) {
	var booking entity.CorporateBooking
	err := r.db.WithContext(ctx).Where("reference_code = ?", reference).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *corporateBookingRepository) FindAll(ctx context.Context, status entity.BookingStatus) ([]entity.CorporateBooking, error) {
	var bookings []entity.CorporateBooking
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *corporateBookingRepository) Save(ctx context.Context, booking *entity.CorporateBooking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *corporateBookingRepository) CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error) {
	return countByStatus[entity.BookingStatus](r.db.WithContext(ctx), &entity.CorporateBooking{})
}

func (r *corporateBookingRepository) FindActiveDuplicate(ctx context.Context, companyName, email string, preferredDate time.Time) (*entity.CorporateBooking, error) {
	var booking entity.CorporateBooking
	err := r.db.WithContext(ctx).
		Where("company_name = ? AND email = ? AND preferred_date = ? AND status != ?",
			companyName, email, preferredDate, entity.BookingStatusCancelled).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}
