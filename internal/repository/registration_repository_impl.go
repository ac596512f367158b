package repository

import (
	"context"
	"errors"

	"smashlabs-backend/internal/domain/entity"
	domainRepo "smashlabs-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) domainRepo.RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error) {
	var registration entity.Registration
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) FindByEmail(ctx context.Context, email string) (*entity.Registration, error) {
	var registration entity.Registration
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&registration).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &registration, nil
}

func (r *registrationRepository) FindAll(ctx context.Context, status entity.RegistrationStatus) ([]entity.Registration, error) {
	var registrations []entity.Registration
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&registrations).Error; err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) Save(ctx context.Context, registration *entity.Registration) error {
	return r.db.WithContext(ctx).Save(registration).Error
}

func (r *registrationRepository) CountByStatus(ctx context.Context) (map[entity.RegistrationStatus]int64, error) {
	return countByStatus[entity.RegistrationStatus](r.db.WithContext(ctx), &entity.Registration{})
}
