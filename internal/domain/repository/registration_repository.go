package repository

import (
	"context"

	"smashlabs-backend/internal/domain/entity"

	"github.com/google/uuid"
)

type RegistrationRepository interface {
	Create(ctx context.Context, registration *entity.Registration) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Registration, error)
	FindByEmail(ctx context.Context, email string) (*entity.Registration, error)
	FindAll(ctx context.Context, status entity.RegistrationStatus) ([]entity.Registration, error)
	Save(ctx context.Context, registration *entity.Registration) error
	CountByStatus(ctx context.Context) (map[entity.RegistrationStatus]int64, error)
}
