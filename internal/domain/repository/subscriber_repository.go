package repository

import (
	"context"

	"smashlabs-backend/internal/domain/entity"
)

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *entity.Subscriber) error
	FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error)
	Save(ctx context.Context, subscriber *entity.Subscriber) error
	CountByStatus(ctx context.Context) (map[entity.SubscriberStatus]int64, error)
}
