package repository

import (
	"context"
	"errors"

	"smashlabs-backend/internal/domain/entity"
	domainRepo "smashlabs-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type subscriberRepository struct {
	db *gorm.DB
}

func NewSubscriberRepository(db *gorm.DB) domainRepo.SubscriberRepository {
	return &subscriberRepository{db: db}
}

func (r *subscriberRepository) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	return r.db.WithContext(ctx).Create(subscriber).Error
}

func (r *subscriberRepository) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	var subscriber entity.Subscriber
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&subscriber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscriber, nil
}

func (r *subscriberRepository) Save(ctx context.Context, subscriber *entity.Subscriber) error {
	return r.db.WithContext(ctx).Save(subscriber).Error
}

func (r *subscriberRepository) CountByStatus(ctx context.Context) (map[entity.SubscriberStatus]int64, error) {
	return countByStatus[entity.SubscriberStatus](r.db.WithContext(ctx), &entity.Subscriber{})
}
