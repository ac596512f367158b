package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"smashlabs-backend/internal/converter"
	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
	"smashlabs-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAlreadySubscribed  = errors.New("email is already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

type NewsletterUsecase interface {
	Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscriberResponse, error)
	Unsubscribe(ctx context.Context, req *dto.UnsubscribeRequest) (*dto.SubscriberResponse, error)
}

type newsletterUsecase struct {
	log            *logrus.Logger
	subscriberRepo repository.SubscriberRepository
	now            func() time.Time
}

func NewNewsletterUsecase(log *logrus.Logger, subscriberRepo repository.SubscriberRepository) NewsletterUsecase {
	return &newsletterUsecase{
		log:            log,
		subscriberRepo: subscriberRepo,
		now:            time.Now,
	}
}

// Subscribe adds an email to the newsletter. An unsubscribed (or bounced)
// row for the same address is reactivated instead of inserting a duplicate;
// an active row is a conflict.
func (u *newsletterUsecase) Subscribe(ctx context.Context, req *dto.SubscribeRequest) (*dto.SubscriberResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.subscriberRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed subscriber lookup for %s: %+v", email, err)
		return nil, err
	}

	if existing != nil {
		if existing.IsActive() {
			return nil, ErrAlreadySubscribed
		}
		existing.Reactivate()
		if err := u.subscriberRepo.Save(ctx, existing); err != nil {
			u.log.Warnf("Failed to reactivate subscriber %s: %+v", email, err)
			return nil, err
		}
		u.log.Infof("Subscriber reactivated: %s", email)
		return converter.SubscriberToResponse(existing, true), nil
	}

	subscriber := &entity.Subscriber{
		Email:        email,
		Status:       entity.SubscriberStatusActive,
		SubscribedAt: u.now(),
	}
	if err := u.subscriberRepo.Create(ctx, subscriber); err != nil {
		u.log.Warnf("Failed to create subscriber %s: %+v", email, err)
		return nil, err
	}

	u.log.Infof("Subscriber created: %s", email)
	return converter.SubscriberToResponse(subscriber, false), nil
}

// Unsubscribe marks the address unsubscribed; repeating the request is a
// no-op on the timestamp.
func (u *newsletterUsecase) Unsubscribe(ctx context.Context, req *dto.UnsubscribeRequest) (*dto.SubscriberResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	subscriber, err := u.subscriberRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed subscriber lookup for %s: %+v", email, err)
		return nil, err
	}
	if subscriber == nil {
		return nil, ErrSubscriberNotFound
	}

	subscriber.Unsubscribe(u.now())
	if err := u.subscriberRepo.Save(ctx, subscriber); err != nil {
		u.log.Warnf("Failed to save subscriber %s: %+v", email, err)
		return nil, err
	}

	u.log.Infof("Subscriber unsubscribed: %s", email)
	return converter.SubscriberToResponse(subscriber, false), nil
}
