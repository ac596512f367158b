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
	"smashlabs-backend/internal/service"
	"smashlabs-backend/pkg/refcode"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrEmailRegistered      = errors.New("email is already registered")
)

type RegistrationUsecase interface {
	Register(ctx context.Context, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error)
	ListRegistrations(ctx context.Context, status string) (*dto.RegistrationListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.RegistrationResponse, error)
}

type registrationUsecase struct {
	log              *logrus.Logger
	registrationRepo repository.RegistrationRepository
	notifier         service.Notifier
	now              func() time.Time
}

func NewRegistrationUsecase(
	log *logrus.Logger,
	registrationRepo repository.RegistrationRepository,
	notifier service.Notifier,
) RegistrationUsecase {
	return &registrationUsecase{
		log:              log,
		registrationRepo: registrationRepo,
		notifier:         notifier,
		now:              time.Now,
	}
}

// Register creates a community registration. Emails are unique per
// collection; an existing row for the address rejects the request before
// any insert is attempted.
func (u *registrationUsecase) Register(ctx context.Context, req *dto.CreateRegistrationRequest) (*dto.RegistrationResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.registrationRepo.FindByEmail(ctx, email)
	if err != nil {
		u.log.Warnf("Failed registration lookup for %s: %+v", email, err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailRegistered
	}

	registration := &entity.Registration{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Interests: req.Interests,
		Status:    entity.RegistrationStatusActive,
	}

	err = createWithReference(ctx, u.log, refcode.PrefixRegistration, &registration.ReferenceCode, func(ctx context.Context) error {
		return u.registrationRepo.Create(ctx, registration)
	})
	if err != nil {
		u.log.Warnf("Failed to create registration for %s: %+v", email, err)
		return nil, err
	}

	u.notifier.SendRegistrationWelcome(registration)
	u.log.Infof("Registration created: id=%s, code=%s", registration.ID, registration.ReferenceCode)
	return converter.RegistrationToResponse(registration), nil
}

func (u *registrationUsecase) ListRegistrations(ctx context.Context, status string) (*dto.RegistrationListResponse, error) {
	var filter entity.RegistrationStatus
	if status != "" {
		parsed, ok := entity.ParseRegistrationStatus(status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		filter = parsed
	}

	registrations, err := u.registrationRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list registrations: %+v", err)
		return nil, err
	}

	return &dto.RegistrationListResponse{
		Registrations: converter.RegistrationsToResponses(registrations),
		Total:         len(registrations),
	}, nil
}

func (u *registrationUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.RegistrationResponse, error) {
	parsed, ok := entity.ParseRegistrationStatus(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	registration, err := u.registrationRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find registration %s: %+v", id, err)
		return nil, err
	}
	if registration == nil {
		return nil, ErrRegistrationNotFound
	}

	registration.SetStatus(parsed, u.now())
	if err := u.registrationRepo.Save(ctx, registration); err != nil {
		u.log.Warnf("Failed to save registration %s: %+v", id, err)
		return nil, err
	}

	u.log.Infof("Registration %s transitioned to %s", registration.ReferenceCode, parsed)
	return converter.RegistrationToResponse(registration), nil
}
