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
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrDateInPast         = errors.New("preferred date must be in the future")
	ErrInvalidStatus      = errors.New("invalid target status")
	ErrReferenceExhausted = errors.New("could not allocate a unique reference code")
)

// refcodeAttempts bounds the regenerate-and-retry loop on a reference code
// collision. The timestamp component makes a second collision within the
// same request practically impossible, so 3 is generous.
const refcodeAttempts = 3

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetByReference(ctx context.Context, reference string) (*dto.BookingResponse, error)
	ListBookings(ctx context.Context, status string) (*dto.BookingListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.BookingResponse, error)
}

type bookingUsecase struct {
	log         *logrus.Logger
	bookingRepo repository.BookingRepository
	notifier    service.Notifier
	now         func() time.Time
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	notifier service.Notifier,
) BookingUsecase {
	return &bookingUsecase{
		log:         log,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		now:         time.Now,
	}
}

// CreateBooking validates the request, allocates a reference code and
// persists the booking in pending state.
//
// The preferred date must be strictly in the future; this is checked before
// any repository call. A duplicate-key error on the reference code triggers
// a bounded regenerate-and-retry.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if !req.PreferredDate.After(u.now()) {
		return nil, ErrDateInPast
	}

	booking := &entity.Booking{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         strings.TrimSpace(req.Phone),
		PackageName:   req.PackageName,
		PartySize:     req.PartySize,
		PreferredDate: req.PreferredDate,
		TimeSlot:      req.TimeSlot,
		Status:        entity.BookingStatusPending,
	}

	err := createWithReference(ctx, u.log, refcode.PrefixBooking, &booking.ReferenceCode, func(ctx context.Context) error {
		return u.bookingRepo.Create(ctx, booking)
	})
	if err != nil {
		u.log.Warnf("Failed to create booking for %s: %+v", booking.Email, err)
		return nil, err
	}

	u.notifier.SendBookingTransition(booking, service.TransitionCreated)
	u.log.Infof("Booking created: id=%s, code=%s, package=%s", booking.ID, booking.ReferenceCode, booking.PackageName)
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) GetByReference(ctx context.Context, reference string) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByReference(ctx, strings.ToUpper(strings.TrimSpace(reference)))
	if err != nil {
		u.log.Warnf("Failed to find booking by reference %s: %+v", reference, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) ListBookings(ctx context.Context, status string) (*dto.BookingListResponse, error) {
	filter, ok := parseStatusFilter(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	bookings, err := u.bookingRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// UpdateStatus applies a lifecycle transition and persists it synchronously.
// The transition email is best-effort and can never fail the update.
func (u *bookingUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.BookingResponse, error) {
	status, ok := entity.ParseBookingStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	booking, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	booking.ApplyStatus(status, u.now(), req.Reason)
	if err := u.bookingRepo.Save(ctx, booking); err != nil {
		u.log.Warnf("Failed to save booking %s: %+v", id, err)
		return nil, err
	}

	u.notifier.SendBookingTransition(booking, transitionKind(status))
	u.log.Infof("Booking %s transitioned to %s", booking.ReferenceCode, status)
	return converter.BookingToResponse(booking), nil
}

// createWithReference assigns a reference code only when one is absent, then
// runs the insert. On a duplicate-key error the code is regenerated and the
// insert retried, bounded by refcodeAttempts. Any other error propagates.
func createWithReference(ctx context.Context, log *logrus.Logger, prefix string, code *string, insert func(context.Context) error) error {
	for attempt := 0; attempt < refcodeAttempts; attempt++ {
		if *code == "" {
			*code = refcode.Generate(prefix)
		}
		err := insert(ctx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		log.Warnf("Reference code collision on %s, regenerating (attempt %d)", *code, attempt+1)
		*code = ""
	}
	return ErrReferenceExhausted
}

// parseStatusFilter accepts an empty filter or any of the four lifecycle
// statuses, including pending (which is not a valid transition target).
func parseStatusFilter(s string) (entity.BookingStatus, bool) {
	if s == "" {
		return "", true
	}
	switch entity.BookingStatus(s) {
	case entity.BookingStatusPending, entity.BookingStatusConfirmed,
		entity.BookingStatusCancelled, entity.BookingStatusCompleted:
		return entity.BookingStatus(s), true
	}
	return "", false
}

// transitionKind maps a target status to the notification it triggers.
func transitionKind(status entity.BookingStatus) service.TransitionKind {
	switch status {
	case entity.BookingStatusConfirmed:
		return service.TransitionConfirmed
	case entity.BookingStatusCancelled:
		return service.TransitionCancelled
	case entity.BookingStatusCompleted:
		return service.TransitionCompleted
	}
	return service.TransitionCreated
}
