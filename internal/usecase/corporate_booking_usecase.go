package usecase

import (
	"context"
	"fmt"
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

// DuplicateBookingError signals that a non-cancelled corporate booking
// already exists for the same company, email and date. It carries the
// existing booking's reference so the caller can point at it.
type DuplicateBookingError struct {
	ReferenceCode string
	Status        entity.BookingStatus
}

func (e *DuplicateBookingError) Error() string {
	return fmt.Sprintf("corporate booking already exists: %s (%s)", e.ReferenceCode, e.Status)
}

type CorporateBookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateCorporateBookingRequest) (*dto.CorporateBookingResponse, error)
	GetByReference(ctx context.Context, reference string) (*dto.CorporateBookingResponse, error)
	ListBookings(ctx context.Context, status string) (*dto.CorporateBookingListResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.CorporateBookingResponse, error)
}

type corporateBookingUsecase struct {
	log           *logrus.Logger
	corporateRepo repository.CorporateBookingRepository
	notifier      service.Notifier
	now           func() time.Time
}

func NewCorporateBookingUsecase(
	log *logrus.Logger,
	corporateRepo repository.CorporateBookingRepository,
	notifier service.Notifier,
) CorporateBookingUsecase {
	return &corporateBookingUsecase{
		log:           log,
		corporateRepo: corporateRepo,
		notifier:      notifier,
		now:           time.Now,
	}
}

// CreateBooking runs the duplicate-submission guard before persisting: a
// non-cancelled booking with the same company, email and preferred date
// rejects the request. The check-then-insert pair is not transactional; two
// concurrent identical submissions can both pass, which is accepted at this
// request volume.
func (u *corporateBookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateCorporateBookingRequest) (*dto.CorporateBookingResponse, error) {
	if !req.PreferredDate.After(u.now()) {
		return nil, ErrDateInPast
	}

	companyName := strings.TrimSpace(req.CompanyName)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := u.corporateRepo.FindActiveDuplicate(ctx, companyName, email, req.PreferredDate)
	if err != nil {
		u.log.Warnf("Failed duplicate check for %s/%s: %+v", companyName, email, err)
		return nil, err
	}
	if existing != nil {
		return nil, &DuplicateBookingError{
			ReferenceCode: existing.ReferenceCode,
			Status:        existing.Status,
		}
	}

	booking := &entity.CorporateBooking{
		CompanyName:   companyName,
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Email:         email,
		Phone:         strings.TrimSpace(req.Phone),
		TeamSize:      req.TeamSize,
		EventType:     req.EventType,
		PreferredDate: req.PreferredDate,
		Budget:        req.Budget,
		Message:       req.Message,
		Status:        entity.BookingStatusPending,
	}

	err = createWithReference(ctx, u.log, refcode.PrefixCorporate, &booking.ReferenceCode, func(ctx context.Context) error {
		return u.corporateRepo.Create(ctx, booking)
	})
	if err != nil {
		u.log.Warnf("Failed to create corporate booking for %s: %+v", companyName, err)
		return nil, err
	}

	u.notifier.SendCorporateTransition(booking, service.TransitionCreated)
	u.log.Infof("Corporate booking created: id=%s, code=%s, company=%s", booking.ID, booking.ReferenceCode, companyName)
	return converter.CorporateBookingToResponse(booking), nil
}

func (u *corporateBookingUsecase) GetByReference(ctx context.Context, reference string) (*dto.CorporateBookingResponse, error) {
	booking, err := u.corporateRepo.FindByReference(ctx, strings.ToUpper(strings.TrimSpace(reference)))
	if err != nil {
		u.log.Warnf("Failed to find corporate booking by reference %s: %+v", reference, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}
	return converter.CorporateBookingToResponse(booking), nil
}

func (u *corporateBookingUsecase) ListBookings(ctx context.Context, status string) (*dto.CorporateBookingListResponse, error) {
	filter, ok := parseStatusFilter(status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	bookings, err := u.corporateRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to list corporate bookings: %+v", err)
		return nil, err
	}

	return &dto.CorporateBookingListResponse{
		Bookings: converter.CorporateBookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *corporateBookingUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.CorporateBookingResponse, error) {
	status, ok := entity.ParseBookingStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	booking, err := u.corporateRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find corporate booking %s: %+v", id, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	booking.ApplyStatus(status, u.now(), req.Reason)
	if err := u.corporateRepo.Save(ctx, booking); err != nil {
		u.log.Warnf("Failed to save corporate booking %s: %+v", id, err)
		return nil, err
	}

	u.notifier.SendCorporateTransition(booking, transitionKind(status))
	u.log.Infof("Corporate booking %s transitioned to %s", booking.ReferenceCode, status)
	return converter.CorporateBookingToResponse(booking), nil
}
