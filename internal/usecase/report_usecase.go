package usecase

import (
	"context"
	"time"

	"smashlabs-backend/internal/converter"
	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
	"smashlabs-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const upcomingLimit = 10

// SummaryCache is the slice of the redis report cache the usecase needs;
// satisfied by *service.ReportCache.
type SummaryCache interface {
	GetSummary(ctx context.Context, dest interface{}) bool
	SetSummary(ctx context.Context, value interface{})
}

type ReportUsecase interface {
	Summary(ctx context.Context) (*dto.SummaryReport, error)
}

type reportUsecase struct {
	log           *logrus.Logger
	bookingRepo   repository.BookingRepository
	corporateRepo repository.CorporateBookingRepository
	regRepo       repository.RegistrationRepository
	subRepo       repository.SubscriberRepository
	ticketRepo    repository.ContactTicketRepository
	cache         SummaryCache
	now           func() time.Time
}

func NewReportUsecase(
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	corporateRepo repository.CorporateBookingRepository,
	regRepo repository.RegistrationRepository,
	subRepo repository.SubscriberRepository,
	ticketRepo repository.ContactTicketRepository,
	cache SummaryCache,
) ReportUsecase {
	return &reportUsecase{
		log:           log,
		bookingRepo:   bookingRepo,
		corporateRepo: corporateRepo,
		regRepo:       regRepo,
		subRepo:       subRepo,
		ticketRepo:    ticketRepo,
		cache:         cache,
		now:           time.Now,
	}
}

// Summary aggregates status counts per entity family plus the next confirmed
// sessions. The result is served from redis when fresh.
func (u *reportUsecase) Summary(ctx context.Context) (*dto.SummaryReport, error) {
	var cached dto.SummaryReport
	if u.cache.GetSummary(ctx, &cached) {
		return &cached, nil
	}

	bookingCounts, err := u.bookingRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count bookings: %+v", err)
		return nil, err
	}
	corporateCounts, err := u.corporateRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count corporate bookings: %+v", err)
		return nil, err
	}
	regCounts, err := u.regRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count registrations: %+v", err)
		return nil, err
	}
	subCounts, err := u.subRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count subscribers: %+v", err)
		return nil, err
	}
	ticketCounts, err := u.ticketRepo.CountByStatus(ctx)
	if err != nil {
		u.log.Warnf("Failed to count contact tickets: %+v", err)
		return nil, err
	}
	upcoming, err := u.bookingRepo.FindUpcomingConfirmed(ctx, u.now(), upcomingLimit)
	if err != nil {
		u.log.Warnf("Failed to load upcoming bookings: %+v", err)
		return nil, err
	}

	report := &dto.SummaryReport{
		Bookings:          stringKeys(bookingCounts),
		CorporateBookings: stringKeys(corporateCounts),
		Registrations:     stringKeys(regCounts),
		Subscribers:       stringKeys(subCounts),
		ContactTickets:    stringKeys(ticketCounts),
		OpenTickets:       ticketCounts[entity.TicketStatusOpen],
		UpcomingConfirmed: converter.BookingsToResponses(upcoming),
	}

	u.cache.SetSummary(ctx, report)
	return report, nil
}

func stringKeys[S ~string](counts map[S]int64) map[string]int64 {
	out := make(map[string]int64, len(counts))
	for status, n := range counts {
		out[string(status)] = n
	}
	return out
}
