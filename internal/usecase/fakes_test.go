package usecase

import (
	"context"
	"io"
	"time"

	"smashlabs-backend/internal/domain/entity"
	"smashlabs-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakeBookingRepo struct {
	bookings    map[uuid.UUID]*entity.Booking
	createCalls int
	createErrs  []error // popped per Create call; nil means success
	saveErr     error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	f.createCalls++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			return err
		}
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.ReferenceCode == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, status entity.BookingStatus) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range f.bookings {
		if status == "" || b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Save(ctx context.Context, booking *entity.Booking) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error) {
	counts := make(map[entity.BookingStatus]int64)
	for _, b := range f.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (f *fakeBookingRepo) FindUpcomingConfirmed(ctx context.Context, from time.Time, limit int) ([]entity.Booking, error) {
	var out []entity.Booking
	for _, b := range f.bookings {
		if b.Status == entity.BookingStatusConfirmed && !b.PreferredDate.Before(from) {
			out = append(out, *b)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCorporateRepo struct {
	bookings    map[uuid.UUID]*entity.CorporateBooking
	createCalls int
}

func newFakeCorporateRepo() *fakeCorporateRepo {
	return &fakeCorporateRepo{bookings: make(map[uuid.UUID]*entity.CorporateBooking)}
}

func (f *fakeCorporateRepo) Create(ctx context.Context, booking *entity.CorporateBooking) error {
	f.createCalls++
	booking.ID = uuid.New()
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeCorporateRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.CorporateBooking, error) {
	return f.bookings[id], nil
}

func (f *fakeCorporateRepo) FindByReference(ctx context.Context, reference string) (*entity.CorporateBooking, error) {
	for _, b := range f.bookings {
		if b.ReferenceCode == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeCorporateRepo) FindAll(ctx context.Context, status entity.BookingStatus) ([]entity.CorporateBooking, error) {
	var out []entity.CorporateBooking
	for _, b := range f.bookings {
		if status == "" || b.Status == status {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeCorporateRepo) Save(ctx context.Context, booking *entity.CorporateBooking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeCorporateRepo) CountByStatus(ctx context.Context) (map[entity.BookingStatus]int64, error) {
	counts := make(map[entity.BookingStatus]int64)
	for _, b := range f.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (f *fakeCorporateRepo) FindActiveDuplicate(ctx context.Context, companyName, email string, preferredDate time.Time) (*entity.CorporateBooking, error) {
	for _, b := range f.bookings {
		if b.CompanyName == companyName && b.Email == email && b.PreferredDate.Equal(preferredDate) && !b.IsCancelled() {
			return b, nil
		}
	}
	return nil, nil
}

type fakeSubscriberRepo struct {
	subscribers map[string]*entity.Subscriber
	createCalls int
}

func newFakeSubscriberRepo() *fakeSubscriberRepo {
	return &fakeSubscriberRepo{subscribers: make(map[string]*entity.Subscriber)}
}

func (f *fakeSubscriberRepo) Create(ctx context.Context, subscriber *entity.Subscriber) error {
	f.createCalls++
	subscriber.ID = uuid.New()
	f.subscribers[subscriber.Email] = subscriber
	return nil
}

func (f *fakeSubscriberRepo) FindByEmail(ctx context.Context, email string) (*entity.Subscriber, error) {
	return f.subscribers[email], nil
}

func (f *fakeSubscriberRepo) Save(ctx context.Context, subscriber *entity.Subscriber) error {
	f.subscribers[subscriber.Email] = subscriber
	return nil
}

func (f *fakeSubscriberRepo) CountByStatus(ctx context.Context) (map[entity.SubscriberStatus]int64, error) {
	counts := make(map[entity.SubscriberStatus]int64)
	for _, s := range f.subscribers {
		counts[s.Status]++
	}
	return counts, nil
}

// fakeNotifier records every notification. The Notifier contract has no
// error return, which is what guarantees a failed send can never fail a
// transition.
type fakeNotifier struct {
	bookingKinds   []service.TransitionKind
	corporateKinds []service.TransitionKind
	welcomes       int
	acks           int
}

func (f *fakeNotifier) SendBookingTransition(_ *entity.Booking, kind service.TransitionKind) {
	f.bookingKinds = append(f.bookingKinds, kind)
}

func (f *fakeNotifier) SendCorporateTransition(_ *entity.CorporateBooking, kind service.TransitionKind) {
	f.corporateKinds = append(f.corporateKinds, kind)
}

func (f *fakeNotifier) SendRegistrationWelcome(_ *entity.Registration) {
	f.welcomes++
}

func (f *fakeNotifier) SendContactAck(_ *entity.ContactTicket) {
	f.acks++
}
