package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
	"smashlabs-backend/internal/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var bookingRefPattern = regexp.MustCompile(`^SL-[0-9A-Z]+-[0-9A-Z]{8}$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestBookingUsecase(repo *fakeBookingRepo, notifier *fakeNotifier, now time.Time) *bookingUsecase {
	return &bookingUsecase{
		log:         testLogger(),
		bookingRepo: repo,
		notifier:    notifier,
		now:         fixedClock(now),
	}
}

func validBookingRequest(date time.Time) *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		Name:          "Ada Jensen",
		Email:         "Ada@Example.com",
		Phone:         "+3161234567",
		PackageName:   "rage-deluxe",
		PartySize:     2,
		PreferredDate: date,
	}
}

func TestCreateBookingAssignsReferenceCode(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	notifier := &fakeNotifier{}
	u := newTestBookingUsecase(repo, notifier, now)

	resp, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if !bookingRefPattern.MatchString(resp.ReferenceCode) {
		t.Fatalf("reference code %q does not match expected pattern", resp.ReferenceCode)
	}
	if resp.Status != string(entity.BookingStatusPending) {
		t.Fatalf("expected pending, got %q", resp.Status)
	}
	if resp.Email != "ada@example.com" {
		t.Fatalf("expected lowercased email, got %q", resp.Email)
	}
	if len(notifier.bookingKinds) != 1 || notifier.bookingKinds[0] != service.TransitionCreated {
		t.Fatalf("expected one created notification, got %v", notifier.bookingKinds)
	}
}

func TestCreateBookingRejectsPastDateBeforePersistence(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	u := newTestBookingUsecase(repo, &fakeNotifier{}, now)

	tests := []struct {
		name string
		date time.Time
	}{
		{"yesterday", now.AddDate(0, 0, -1)},
		{"exactly now", now},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.CreateBooking(context.Background(), validBookingRequest(tt.date))
			if !errors.Is(err, ErrDateInPast) {
				t.Fatalf("expected ErrDateInPast, got %v", err)
			}
			if repo.createCalls != 0 {
				t.Fatalf("repository touched despite validation failure: %d calls", repo.createCalls)
			}
		})
	}
}

func TestCreateBookingRetriesOnReferenceCollision(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	repo.createErrs = []error{gorm.ErrDuplicatedKey, nil}
	u := newTestBookingUsecase(repo, &fakeNotifier{}, now)

	resp, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if repo.createCalls != 2 {
		t.Fatalf("expected 2 create attempts, got %d", repo.createCalls)
	}
	if !bookingRefPattern.MatchString(resp.ReferenceCode) {
		t.Fatalf("regenerated code %q does not match pattern", resp.ReferenceCode)
	}
}

func TestCreateBookingGivesUpAfterBoundedRetries(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	repo.createErrs = []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey}
	u := newTestBookingUsecase(repo, &fakeNotifier{}, now)

	_, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if !errors.Is(err, ErrReferenceExhausted) {
		t.Fatalf("expected ErrReferenceExhausted, got %v", err)
	}
	if repo.createCalls != refcodeAttempts {
		t.Fatalf("expected %d attempts, got %d", refcodeAttempts, repo.createCalls)
	}
}

func TestCreateBookingPropagatesOtherPersistenceErrors(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	infraErr := errors.New("connection reset")
	repo.createErrs = []error{infraErr}
	notifier := &fakeNotifier{}
	u := newTestBookingUsecase(repo, notifier, now)

	_, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if !errors.Is(err, infraErr) {
		t.Fatalf("expected infra error to propagate unretried, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("non-duplicate errors must not retry, got %d attempts", repo.createCalls)
	}
	if len(notifier.bookingKinds) != 0 {
		t.Fatalf("no notification expected on failed create, got %v", notifier.bookingKinds)
	}
}

func TestUpdateStatusConfirm(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	notifier := &fakeNotifier{}
	u := newTestBookingUsecase(repo, notifier, now)

	created, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	resp, err := u.UpdateStatus(context.Background(), created.ID, &dto.UpdateStatusRequest{Status: "confirmed"})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if resp.Status != string(entity.BookingStatusConfirmed) {
		t.Fatalf("expected confirmed, got %q", resp.Status)
	}
	if resp.ConfirmedAt == nil || !resp.ConfirmedAt.Equal(now) {
		t.Fatalf("expected ConfirmedAt %v, got %v", now, resp.ConfirmedAt)
	}
	if resp.ReferenceCode != created.ReferenceCode {
		t.Fatalf("reference code changed across save: %q -> %q", created.ReferenceCode, resp.ReferenceCode)
	}
	if kinds := notifier.bookingKinds; len(kinds) != 2 || kinds[1] != service.TransitionConfirmed {
		t.Fatalf("expected confirmed notification, got %v", kinds)
	}
}

func TestUpdateStatusCancelWithReason(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	u := newTestBookingUsecase(repo, &fakeNotifier{}, now)

	created, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	resp, err := u.UpdateStatus(context.Background(), created.ID, &dto.UpdateStatusRequest{
		Status: "cancelled",
		Reason: "double booked",
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if resp.AdminNotes != "Cancelled: double booked" {
		t.Fatalf("unexpected admin notes %q", resp.AdminNotes)
	}
	if resp.CancelledAt == nil || resp.CancelledAt.After(time.Now()) {
		t.Fatalf("expected CancelledAt in the past, got %v", resp.CancelledAt)
	}

	// A second cancel keeps the first timestamp and appends nothing new
	// without a reason.
	again, err := u.UpdateStatus(context.Background(), created.ID, &dto.UpdateStatusRequest{Status: "cancelled"})
	if err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if !again.CancelledAt.Equal(*resp.CancelledAt) {
		t.Fatalf("CancelledAt moved on second cancel: %v -> %v", resp.CancelledAt, again.CancelledAt)
	}
	if again.AdminNotes != "Cancelled: double booked" {
		t.Fatalf("admin notes changed on second cancel: %q", again.AdminNotes)
	}
}

func TestUpdateStatusInvalidTarget(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	u := newTestBookingUsecase(repo, &fakeNotifier{}, now)

	created, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	for _, target := range []string{"pending", "deleted", ""} {
		if _, err := u.UpdateStatus(context.Background(), created.ID, &dto.UpdateStatusRequest{Status: target}); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("status %q: expected ErrInvalidStatus, got %v", target, err)
		}
	}
}

func TestUpdateStatusUnknownID(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	u := newTestBookingUsecase(newFakeBookingRepo(), &fakeNotifier{}, now)

	_, err := u.UpdateStatus(context.Background(), uuid.New(), &dto.UpdateStatusRequest{Status: "confirmed"})
	if !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestConfirmThenCompleteOrdersTimestamps(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	u := newTestBookingUsecase(repo, &fakeNotifier{}, start)

	created, err := u.CreateBooking(context.Background(), validBookingRequest(start.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	if _, err := u.UpdateStatus(context.Background(), created.ID, &dto.UpdateStatusRequest{Status: "confirmed"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	u.now = fixedClock(start.Add(2 * time.Hour))
	resp, err := u.UpdateStatus(context.Background(), created.ID, &dto.UpdateStatusRequest{Status: "completed"})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if resp.Status != string(entity.BookingStatusCompleted) {
		t.Fatalf("expected completed, got %q", resp.Status)
	}
	if resp.ConfirmedAt == nil || resp.CompletedAt == nil {
		t.Fatal("expected both timestamps set")
	}
	if resp.ConfirmedAt.After(*resp.CompletedAt) {
		t.Fatalf("ConfirmedAt %v after CompletedAt %v", resp.ConfirmedAt, resp.CompletedAt)
	}
}

func TestGetByReferenceNormalizesInput(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeBookingRepo()
	u := newTestBookingUsecase(repo, &fakeNotifier{}, now)

	created, err := u.CreateBooking(context.Background(), validBookingRequest(now.AddDate(0, 0, 7)))
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	resp, err := u.GetByReference(context.Background(), "  "+created.ReferenceCode+" ")
	if err != nil {
		t.Fatalf("get by reference: %v", err)
	}
	if resp.ID != created.ID {
		t.Fatalf("expected booking %s, got %s", created.ID, resp.ID)
	}

	if _, err := u.GetByReference(context.Background(), "SL-NOPE-00000000"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
