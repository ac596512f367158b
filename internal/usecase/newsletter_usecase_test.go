package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smashlabs-backend/internal/delivery/dto"
	"smashlabs-backend/internal/domain/entity"
)

func newTestNewsletterUsecase(repo *fakeSubscriberRepo, now time.Time) *newsletterUsecase {
	return &newsletterUsecase{
		log:            testLogger(),
		subscriberRepo: repo,
		now:            fixedClock(now),
	}
}

func TestSubscribeNewEmail(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeSubscriberRepo()
	u := newTestNewsletterUsecase(repo, now)

	resp, err := u.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "News@Example.com"})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if resp.Email != "news@example.com" {
		t.Fatalf("expected lowercased email, got %q", resp.Email)
	}
	if resp.Status != string(entity.SubscriberStatusActive) {
		t.Fatalf("expected active, got %q", resp.Status)
	}
	if !resp.SubscribedAt.Equal(now) {
		t.Fatalf("expected SubscribedAt %v, got %v", now, resp.SubscribedAt)
	}
	if resp.Reactivated {
		t.Fatal("fresh subscription must not report reactivation")
	}
}

func TestSubscribeActiveEmailConflicts(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeSubscriberRepo()
	u := newTestNewsletterUsecase(repo, now)

	if _, err := u.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "news@example.com"}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	_, err := u.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "news@example.com"})
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
	if repo.createCalls != 1 {
		t.Fatalf("conflict must not create a second row, got %d creates", repo.createCalls)
	}
}

func TestResubscribeReactivatesRow(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeSubscriberRepo()
	u := newTestNewsletterUsecase(repo, now)

	if _, err := u.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "news@example.com"}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}
	if _, err := u.Unsubscribe(context.Background(), &dto.UnsubscribeRequest{Email: "news@example.com"}); err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	resp, err := u.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "news@example.com"})
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if !resp.Reactivated {
		t.Fatal("expected reactivation, not a new row")
	}
	if repo.createCalls != 1 {
		t.Fatalf("reactivation must reuse the row, got %d creates", repo.createCalls)
	}
	if resp.UnsubscribedAt == nil {
		t.Fatal("UnsubscribedAt should survive reactivation as history")
	}
}

func TestUnsubscribeIsIdempotentOnTimestamp(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := newFakeSubscriberRepo()
	u := newTestNewsletterUsecase(repo, start)

	if _, err := u.Subscribe(context.Background(), &dto.SubscribeRequest{Email: "news@example.com"}); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	first, err := u.Unsubscribe(context.Background(), &dto.UnsubscribeRequest{Email: "news@example.com"})
	if err != nil {
		t.Fatalf("unsubscribe: %v", err)
	}

	u.now = fixedClock(start.Add(time.Hour))
	second, err := u.Unsubscribe(context.Background(), &dto.UnsubscribeRequest{Email: "news@example.com"})
	if err != nil {
		t.Fatalf("second unsubscribe: %v", err)
	}
	if !second.UnsubscribedAt.Equal(*first.UnsubscribedAt) {
		t.Fatalf("UnsubscribedAt moved: %v -> %v", first.UnsubscribedAt, second.UnsubscribedAt)
	}
}

func TestUnsubscribeUnknownEmail(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	u := newTestNewsletterUsecase(newFakeSubscriberRepo(), now)

	_, err := u.Unsubscribe(context.Background(), &dto.UnsubscribeRequest{Email: "ghost@example.com"})
	if !errors.Is(err, ErrSubscriberNotFound) {
		t.Fatalf("expected ErrSubscriberNotFound, got %v", err)
	}
}
