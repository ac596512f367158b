package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberStatus is the lifecycle status of a newsletter subscriber.
type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberStatusBounced      SubscriberStatus = "bounced"
	SubscriberStatusSpam         SubscriberStatus = "spam"
)

// Subscriber represents a newsletter subscription keyed by email.
type Subscriber struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email          string           `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Status         SubscriberStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	SubscribedAt   time.Time        `gorm:"not null" json:"subscribed_at"`
	UnsubscribedAt *time.Time       `json:"unsubscribed_at"`
	CreatedAt      time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Subscriber) TableName() string {
	return "subscribers"
}

func (s *Subscriber) IsActive() bool {
	return s.Status == SubscriberStatusActive
}

// Unsubscribe marks the subscriber unsubscribed. UnsubscribedAt is write-once
// so repeated unsubscribe requests stay idempotent.
func (s *Subscriber) Unsubscribe(now time.Time) {
	s.Status = SubscriberStatusUnsubscribed
	if s.UnsubscribedAt == nil {
		s.UnsubscribedAt = &now
	}
}

// Reactivate restores an unsubscribed (or bounced) subscriber. The original
// SubscribedAt is kept; UnsubscribedAt stays as a historical marker.
func (s *Subscriber) Reactivate() {
	s.Status = SubscriberStatusActive
}
