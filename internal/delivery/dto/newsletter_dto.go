package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SubscriberResponse struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	// Reactivated is true when an unsubscribed email subscribed again and the
	// existing row was revived instead of a new one being created.
	Reactivated bool `json:"reactivated,omitempty"`
}
