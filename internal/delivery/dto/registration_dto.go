package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRegistrationRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Interests string `json:"interests" validate:"omitempty,max=500"`
}

type RegistrationResponse struct {
	ID             uuid.UUID  `json:"id"`
	ReferenceCode  string     `json:"reference_code"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Interests      string     `json:"interests,omitempty"`
	Status         string     `json:"status"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type RegistrationListResponse struct {
	Registrations []RegistrationResponse `json:"registrations"`
	Total         int                    `json:"total"`
}
