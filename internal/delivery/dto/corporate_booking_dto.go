package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCorporateBookingRequest struct {
	CompanyName   string    `json:"company_name" validate:"required,min=2,max=150"`
	ContactPerson string    `json:"contact_person" validate:"required,min=2,max=100"`
	Email         string    `json:"email" validate:"required,email"`
	Phone         string    `json:"phone" validate:"omitempty,min=7,max=30"`
	TeamSize      int       `json:"team_size" validate:"required,min=2,max=500"`
	EventType     string    `json:"event_type" validate:"omitempty,max=50"`
	PreferredDate time.Time `json:"preferred_date" validate:"required"`
	Budget        string    `json:"budget" validate:"omitempty,max=50"`
	Message       string    `json:"message" validate:"omitempty,max=2000"`
}

type CorporateBookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReferenceCode string     `json:"reference_code"`
	CompanyName   string     `json:"company_name"`
	ContactPerson string     `json:"contact_person"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	TeamSize      int        `json:"team_size"`
	EventType     string     `json:"event_type,omitempty"`
	PreferredDate time.Time  `json:"preferred_date"`
	Budget        string     `json:"budget,omitempty"`
	Message       string     `json:"message,omitempty"`
	Status        string     `json:"status"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type CorporateBookingListResponse struct {
	Bookings []CorporateBookingResponse `json:"bookings"`
	Total    int                        `json:"total"`
}

// DuplicateBookingResponse is the 409 payload for a repeated corporate
// submission; it points the caller at the booking that already exists.
type DuplicateBookingResponse struct {
	ExistingReferenceCode string `json:"existing_reference_code"`
	ExistingStatus        string `json:"existing_status"`
}
