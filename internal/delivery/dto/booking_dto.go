package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	Name          string    `json:"name" validate:"required,min=2,max=100"`
	Email         string    `json:"email" validate:"required,email"`
	Phone         string    `json:"phone" validate:"omitempty,min=7,max=30"`
	PackageName   string    `json:"package_name" validate:"required,max=50"`
	PartySize     int       `json:"party_size" validate:"required,min=1,max=30"`
	PreferredDate time.Time `json:"preferred_date" validate:"required"`
	TimeSlot      string    `json:"time_slot" validate:"omitempty,max=20"`
}

// UpdateStatusRequest carries a lifecycle transition target. Reason is only
// consulted for cancellations.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type BookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	ReferenceCode string     `json:"reference_code"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone,omitempty"`
	PackageName   string     `json:"package_name"`
	PartySize     int        `json:"party_size"`
	PreferredDate time.Time  `json:"preferred_date"`
	TimeSlot      string     `json:"time_slot,omitempty"`
	Status        string     `json:"status"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	AdminNotes    string     `json:"admin_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
