package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the lifecycle status shared by individual and
// corporate bookings.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ParseBookingStatus validates a requested target status. Pending is the
// creation state only and is not a valid transition target.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return BookingStatus(s), true
	}
	return "", false
}

// Booking represents an individual smash session booking.
type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReferenceCode string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference_code"`
	Name          string        `gorm:"type:varchar(100);not null" json:"name"`
	Email         string        `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone         string        `gorm:"type:varchar(30)" json:"phone"`
	PackageName   string        `gorm:"type:varchar(50);not null" json:"package_name"`
	PartySize     int           `gorm:"not null;default:1" json:"party_size"`
	PreferredDate time.Time     `gorm:"not null;index" json:"preferred_date"`
	TimeSlot      string        `gorm:"type:varchar(20)" json:"time_slot"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ConfirmedAt   *time.Time    `json:"confirmed_at"`
	CancelledAt   *time.Time    `json:"cancelled_at"`
	CompletedAt   *time.Time    `json:"completed_at"`
	AdminNotes    string        `gorm:"type:text" json:"admin_notes"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// Confirm moves the booking to confirmed. ConfirmedAt is write-once: it keeps
// the instant of the first confirmation across repeated calls. Transitions
// are allowed from any state; only the timestamps are protected.
func (b *Booking) Confirm(now time.Time) {
	b.Status = BookingStatusConfirmed
	if b.ConfirmedAt == nil {
		b.ConfirmedAt = &now
	}
}

// Cancel moves the booking to cancelled. A non-empty reason is appended to
// AdminNotes on its own line, preserving whatever was there before.
func (b *Booking) Cancel(now time.Time, reason string) {
	b.Status = BookingStatusCancelled
	if b.CancelledAt == nil {
		b.CancelledAt = &now
	}
	b.AdminNotes = appendCancelReason(b.AdminNotes, reason)
}

// Complete moves the booking to completed. CompletedAt is write-once.
func (b *Booking) Complete(now time.Time) {
	b.Status = BookingStatusCompleted
	if b.CompletedAt == nil {
		b.CompletedAt = &now
	}
}

// ApplyStatus dispatches a parsed target status to the matching transition.
func (b *Booking) ApplyStatus(status BookingStatus, now time.Time, reason string) {
	switch status {
	case BookingStatusConfirmed:
		b.Confirm(now)
	case BookingStatusCancelled:
		b.Cancel(now, reason)
	case BookingStatusCompleted:
		b.Complete(now)
	}
}

func appendCancelReason(notes, reason string) string {
	if reason == "" {
		return notes
	}
	line := "Cancelled: " + reason
	if notes == "" {
		return line
	}
	return notes + "\n" + line
}
