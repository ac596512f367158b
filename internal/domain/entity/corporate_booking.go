package entity

import (
	"time"

	"github.com/google/uuid"
)

// CorporateBooking represents a corporate team event booking. It shares the
// lifecycle model of Booking and adds company fields plus the duplicate
// submission guard key (company + email + preferred date).
type CorporateBooking struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReferenceCode string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference_code"`
	CompanyName   string        `gorm:"type:varchar(150);not null;index" json:"company_name"`
	ContactPerson string        `gorm:"type:varchar(100);not null" json:"contact_person"`
	Email         string        `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone         string        `gorm:"type:varchar(30)" json:"phone"`
	TeamSize      int           `gorm:"not null" json:"team_size"`
	EventType     string        `gorm:"type:varchar(50)" json:"event_type"`
	PreferredDate time.Time     `gorm:"not null;index" json:"preferred_date"`
	Budget        string        `gorm:"type:varchar(50)" json:"budget"`
	Message       string        `gorm:"type:text" json:"message"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ConfirmedAt   *time.Time    `json:"confirmed_at"`
	CancelledAt   *time.Time    `json:"cancelled_at"`
	CompletedAt   *time.Time    `json:"completed_at"`
	AdminNotes    string        `gorm:"type:text" json:"admin_notes"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CorporateBooking) TableName() string {
	return "corporate_bookings"
}

func (cb *CorporateBooking) IsCancelled() bool {
	return cb.Status == BookingStatusCancelled
}

// Confirm, Cancel and Complete follow the same write-once timestamp rules as
// Booking.

func (cb *CorporateBooking) Confirm(now time.Time) {
	cb.Status = BookingStatusConfirmed
	if cb.ConfirmedAt == nil {
		cb.ConfirmedAt = &now
	}
}

func (cb *CorporateBooking) Cancel(now time.Time, reason string) {
	cb.Status = BookingStatusCancelled
	if cb.CancelledAt == nil {
		cb.CancelledAt = &now
	}
	cb.AdminNotes = appendCancelReason(cb.AdminNotes, reason)
}

func (cb *CorporateBooking) Complete(now time.Time) {
	cb.Status = BookingStatusCompleted
	if cb.CompletedAt == nil {
		cb.CompletedAt = &now
	}
}

func (cb *CorporateBooking) ApplyStatus(status BookingStatus, now time.Time, reason string) {
	switch status {
	case BookingStatusConfirmed:
		cb.Confirm(now)
	case BookingStatusCancelled:
		cb.Cancel(now, reason)
	case BookingStatusCompleted:
		cb.Complete(now)
	}
}
