package entity

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus is the handling status of a contact ticket.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "open"
	TicketStatusAnswered TicketStatus = "answered"
	TicketStatusClosed   TicketStatus = "closed"
)

func ParseTicketStatus(s string) (TicketStatus, bool) {
	switch TicketStatus(s) {
	case TicketStatusOpen, TicketStatusAnswered, TicketStatusClosed:
		return TicketStatus(s), true
	}
	return "", false
}

// ContactTicket represents a message submitted through the contact form.
type ContactTicket struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string       `gorm:"type:varchar(100);not null" json:"name"`
	Email      string       `gorm:"type:varchar(255);not null;index" json:"email"`
	Subject    string       `gorm:"type:varchar(200);not null" json:"subject"`
	Message    string       `gorm:"type:text;not null" json:"message"`
	Status     TicketStatus `gorm:"type:varchar(20);not null;default:'open';index" json:"status"`
	AdminNotes string       `gorm:"type:text" json:"admin_notes"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ContactTicket) TableName() string {
	return "contact_tickets"
}
