package entity

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationStatus is the lifecycle status of a community registration.
type RegistrationStatus string

const (
	RegistrationStatusActive       RegistrationStatus = "active"
	RegistrationStatusInactive     RegistrationStatus = "inactive"
	RegistrationStatusUnsubscribed RegistrationStatus = "unsubscribed"
)

func ParseRegistrationStatus(s string) (RegistrationStatus, bool) {
	switch RegistrationStatus(s) {
	case RegistrationStatusActive, RegistrationStatusInactive, RegistrationStatusUnsubscribed:
		return RegistrationStatus(s), true
	}
	return "", false
}

// Registration represents a community member registration.
type Registration struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ReferenceCode  string             `gorm:"type:varchar(50);uniqueIndex;not null" json:"reference_code"`
	Name           string             `gorm:"type:varchar(100);not null" json:"name"`
	Email          string             `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Interests      string             `gorm:"type:text" json:"interests"`
	Status         RegistrationStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	UnsubscribedAt *time.Time         `json:"unsubscribed_at"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

// SetStatus applies a parsed status. UnsubscribedAt is write-once, recorded
// the first time the registration enters unsubscribed.
func (r *Registration) SetStatus(status RegistrationStatus, now time.Time) {
	r.Status = status
	if status == RegistrationStatusUnsubscribed && r.UnsubscribedAt == nil {
		r.UnsubscribedAt = &now
	}
}
