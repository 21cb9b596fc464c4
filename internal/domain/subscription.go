package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type SubscriptionStatus string

const (
	SubscriptionActive  SubscriptionStatus = "active"
	SubscriptionExpired SubscriptionStatus = "expired"
)

type Subscription struct {
	Base
	OwnerID      string             `gorm:"type:uuid;not null;index" json:"owner_id"`
	LicenseKeyID string             `gorm:"type:uuid;not null" json:"license_key_id"`
	Plan         string             `gorm:"type:text;not null" json:"plan"`
	MaxRooms     int                `gorm:"not null;default:0" json:"max_rooms"`
	StartsAt     time.Time          `gorm:"not null" json:"starts_at"`
	ExpiresAt    time.Time          `gorm:"not null;index" json:"expires_at"`
	Status       SubscriptionStatus `gorm:"type:text;not null;default:'active'" json:"status"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// IsActiveAt reports whether the subscription covers t.
func (s *Subscription) IsActiveAt(t time.Time) bool {
	return s.Status == SubscriptionActive && !t.Before(s.StartsAt) && t.Before(s.ExpiresAt)
}

type LicenseKeyStatus string

const (
	LicenseUnused  LicenseKeyStatus = "unused"
	LicenseUsed    LicenseKeyStatus = "used"
	LicenseRevoked LicenseKeyStatus = "revoked"
)

type LicenseKey struct {
	Base
	Key          string           `gorm:"type:text;not null;uniqueIndex" json:"key"`
	Plan         string           `gorm:"type:text;not null" json:"plan"`
	DurationDays int              `gorm:"not null" json:"duration_days"`
	Price        decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0" json:"price"`
	MaxRooms     int              `gorm:"not null;default:0" json:"max_rooms"`
	Status       LicenseKeyStatus `gorm:"type:text;not null;default:'unused'" json:"status"`
	UsedByOwner  *string          `gorm:"type:uuid" json:"used_by_owner,omitempty"`
	UsedAt       *time.Time       `json:"used_at,omitempty"`
}

func (LicenseKey) TableName() string {
	return "license_keys"
}

type LicenseKeyFilter struct {
	Pagination
	Status string `json:"status"`
	Plan   string `json:"plan"`
}
