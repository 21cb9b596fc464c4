package domain

import (
	"time"
)

type TenantStatus string

const (
	TenantActive   TenantStatus = "active"
	TenantMovedOut TenantStatus = "moved_out"
)

// Tenant is a renter. It is not a SaaS tenant: isolation is per owner.
type Tenant struct {
	Base
	OwnerID     string       `gorm:"type:uuid;not null;index" json:"owner_id"`
	UserID      *string      `gorm:"type:uuid;uniqueIndex" json:"user_id,omitempty"`
	RoomID      *string      `gorm:"type:uuid;index" json:"room_id,omitempty"`
	FullName    string       `gorm:"type:text;not null" json:"full_name"`
	Phone       string       `gorm:"type:text;not null" json:"phone"`
	Email       string       `gorm:"type:text" json:"email"`
	IDNumber    string       `gorm:"type:text" json:"id_number"`
	DateOfBirth *time.Time   `json:"date_of_birth,omitempty"`
	Hometown    string       `gorm:"type:text" json:"hometown"`
	Status      TenantStatus `gorm:"type:text;not null;default:'active'" json:"status"`
	Room        *Room        `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Tenant) TableName() string {
	return "tenants"
}

type TenantFilter struct {
	Pagination
	RoomID string `json:"room_id"`
	Status string `json:"status"`
	Search string `json:"search"`
}

// TenantDocument is the search projection of a tenant.
type TenantDocument struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	RoomID   string `json:"room_id,omitempty"`
	RoomName string `json:"room_name,omitempty"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
	Hometown string `json:"hometown,omitempty"`
	Status   string `json:"status"`
}

// Document builds the search projection.
func (t *Tenant) Document() *TenantDocument {
	doc := &TenantDocument{
		ID:       t.ID,
		OwnerID:  t.OwnerID,
		FullName: t.FullName,
		Phone:    t.Phone,
		Email:    t.Email,
		IDNumber: t.IDNumber,
		Hometown: t.Hometown,
		Status:   string(t.Status),
	}
	if t.RoomID != nil {
		doc.RoomID = *t.RoomID
	}
	if t.Room != nil {
		doc.RoomName = t.Room.Name
	}
	return doc
}
