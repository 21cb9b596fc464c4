package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractExpired    ContractStatus = "expired"
	ContractTerminated ContractStatus = "terminated"
)

type RentalContract struct {
	Base
	OwnerID      string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	RoomID       string          `gorm:"type:uuid;not null;index" json:"room_id"`
	TenantID     string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	StartDate    time.Time       `gorm:"not null" json:"start_date"`
	EndDate      *time.Time      `json:"end_date,omitempty"`
	MonthlyRent  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"monthly_rent"`
	Deposit      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"deposit"`
	PaymentDay   int             `gorm:"not null;default:5" json:"payment_day"`
	Status       ContractStatus  `gorm:"type:text;not null;default:'active'" json:"status"`
	TerminatedAt *time.Time      `json:"terminated_at,omitempty"`
	Note         string          `gorm:"type:text" json:"note"`
	Room         *Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Tenant       *Tenant         `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (RentalContract) TableName() string {
	return "rental_contracts"
}

type ContractFilter struct {
	Pagination
	Status   string `json:"status"`
	RoomID   string `json:"room_id"`
	TenantID string `json:"tenant_id"`
}
