package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentStripe       PaymentMethod = "stripe"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
)

type Payment struct {
	Base
	OwnerID     string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	InvoiceID   string          `gorm:"type:uuid;not null;index" json:"invoice_id"`
	TenantID    string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Method      PaymentMethod   `gorm:"type:text;not null" json:"method"`
	Status      PaymentStatus   `gorm:"type:text;not null;default:'pending'" json:"status"`
	ProviderRef *string         `gorm:"type:text;uniqueIndex" json:"provider_ref,omitempty"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	Note        string          `gorm:"type:text" json:"note"`
	Invoice     *Invoice        `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

type PaymentFilter struct {
	Pagination
	InvoiceID string     `json:"invoice_id"`
	TenantID  string     `json:"tenant_id"`
	Status    string     `json:"status"`
	Method    string     `json:"method"`
	PaidFrom  *time.Time `json:"paid_from,omitempty"`
	PaidTo    *time.Time `json:"paid_to,omitempty"`
}
