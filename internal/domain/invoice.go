package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceUnpaid        InvoiceStatus = "unpaid"
	InvoicePartiallyPaid InvoiceStatus = "partially_paid"
	InvoicePaid          InvoiceStatus = "paid"
	InvoiceOverdue       InvoiceStatus = "overdue"
	InvoiceCancelled     InvoiceStatus = "cancelled"
)

// OpenInvoiceStatuses are the statuses that still expect money.
var OpenInvoiceStatuses = []InvoiceStatus{InvoiceUnpaid, InvoicePartiallyPaid, InvoiceOverdue}

type Invoice struct {
	Base
	OwnerID           string          `gorm:"type:uuid;not null;index" json:"owner_id"`
	RoomID            string          `gorm:"type:uuid;not null;uniqueIndex:idx_invoices_room_month" json:"room_id"`
	TenantID          string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ContractID        string          `gorm:"type:uuid;not null;index" json:"contract_id"`
	BillingMonth      string          `gorm:"type:text;not null;uniqueIndex:idx_invoices_room_month" json:"billing_month"`
	RoomCharge        decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"room_charge"`
	ServiceCharge     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"service_charge"`
	ExtraCharge       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"extra_charge"`
	Discount          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"discount"`
	TotalAmount       decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	PaidAmount        decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"paid_amount"`
	Status            InvoiceStatus   `gorm:"type:text;not null;default:'unpaid';index" json:"status"`
	DueDate           time.Time       `gorm:"not null;index" json:"due_date"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	ReminderSentAt    *time.Time      `json:"reminder_sent_at,omitempty"`
	OverdueNotifiedAt *time.Time      `json:"overdue_notified_at,omitempty"`
	Lines             InvoiceLines    `gorm:"type:jsonb" json:"lines"`
	Note              string          `gorm:"type:text" json:"note"`
	Room              *Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Tenant            *Tenant         `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type InvoiceFilter struct {
	Pagination
	BoardingHouseID string `json:"boarding_house_id"`
	RoomID          string `json:"room_id"`
	TenantID        string `json:"tenant_id"`
	BillingMonth    string `json:"billing_month"`
	Status          string `json:"status"`
}

// Recalculate derives ServiceCharge from the lines and TotalAmount from the
// charges. The total never goes below zero.
func (i *Invoice) Recalculate() {
	serviceCharge := decimal.Zero
	for _, line := range i.Lines {
		serviceCharge = serviceCharge.Add(line.Amount)
	}
	i.ServiceCharge = serviceCharge

	total := i.RoomCharge.Add(i.ServiceCharge).Add(i.ExtraCharge).Sub(i.Discount)
	if total.IsNegative() {
		total = decimal.Zero
	}
	i.TotalAmount = total
}

// Outstanding is what is left to pay.
func (i *Invoice) Outstanding() decimal.Decimal {
	out := i.TotalAmount.Sub(i.PaidAmount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// IsOpen reports whether the invoice still accepts payments.
func (i *Invoice) IsOpen() bool {
	for _, s := range OpenInvoiceStatuses {
		if i.Status == s {
			return true
		}
	}
	return false
}

// ApplyPaidAmount sets the settled amount and moves the status accordingly.
// An overdue invoice stays overdue until it is fully paid.
func (i *Invoice) ApplyPaidAmount(paid decimal.Decimal, now time.Time) {
	if i.Status == InvoiceCancelled {
		return
	}
	i.PaidAmount = paid

	switch {
	case paid.GreaterThanOrEqual(i.TotalAmount):
		i.Status = InvoicePaid
		if i.PaidAt == nil {
			i.PaidAt = &now
		}
	case paid.IsPositive():
		i.PaidAt = nil
		if i.Status != InvoiceOverdue {
			i.Status = InvoicePartiallyPaid
		}
	default:
		i.PaidAt = nil
		if i.Status != InvoiceOverdue {
			i.Status = InvoiceUnpaid
		}
	}
}

// InvoiceLine is one billed service on an invoice.
type InvoiceLine struct {
	ServiceID string          `json:"service_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewInvoiceLine prices a service for the given quantity.
func NewInvoiceLine(svc Service, quantity decimal.Decimal) InvoiceLine {
	return InvoiceLine{
		ServiceID: svc.ID,
		Name:      svc.Name,
		Unit:      svc.Unit,
		Quantity:  quantity,
		UnitPrice: svc.UnitPrice,
		Amount:    svc.UnitPrice.Mul(quantity).Round(2),
	}
}

type InvoiceLines []InvoiceLine

func (l InvoiceLines) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]InvoiceLine(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *InvoiceLines) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case nil:
		*l = InvoiceLines{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type for InvoiceLines: %T", value)
	}
	return json.Unmarshal(raw, (*[]InvoiceLine)(l))
}
