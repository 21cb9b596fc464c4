package domain

type NotificationType string

const (
	NotificationInvoiceCreated  NotificationType = "invoice_created"
	NotificationInvoicePaid     NotificationType = "invoice_paid"
	NotificationPaymentOverpaid NotificationType = "payment_overpaid"
	NotificationInvoiceOverdue  NotificationType = "invoice_overdue"
	NotificationContractExpired NotificationType = "contract_expired"
	NotificationReportUpdated   NotificationType = "report_updated"
	NotificationReportCreated   NotificationType = "report_created"
	NotificationSystem          NotificationType = "system"
)

type Notification struct {
	Base
	UserID      string           `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string           `gorm:"type:text;not null" json:"title"`
	Message     string           `gorm:"type:text;not null" json:"message"`
	Type        NotificationType `gorm:"type:text;not null" json:"type"`
	ReferenceID string           `gorm:"type:text" json:"reference_id,omitempty"`
	IsRead      bool             `gorm:"not null;default:false" json:"is_read"`
}

func (Notification) TableName() string {
	return "notifications"
}

type NotificationFilter struct {
	Pagination
	UserID     string `json:"user_id"`
	UnreadOnly bool   `json:"unread_only"`
}
