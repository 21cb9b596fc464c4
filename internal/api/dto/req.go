package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email" example:"owner@example.com"`
	Password     string `json:"password" binding:"required,min=8" example:"s3cretpass"`
	FullName     string `json:"full_name" binding:"required" example:"Tran Van B"`
	Phone        string `json:"phone" binding:"omitempty,phone" example:"0901234567"`
	BusinessName string `json:"business_name" example:"Sunrise Rooms"`
	Address      string `json:"address" example:"12 Le Loi, District 1"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"owner@example.com"`
	Password string `json:"password" binding:"required" example:"s3cretpass"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"owner@example.com"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type BoardingHouseRequest struct {
	Name        string `json:"name" binding:"required" example:"Sunrise House"`
	Address     string `json:"address" binding:"required" example:"12 Le Loi, District 1"`
	Description string `json:"description"`
	TotalFloors int    `json:"total_floors" binding:"omitempty,min=1,max=200" example:"3"`
}

type CreateRoomRequest struct {
	BoardingHouseID string          `json:"boarding_house_id" binding:"required,uuid"`
	Name            string          `json:"name" binding:"required" example:"101"`
	Floor           int             `json:"floor" binding:"omitempty,min=0" example:"1"`
	Area            decimal.Decimal `json:"area" swaggertype:"string" example:"18.5"`
	Price           decimal.Decimal `json:"price" swaggertype:"string" example:"3500000"`
	Capacity        int             `json:"capacity" binding:"omitempty,min=1" example:"2"`
	Description     string          `json:"description"`
}

type UpdateRoomRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1"`
	Floor       *int             `json:"floor" binding:"omitempty,min=0"`
	Area        *decimal.Decimal `json:"area" swaggertype:"string"`
	Price       *decimal.Decimal `json:"price" swaggertype:"string"`
	Capacity    *int             `json:"capacity" binding:"omitempty,min=1"`
	Status      *string          `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	Description *string          `json:"description"`
}

type AttachServiceRequest struct {
	ServiceID string          `json:"service_id" binding:"required,uuid"`
	Quantity  decimal.Decimal `json:"quantity" swaggertype:"string" example:"1"`
}

type ServiceRequest struct {
	BoardingHouseID string          `json:"boarding_house_id" binding:"required,uuid"`
	Name            string          `json:"name" binding:"required" example:"Electricity"`
	Unit            string          `json:"unit" binding:"required" example:"kWh"`
	UnitPrice       decimal.Decimal `json:"unit_price" swaggertype:"string" example:"3500"`
	Metered         bool            `json:"metered" example:"true"`
}

// CreateTenantRequest registers a tenant without a room. Rooms are assigned
// by signing a contract.
type CreateTenantRequest struct {
	FullName      string     `json:"full_name" binding:"required" example:"Nguyen Van A"`
	Phone         string     `json:"phone" binding:"required,phone" example:"0901234567"`
	Email         string     `json:"email" binding:"omitempty,email" example:"tenant@example.com"`
	IDNumber      string     `json:"id_number" example:"079200001234"`
	DateOfBirth   *time.Time `json:"date_of_birth" example:"2000-01-31T00:00:00Z"`
	Hometown      string     `json:"hometown"`
	CreateAccount bool       `json:"create_account"`
}

type UpdateTenantRequest struct {
	FullName    *string    `json:"full_name" binding:"omitempty,min=1"`
	Phone       *string    `json:"phone" binding:"omitempty,phone"`
	Email       *string    `json:"email" binding:"omitempty,email"`
	IDNumber    *string    `json:"id_number"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Hometown    *string    `json:"hometown"`
}

type CreateContractRequest struct {
	RoomID      string           `json:"room_id" binding:"required,uuid"`
	TenantID    string           `json:"tenant_id" binding:"required,uuid"`
	StartDate   time.Time        `json:"start_date" binding:"required" example:"2025-01-01T00:00:00Z"`
	EndDate     *time.Time       `json:"end_date" example:"2025-12-31T00:00:00Z"`
	MonthlyRent *decimal.Decimal `json:"monthly_rent" swaggertype:"string" example:"3500000"`
	Deposit     decimal.Decimal  `json:"deposit" swaggertype:"string" example:"3500000"`
	PaymentDay  int              `json:"payment_day" binding:"omitempty,min=1,max=28" example:"5"`
	Note        string           `json:"note"`
}

type UpdateContractRequest struct {
	RoomID      *string          `json:"room_id" binding:"omitempty,uuid"`
	EndDate     *time.Time       `json:"end_date"`
	MonthlyRent *decimal.Decimal `json:"monthly_rent" swaggertype:"string"`
	Deposit     *decimal.Decimal `json:"deposit" swaggertype:"string"`
	PaymentDay  *int             `json:"payment_day" binding:"omitempty,min=1,max=28"`
	Note        *string          `json:"note"`
}

type CreateInvoiceRequest struct {
	RoomID       string `json:"room_id" binding:"required,uuid"`
	BillingMonth string `json:"billing_month" binding:"required,month" example:"2025-03"`
	// Quantities holds usage per metered service id.
	Quantities  map[string]decimal.Decimal `json:"quantities" swaggertype:"object"`
	ExtraCharge decimal.Decimal            `json:"extra_charge" swaggertype:"string" example:"0"`
	Discount    decimal.Decimal            `json:"discount" swaggertype:"string" example:"0"`
	DueDate     *time.Time                 `json:"due_date"`
	Note        string                     `json:"note"`
}

type GenerateInvoicesRequest struct {
	BoardingHouseID string     `json:"boarding_house_id" binding:"required,uuid"`
	BillingMonth    string     `json:"billing_month" binding:"required,month" example:"2025-03"`
	DueDate         *time.Time `json:"due_date"`
}

type UpdateInvoiceRequest struct {
	// Quantities replaces the usage of the listed metered services.
	Quantities  map[string]decimal.Decimal `json:"quantities" swaggertype:"object"`
	ExtraCharge *decimal.Decimal           `json:"extra_charge" swaggertype:"string"`
	Discount    *decimal.Decimal           `json:"discount" swaggertype:"string"`
	DueDate     *time.Time                 `json:"due_date"`
	Note        *string                    `json:"note"`
}

type CreatePaymentRequest struct {
	InvoiceID string          `json:"invoice_id" binding:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"3500000"`
	Method    string          `json:"method" binding:"required,oneof=cash bank_transfer" example:"cash"`
	PaidAt    *time.Time      `json:"paid_at"`
	Note      string          `json:"note"`
}

type CreatePaymentIntentRequest struct {
	InvoiceID string `json:"invoice_id" binding:"required,uuid"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required" example:"pi_3Nabc"`
}

type CreateReportRequest struct {
	Title    string `json:"title" binding:"required,max=200" example:"Leaking tap"`
	Content  string `json:"content" binding:"required" example:"The bathroom tap leaks at night."`
	Category string `json:"category" binding:"omitempty,oneof=maintenance complaint other" example:"maintenance"`
}

type UpdateReportRequest struct {
	Status   string `json:"status" binding:"required,oneof=pending in_progress resolved" example:"in_progress"`
	Response string `json:"response"`
}

type CreateAdminReportRequest struct {
	Title   string `json:"title" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

type GenerateLicenseKeysRequest struct {
	Plan         string          `json:"plan" binding:"required" example:"standard"`
	DurationDays int             `json:"duration_days" binding:"required,min=1,max=3660" example:"30"`
	Price        decimal.Decimal `json:"price" swaggertype:"string" example:"199000"`
	MaxRooms     int             `json:"max_rooms" binding:"omitempty,min=0" example:"50"`
	Count        int             `json:"count" binding:"required,min=1,max=500" example:"10"`
}

type RedeemLicenseRequest struct {
	Key string `json:"key" binding:"required" example:"BHMS-ABCD-EFGH-IJKL"`
}
