package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/bhms-api/internal/domain"
)

// PageResponse wraps one page of a list endpoint.
type PageResponse[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total" example:"42"`
	Page     int   `json:"page" example:"1"`
	PageSize int   `json:"page_size" example:"20"`
}

// TokenResponse is returned by register and login.
type TokenResponse struct {
	AccessToken string        `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
	TokenType   string        `json:"token_type" example:"Bearer"`
	ExpiresAt   time.Time     `json:"expires_at" example:"2025-07-18T21:20:48Z"`
	User        *UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Email       string     `json:"email" example:"owner@example.com"`
	FullName    string     `json:"full_name" example:"Tran Van B"`
	Phone       string     `json:"phone" example:"+84901234567"`
	Role        string     `json:"role" example:"owner"`
	Active      bool       `json:"active" example:"true"`
	OwnerID     string     `json:"owner_id,omitempty"`
	OwnerStatus string     `json:"owner_status,omitempty" example:"active"`
	TenantID    string     `json:"tenant_id,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type GenerateInvoicesResponse struct {
	Created  int              `json:"created" example:"12"`
	Skipped  int              `json:"skipped" example:"3"`
	Invoices []domain.Invoice `json:"invoices"`
}

type PaymentIntentResponse struct {
	PaymentID       string          `json:"payment_id"`
	PaymentIntentID string          `json:"payment_intent_id" example:"pi_3Nabc"`
	ClientSecret    string          `json:"client_secret" example:"pi_3Nabc_secret_xyz"`
	Amount          decimal.Decimal `json:"amount" swaggertype:"string" example:"3500000"`
	Currency        string          `json:"currency" example:"vnd"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread" example:"3"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated" example:"5"`
}

type SweepResponse struct {
	Overdue             int   `json:"overdue" example:"4"`
	Reminded            int   `json:"reminded" example:"7"`
	ExpiredContracts    int   `json:"expired_contracts" example:"1"`
	ExpiredSubscription int64 `json:"expired_subscriptions" example:"0"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type ImageUploadResponse struct {
	URL  string       `json:"url" example:"https://cdn.example.com/rooms/abc.jpg"`
	Room *domain.Room `json:"room"`
}
