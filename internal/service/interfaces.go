package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name MailQueue --output ../mocks
type MailQueue interface {
	SendEmail(ctx context.Context, email *domain.Email) error
}

//go:generate mockery --name IndexQueue --output ../mocks
type IndexQueue interface {
	SendIndexTenantMessage(ctx context.Context, doc *domain.TenantDocument) error
	SendDeleteTenantMessage(ctx context.Context, ownerID, tenantID string) error
}

//go:generate mockery --name NotificationPublisher --output ../mocks
type NotificationPublisher interface {
	Publish(ctx context.Context, notification *domain.Notification) error
}

// Notifier records a notification for a user and pushes it to live clients.
//
//go:generate mockery --name Notifier --output ../mocks
type Notifier interface {
	Notify(ctx context.Context, userID string, kind domain.NotificationType, title, message, referenceID string)
}

//go:generate mockery --name ImageStorage --output ../mocks
type ImageStorage interface {
	// UploadImage stores an image under prefix and returns its public URL.
	UploadImage(ctx context.Context, prefix string, data []byte) (string, error)
}

//go:generate mockery --name Cache --output ../mocks
type Cache interface {
	// Get decodes the cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

//go:generate mockery --name TokenStore --output ../mocks
type TokenStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	SaveResetToken(ctx context.Context, token, userID string, ttl time.Duration) error
	// ConsumeResetToken returns the user id of a reset token and deletes it.
	ConsumeResetToken(ctx context.Context, token string) (string, error)
}

//go:generate mockery --name Locker --output ../mocks
type Locker interface {
	// TryLock returns ok=false when another process holds key.
	TryLock(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

// PaymentIntent is the gateway view of a card payment.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       decimal.Decimal
	Currency     string
	Status       string
	Metadata     map[string]string
}

const (
	IntentSucceeded = "succeeded"
	IntentFailed    = "failed"
	IntentCanceled  = "canceled"
)

// GatewayEvent is a verified webhook event.
type GatewayEvent struct {
	Type   string
	Intent *PaymentIntent
}

//go:generate mockery --name PaymentGateway --output ../mocks
type PaymentGateway interface {
	Enabled() bool
	Currency() string
	CreateIntent(ctx context.Context, amount decimal.Decimal, metadata map[string]string, idempotencyKey string) (*PaymentIntent, error)
	GetIntent(ctx context.Context, id string) (*PaymentIntent, error)
	ParseWebhook(payload []byte, signature string) (*GatewayEvent, error)
}
