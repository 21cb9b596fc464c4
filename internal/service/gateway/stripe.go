package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/service"
)

// Currencies Stripe charges in whole units.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

// StripeGateway takes card payments through Stripe PaymentIntents.
type StripeGateway struct {
	intents *paymentintent.Client
	config  *config.StripeConfig
}

func NewStripeGateway(cfg *config.StripeConfig) *StripeGateway {
	return &StripeGateway{
		intents: &paymentintent.Client{B: stripe.GetBackend(stripe.APIBackend), Key: cfg.SecretKey},
		config:  cfg,
	}
}

func (g *StripeGateway) Enabled() bool {
	return g.config.Enabled()
}

func (g *StripeGateway) Currency() string {
	return g.config.Currency
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, metadata map[string]string, idempotencyKey string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ToMinorUnits(amount, g.config.Currency)),
		Currency: stripe.String(g.config.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	if idempotencyKey != "" {
		params.SetIdempotencyKey(idempotencyKey)
	}

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: %w", err)
	}
	return g.toIntent(pi), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (*service.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	pi, err := g.intents.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("stripe: %w", err)
	}
	return g.toIntent(pi), nil
}

// ParseWebhook verifies the Stripe-Signature header and decodes payment
// intent events. Other event types come back without an intent.
func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (*service.GatewayEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.config.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, err
	}

	out := &service.GatewayEvent{Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "payment_intent.") || event.Data == nil {
		return out, nil
	}
	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, fmt.Errorf("failed to decode payment intent: %w", err)
	}
	out.Intent = g.toIntent(&pi)
	if out.Type == service.EventIntentFailed {
		out.Intent.Status = service.IntentFailed
	}
	return out, nil
}

func (g *StripeGateway) toIntent(pi *stripe.PaymentIntent) *service.PaymentIntent {
	currency := string(pi.Currency)
	if currency == "" {
		currency = g.config.Currency
	}
	return &service.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       FromMinorUnits(pi.Amount, currency),
		Currency:     currency,
		Status:       string(pi.Status),
		Metadata:     pi.Metadata,
	}
}

// ToMinorUnits converts an amount to the integer Stripe expects.
func ToMinorUnits(amount decimal.Decimal, currency string) int64 {
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return amount.Round(0).IntPart()
	}
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func FromMinorUnits(amount int64, currency string) decimal.Decimal {
	if zeroDecimalCurrencies[strings.ToLower(currency)] {
		return decimal.NewFromInt(amount)
	}
	return decimal.New(amount, -2)
}
