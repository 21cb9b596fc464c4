package config

import (
	"strings"

	"github.com/stripe/stripe-go/v76"
)

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
}

func DefaultStripeConfig() *StripeConfig {
	return &StripeConfig{
		SecretKey:     getEnvWithDefault("STRIPE_SECRET_KEY", ""),
		WebhookSecret: getEnvWithDefault("STRIPE_WEBHOOK_SECRET", ""),
		Currency:      strings.ToLower(getEnvWithDefault("STRIPE_CURRENCY", "vnd")),
	}
}

// Enabled reports whether card payments can be taken.
func (c *StripeConfig) Enabled() bool {
	return c.SecretKey != ""
}

// Apply sets the process-wide Stripe API key.
func (c *StripeConfig) Apply() {
	stripe.Key = c.SecretKey
}
