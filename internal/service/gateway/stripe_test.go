package gateway

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/service"
)

const testSecret = "whsec_test"

func testGateway() *StripeGateway {
	return NewStripeGateway(&config.StripeConfig{
		SecretKey:     "sk_test_123",
		WebhookSecret: testSecret,
		Currency:      "vnd",
	})
}

func signed(t *testing.T, payload string) (string, []byte) {
	t.Helper()
	sp := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testSecret,
		Timestamp: time.Now(),
	})
	return sp.Header, sp.Payload
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(3500000), ToMinorUnits(decimal.NewFromInt(3500000), "vnd"))
	assert.Equal(t, int64(1999), ToMinorUnits(decimal.RequireFromString("19.99"), "usd"))
	assert.True(t, FromMinorUnits(1999, "USD").Equal(decimal.RequireFromString("19.99")))
	assert.True(t, FromMinorUnits(50000, "vnd").Equal(decimal.NewFromInt(50000)))
}

func TestParseWebhook_SucceededIntent(t *testing.T) {
	g := testGateway()
	header, payload := signed(t, `{
		"id": "evt_1",
		"object": "event",
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_1", "object": "payment_intent", "amount": 250000, "currency": "vnd", "status": "succeeded", "metadata": {"invoice_id": "inv-1"}}}
	}`)

	event, err := g.ParseWebhook(payload, header)

	require.NoError(t, err)
	assert.Equal(t, service.EventIntentSucceeded, event.Type)
	require.NotNil(t, event.Intent)
	assert.Equal(t, "pi_1", event.Intent.ID)
	assert.Equal(t, service.IntentSucceeded, event.Intent.Status)
	assert.True(t, event.Intent.Amount.Equal(decimal.NewFromInt(250000)))
	assert.Equal(t, "inv-1", event.Intent.Metadata["invoice_id"])
}

func TestParseWebhook_FailedIntent(t *testing.T) {
	g := testGateway()
	header, payload := signed(t, `{
		"id": "evt_2",
		"object": "event",
		"type": "payment_intent.payment_failed",
		"data": {"object": {"id": "pi_2", "object": "payment_intent", "amount": 1000, "currency": "vnd", "status": "requires_payment_method"}}
	}`)

	event, err := g.ParseWebhook(payload, header)

	require.NoError(t, err)
	assert.Equal(t, service.IntentFailed, event.Intent.Status)
}

func TestParseWebhook_OtherEventHasNoIntent(t *testing.T) {
	g := testGateway()
	header, payload := signed(t, `{"id": "evt_3", "object": "event", "type": "customer.created", "data": {"object": {"id": "cus_1", "object": "customer"}}}`)

	event, err := g.ParseWebhook(payload, header)

	require.NoError(t, err)
	assert.Equal(t, "customer.created", event.Type)
	assert.Nil(t, event.Intent)
}

func TestParseWebhook_BadSignature(t *testing.T) {
	g := testGateway()

	_, err := g.ParseWebhook([]byte(`{"id":"evt"}`), "t=1,v1=deadbeef")

	assert.Error(t, err)
}
