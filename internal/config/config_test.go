package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("OVERDUE_SWEEP_INTERVAL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.ServerPort)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.Equal(t, time.Hour, cfg.OverdueSweepInterval)
	assert.Equal(t, 7, cfg.InvoiceDueDays)
	assert.False(t, cfg.SubscriptionRequired)
	assert.Equal(t, "VN", cfg.PhoneRegion)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "secret")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SUBSCRIPTION_REQUIRED", "true")
	t.Setenv("OVERDUE_SWEEP_INTERVAL", "15m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("INVOICE_DUE_DAYS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.True(t, cfg.SubscriptionRequired)
	assert.Equal(t, 15*time.Minute, cfg.OverdueSweepInterval)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 7, cfg.InvoiceDueDays)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestDatabaseConfig_URL(t *testing.T) {
	c := &DatabaseConfig{Host: "db", Port: "5432", User: "bhms", Password: "p@ss", DBName: "bhms", SSLMode: "disable"}
	assert.Equal(t, "postgres://bhms:p%40ss@db:5432/bhms?sslmode=disable", c.URL())
}

func TestReaderConfig_FallsBackToWriter(t *testing.T) {
	t.Setenv("POSTGRES_WRITER_HOST", "writer.internal")
	t.Setenv("POSTGRES_READER_HOST", "")

	assert.Equal(t, "writer.internal", GetReaderConfig().Host)
}

func TestS3Config_ObjectURL(t *testing.T) {
	c := &S3Config{BucketName: "imgs", Region: "ap-southeast-1"}
	assert.Equal(t, "https://imgs.s3.ap-southeast-1.amazonaws.com/rooms/a.jpg", c.ObjectURL("rooms/a.jpg"))

	c.Endpoint = "http://localhost:4566/"
	assert.Equal(t, "http://localhost:4566/imgs/rooms/a.jpg", c.ObjectURL("rooms/a.jpg"))

	c.PublicBaseURL = "https://cdn.example/"
	assert.Equal(t, "https://cdn.example/rooms/a.jpg", c.ObjectURL("rooms/a.jpg"))
}
