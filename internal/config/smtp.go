package config

import (
	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func DefaultSMTPConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:     getEnvWithDefault("SMTP_HOST", "localhost"),
		Port:     getEnvIntWithDefault("SMTP_PORT", 1025),
		Username: getEnvWithDefault("SMTP_USERNAME", ""),
		Password: getEnvWithDefault("SMTP_PASSWORD", ""),
		From:     getEnvWithDefault("SMTP_FROM", "BHMS <no-reply@bhms.local>"),
	}
}

func (c *SMTPConfig) GetDialer() *gomail.Dialer {
	return gomail.NewDialer(c.Host, c.Port, c.Username, c.Password)
}
