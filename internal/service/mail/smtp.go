package mail

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/kingrain94/bhms-api/internal/domain"
)

var ErrNoRecipients = errors.New("email has no recipients")

// Dialer sends composed messages. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSender struct {
	dialer Dialer
	from   string
}

func NewSMTPSender(dialer Dialer, from string) *SMTPSender {
	return &SMTPSender{
		dialer: dialer,
		from:   from,
	}
}

func (s *SMTPSender) Send(email *domain.Email) error {
	if email == nil || len(email.To) == 0 {
		return ErrNoRecipients
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	switch {
	case email.TextBody != "" && email.HTMLBody != "":
		m.SetBody("text/plain", email.TextBody)
		m.AddAlternative("text/html", email.HTMLBody)
	case email.HTMLBody != "":
		m.SetBody("text/html", email.HTMLBody)
	default:
		m.SetBody("text/plain", email.TextBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %v: %w", email.To, err)
	}
	return nil
}
