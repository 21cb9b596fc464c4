package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service/queue"
)

var ErrEmptyEmailMessage = errors.New("mail message has no email")

// EmailSender delivers one email. *mail.SMTPSender satisfies it.
type EmailSender interface {
	Send(email *domain.Email) error
}

// MailHandler delivers queued emails.
type MailHandler struct {
	sender EmailSender
}

func NewMailHandler(sender EmailSender) *MailHandler {
	return &MailHandler{sender: sender}
}

func (h *MailHandler) Handle(_ context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeEmail {
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
	if msg.Email == nil {
		return ErrEmptyEmailMessage
	}
	return h.sender.Send(msg.Email)
}
