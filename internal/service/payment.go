package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

const (
	EventIntentSucceeded = "payment_intent.succeeded"
	EventIntentFailed    = "payment_intent.payment_failed"
)

type PaymentService struct {
	repo     repository.Repository
	gateway  PaymentGateway
	notifier Notifier
	mail     MailQueue
	logger   *logger.Logger
	now      func() time.Time
}

func NewPaymentService(repo repository.Repository, gateway PaymentGateway, notifier Notifier, mail MailQueue, logger *logger.Logger) *PaymentService {
	return &PaymentService{
		repo:     repo,
		gateway:  gateway,
		notifier: notifier,
		mail:     mail,
		logger:   logger,
		now:      time.Now,
	}
}

// Record stores a cash or bank transfer payment and settles the invoice.
func (s *PaymentService) Record(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	paidAt := s.now()
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}

	var (
		payment *domain.Payment
		invoice *domain.Invoice
	)
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		invoice, err = tx.Invoice().LockByID(ctx, req.InvoiceID)
		if err != nil {
			return notFound(err, ErrInvoiceNotFound)
		}
		if err := payable(invoice); err != nil {
			return err
		}
		if req.Amount.GreaterThan(invoice.Outstanding()) {
			return ErrAmountTooLarge
		}

		payment = &domain.Payment{
			OwnerID:   invoice.OwnerID,
			InvoiceID: invoice.ID,
			TenantID:  invoice.TenantID,
			Amount:    req.Amount,
			Method:    domain.PaymentMethod(req.Method),
			Status:    domain.PaymentSucceeded,
			PaidAt:    &paidAt,
			Note:      req.Note,
		}
		if err := tx.Payment().Create(ctx, payment); err != nil {
			return fmt.Errorf("failed to create payment: %w", err)
		}
		return s.reconcile(ctx, tx, invoice)
	})
	if err != nil {
		return nil, err
	}

	s.afterPayment(ctx, invoice, payment)
	return payment, nil
}

// CreateIntent opens a card payment for the outstanding balance of an invoice.
func (s *PaymentService) CreateIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if s.gateway == nil || !s.gateway.Enabled() {
		return nil, ErrPaymentsDisabled
	}
	invoice, err := s.accessibleInvoice(ctx, req.InvoiceID)
	if err != nil {
		return nil, err
	}
	if err := payable(invoice); err != nil {
		return nil, err
	}

	amount := invoice.Outstanding()
	metadata := map[string]string{
		"invoice_id": invoice.ID,
		"owner_id":   invoice.OwnerID,
		"tenant_id":  invoice.TenantID,
	}
	// Same invoice and balance reuse the same intent.
	key := fmt.Sprintf("invoice-%s-%s", invoice.ID, invoice.PaidAmount.StringFixed(2))
	intent, err := s.gateway.CreateIntent(ctx, amount, metadata, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	payment, err := s.repo.Payment().GetByProviderRef(ctx, intent.ID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ref := intent.ID
		payment = &domain.Payment{
			OwnerID:     invoice.OwnerID,
			InvoiceID:   invoice.ID,
			TenantID:    invoice.TenantID,
			Amount:      amount,
			Method:      domain.PaymentStripe,
			Status:      domain.PaymentPending,
			ProviderRef: &ref,
		}
		err = s.repo.Payment().Create(ctx, payment)
	case err == nil && payment.Status == domain.PaymentFailed:
		// The tenant is retrying a declined card on the same intent.
		payment.Status = domain.PaymentPending
		payment.Amount = amount
		err = s.repo.Payment().Update(ctx, payment)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store payment: %w", err)
	}

	return &dto.PaymentIntentResponse{
		PaymentID:       payment.ID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		Amount:          amount,
		Currency:        s.gateway.Currency(),
	}, nil
}

// Confirm fetches the intent from the gateway and settles it.
func (s *PaymentService) Confirm(ctx context.Context, req dto.ConfirmPaymentRequest) (*domain.Payment, error) {
	if s.gateway == nil || !s.gateway.Enabled() {
		return nil, ErrPaymentsDisabled
	}
	payment, err := s.repo.Payment().GetByProviderRef(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, notFound(err, ErrPaymentNotFound)
	}
	if _, err := s.accessibleInvoice(ctx, payment.InvoiceID); err != nil {
		return nil, ErrPaymentNotFound
	}

	intent, err := s.gateway.GetIntent(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	return s.applyIntent(ctx, intent)
}

// Webhook handles a signed gateway event. Unknown event types are ignored.
func (s *PaymentService) Webhook(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil || !s.gateway.Enabled() {
		return ErrPaymentsDisabled
	}
	event, err := s.gateway.ParseWebhook(payload, signature)
	if err != nil {
		s.logger.Warnf("rejected webhook: %v", err)
		return ErrInvalidSignature
	}

	switch event.Type {
	case EventIntentSucceeded, EventIntentFailed:
		_, err := s.applyIntent(ctx, event.Intent)
		if errors.Is(err, ErrPaymentNotFound) {
			s.logger.Warnf("webhook for unknown payment intent %s", event.Intent.ID)
			return nil
		}
		return err
	default:
		return nil
	}
}

// applyIntent moves the payment keyed by the intent to the intent's state.
// Only succeeded is final: a failed attempt can still succeed on retry, and
// settling twice is a no-op. Card money is already captured when it arrives,
// so an amount above the balance is recorded and reported to the owner
// instead of being rejected.
func (s *PaymentService) applyIntent(ctx context.Context, intent *PaymentIntent) (*domain.Payment, error) {
	if intent == nil {
		return nil, ErrPaymentNotFound
	}
	found, err := s.repo.Payment().GetByProviderRef(ctx, intent.ID)
	if err != nil {
		return nil, notFound(err, ErrPaymentNotFound)
	}
	// Webhooks carry no claims; act as the payment's owner.
	ctx = utils.WithIdentity(ctx, utils.Identity{Role: string(domain.RoleOwner), OwnerID: found.OwnerID})

	var (
		payment *domain.Payment
		invoice *domain.Invoice
		settled bool
		excess  decimal.Decimal
	)
	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		invoice, err = tx.Invoice().LockByID(ctx, found.InvoiceID)
		if err != nil {
			return notFound(err, ErrInvoiceNotFound)
		}
		payment, err = tx.Payment().GetByProviderRef(ctx, intent.ID)
		if err != nil {
			return notFound(err, ErrPaymentNotFound)
		}
		if payment.Status == domain.PaymentSucceeded {
			return nil
		}

		switch intent.Status {
		case IntentSucceeded:
			now := s.now()
			payment.Status = domain.PaymentSucceeded
			payment.PaidAt = &now
			if intent.Amount.IsPositive() {
				payment.Amount = intent.Amount
			}
			excess = payment.Amount.Sub(amountDue(invoice))
			if excess.IsPositive() {
				payment.Note = fmt.Sprintf("overpaid by %s, refund due", formatMoney(excess))
			}
		case IntentFailed, IntentCanceled:
			if payment.Status == domain.PaymentFailed {
				return nil
			}
			payment.Status = domain.PaymentFailed
		default:
			return nil
		}
		if err := tx.Payment().Update(ctx, payment); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}
		if payment.Status != domain.PaymentSucceeded {
			return nil
		}
		settled = true
		return s.reconcile(ctx, tx, invoice)
	})
	if err != nil {
		return nil, err
	}

	if settled {
		if excess.IsPositive() {
			s.reportOverpayment(ctx, invoice, payment, excess)
		}
		s.afterPayment(ctx, invoice, payment)
	}
	return payment, nil
}

// amountDue is what the invoice can still absorb. Closed invoices absorb
// nothing.
func amountDue(invoice *domain.Invoice) decimal.Decimal {
	if !invoice.IsOpen() {
		return decimal.Zero
	}
	return invoice.Outstanding()
}

func (s *PaymentService) reportOverpayment(ctx context.Context, invoice *domain.Invoice, payment *domain.Payment, excess decimal.Decimal) {
	s.logger.Warnf("payment %s overpaid invoice %s by %s", payment.ID, invoice.ID, excess.String())
	owner, err := s.repo.Owner().GetByID(ctx, invoice.OwnerID)
	if err != nil {
		s.logger.Error("failed to load owner for overpayment", err)
		return
	}
	msg := fmt.Sprintf("A card payment of %s on invoice %s exceeded the balance by %s. Please refund the difference.",
		formatMoney(payment.Amount), invoice.BillingMonth, formatMoney(excess))
	s.notifier.Notify(ctx, owner.UserID, domain.NotificationPaymentOverpaid, "Payment exceeds balance", msg, payment.ID)
}

// reconcile sets the paid amount of a locked invoice to the sum of its
// succeeded payments.
func (s *PaymentService) reconcile(ctx context.Context, tx repository.Repository, invoice *domain.Invoice) error {
	paid, err := tx.Payment().SumSucceeded(ctx, invoice.ID)
	if err != nil {
		return fmt.Errorf("failed to sum payments: %w", err)
	}
	invoice.ApplyPaidAmount(paid, s.now())
	if err := tx.Invoice().Update(ctx, invoice); err != nil {
		return fmt.Errorf("failed to update invoice: %w", err)
	}
	return nil
}

func (s *PaymentService) afterPayment(ctx context.Context, invoice *domain.Invoice, payment *domain.Payment) {
	tenant, err := s.repo.Tenant().GetByID(ctx, invoice.TenantID)
	if err != nil {
		s.logger.Error("failed to load tenant for receipt", err)
		return
	}

	if invoice.Status == domain.InvoicePaid {
		msg := fmt.Sprintf("Invoice %s of %s is fully paid.", invoice.BillingMonth, tenant.FullName)
		if owner, err := s.repo.Owner().GetByID(ctx, invoice.OwnerID); err == nil {
			s.notifier.Notify(ctx, owner.UserID, domain.NotificationInvoicePaid, "Invoice paid", msg, invoice.ID)
		}
		if tenant.UserID != nil {
			s.notifier.Notify(ctx, *tenant.UserID, domain.NotificationInvoicePaid, "Invoice paid",
				fmt.Sprintf("Your invoice for %s is fully paid.", invoice.BillingMonth), invoice.ID)
		}
	}

	if tenant.Email == "" {
		return
	}
	email, err := renderEmail(tenant.Email, "Payment received for "+invoice.BillingMonth, "payment_receipt", emailData{
		Name:    tenant.FullName,
		Month:   invoice.BillingMonth,
		Amount:  formatMoney(payment.Amount),
		Balance: formatMoney(invoice.Outstanding()),
	})
	if err != nil {
		s.logger.Error("failed to render receipt", err)
		return
	}
	if err := s.mail.SendEmail(ctx, email); err != nil {
		s.logger.Error("failed to queue receipt", err)
	}
}

// accessibleInvoice loads an invoice, restricted to the caller's own
// invoices when the caller is a tenant.
func (s *PaymentService) accessibleInvoice(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.repo.Invoice().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrInvoiceNotFound)
	}
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role == string(domain.RoleTenant) && invoice.TenantID != identity.TenantID {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

func payable(invoice *domain.Invoice) error {
	if invoice.Status == domain.InvoiceCancelled {
		return ErrInvoiceNotEditable
	}
	if !invoice.IsOpen() || !invoice.Outstanding().IsPositive() {
		return ErrInvoiceSettled
	}
	return nil
}

func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	payment, err := s.repo.Payment().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPaymentNotFound)
	}
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Role == string(domain.RoleTenant) && payment.TenantID != identity.TenantID {
		return nil, ErrPaymentNotFound
	}
	return payment, nil
}

// List returns payments; tenants only see their own.
func (s *PaymentService) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, int64, error) {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	if identity.Role == string(domain.RoleTenant) {
		filter.TenantID = identity.TenantID
	}
	return s.repo.Payment().List(ctx, filter)
}
