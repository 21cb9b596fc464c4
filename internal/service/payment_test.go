package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/mocks"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockGateway) Currency() string {
	return m.Called().String(0)
}

func (m *MockGateway) CreateIntent(ctx context.Context, amount decimal.Decimal, metadata map[string]string, idempotencyKey string) (*PaymentIntent, error) {
	args := m.Called(ctx, amount, metadata, idempotencyKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentIntent), args.Error(1)
}

func (m *MockGateway) GetIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PaymentIntent), args.Error(1)
}

func (m *MockGateway) ParseWebhook(payload []byte, signature string) (*GatewayEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GatewayEvent), args.Error(1)
}

type PaymentServiceTestSuite struct {
	suite.Suite
	repos    *repoMocks
	gateway  *MockGateway
	notifier *mocks.Notifier
	mail     *mocks.MailQueue
	service  *PaymentService
	now      time.Time
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks()
	s.gateway = new(MockGateway)
	s.notifier = new(mocks.Notifier)
	s.mail = new(mocks.MailQueue)
	s.now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	s.service = NewPaymentService(s.repos.repo, s.gateway, s.notifier, s.mail, logger.NewNop())
	s.service.now = func() time.Time { return s.now }
}

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func openInvoice() *domain.Invoice {
	return &domain.Invoice{
		Base:         domain.Base{ID: "inv-1"},
		OwnerID:      "owner-1",
		TenantID:     "tenant-1",
		BillingMonth: "2025-03",
		TotalAmount:  dec("3500000"),
		PaidAmount:   decimal.Zero,
		Status:       domain.InvoiceUnpaid,
	}
}

func (s *PaymentServiceTestSuite) TestRecord_FullPaymentSettlesInvoice() {
	// Arrange
	ctx := ownerCtx()
	invoice := openInvoice()
	req := dto.CreatePaymentRequest{InvoiceID: "inv-1", Amount: dec("3500000"), Method: "cash"}

	s.repos.invoice.On("LockByID", ctx, "inv-1").Return(invoice, nil)
	s.repos.payment.On("Create", ctx, mock.AnythingOfType("*domain.Payment")).Return(nil)
	s.repos.payment.On("SumSucceeded", ctx, "inv-1").Return(dec("3500000"), nil)
	s.repos.invoice.On("Update", ctx, invoice).Return(nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(&domain.Tenant{
		Base:     domain.Base{ID: "tenant-1"},
		UserID:   strPtr("user-tenant"),
		FullName: "Tran Thi B",
		Email:    "b@example.com",
	}, nil)
	s.repos.owner.On("GetByID", ctx, "owner-1").Return(&domain.Owner{Base: domain.Base{ID: "owner-1"}, UserID: "user-owner"}, nil)
	s.notifier.On("Notify", ctx, "user-owner", domain.NotificationInvoicePaid, "Invoice paid", mock.Anything, "inv-1").Return()
	s.notifier.On("Notify", ctx, "user-tenant", domain.NotificationInvoicePaid, "Invoice paid", mock.Anything, "inv-1").Return()
	s.mail.On("SendEmail", ctx, mock.MatchedBy(func(e *domain.Email) bool {
		return len(e.To) == 1 && e.To[0] == "b@example.com" && e.Subject == "Payment received for 2025-03"
	})).Return(nil)

	// Act
	payment, err := s.service.Record(ctx, req)

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.PaymentSucceeded, payment.Status)
	s.Equal(domain.PaymentCash, payment.Method)
	s.Equal(domain.InvoicePaid, invoice.Status)
	s.Require().NotNil(invoice.PaidAt)
	s.Equal(s.now, *invoice.PaidAt)
	s.notifier.AssertExpectations(s.T())
	s.mail.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestRecord_PartialPayment() {
	// Arrange
	ctx := ownerCtx()
	invoice := openInvoice()
	req := dto.CreatePaymentRequest{InvoiceID: "inv-1", Amount: dec("1000000"), Method: "bank_transfer"}

	s.repos.invoice.On("LockByID", ctx, "inv-1").Return(invoice, nil)
	s.repos.payment.On("Create", ctx, mock.Anything).Return(nil)
	s.repos.payment.On("SumSucceeded", ctx, "inv-1").Return(dec("1000000"), nil)
	s.repos.invoice.On("Update", ctx, invoice).Return(nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)

	// Act
	_, err := s.service.Record(ctx, req)

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.InvoicePartiallyPaid, invoice.Status)
	s.True(dec("2500000").Equal(invoice.Outstanding()))
	s.notifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mail.AssertNotCalled(s.T(), "SendEmail", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestRecord_Overpayment() {
	// Arrange
	ctx := ownerCtx()
	invoice := openInvoice()
	invoice.PaidAmount = dec("3000000")
	invoice.Status = domain.InvoicePartiallyPaid
	s.repos.invoice.On("LockByID", ctx, "inv-1").Return(invoice, nil)

	// Act
	_, err := s.service.Record(ctx, dto.CreatePaymentRequest{InvoiceID: "inv-1", Amount: dec("600000"), Method: "cash"})

	// Assert
	s.ErrorIs(err, ErrAmountTooLarge)
	s.repos.payment.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestRecord_RejectsNonPositiveAmount() {
	// Act
	_, err := s.service.Record(ownerCtx(), dto.CreatePaymentRequest{InvoiceID: "inv-1", Amount: decimal.Zero, Method: "cash"})

	// Assert
	s.ErrorIs(err, ErrInvalidAmount)
}

func (s *PaymentServiceTestSuite) TestRecord_CancelledInvoice() {
	// Arrange
	ctx := ownerCtx()
	invoice := openInvoice()
	invoice.Status = domain.InvoiceCancelled
	s.repos.invoice.On("LockByID", ctx, "inv-1").Return(invoice, nil)

	// Act
	_, err := s.service.Record(ctx, dto.CreatePaymentRequest{InvoiceID: "inv-1", Amount: dec("1"), Method: "cash"})

	// Assert
	s.ErrorIs(err, ErrInvoiceNotEditable)
}

func (s *PaymentServiceTestSuite) TestCreateIntent_Disabled() {
	// Arrange
	s.gateway.On("Enabled").Return(false)

	// Act
	_, err := s.service.CreateIntent(tenantCtx(), dto.CreatePaymentIntentRequest{InvoiceID: "inv-1"})

	// Assert
	s.ErrorIs(err, ErrPaymentsDisabled)
}

func (s *PaymentServiceTestSuite) TestCreateIntent_TenantCannotPayOthersInvoice() {
	// Arrange
	ctx := tenantCtx()
	invoice := openInvoice()
	invoice.TenantID = "tenant-2"
	s.gateway.On("Enabled").Return(true)
	s.repos.invoice.On("GetByID", ctx, "inv-1").Return(invoice, nil)

	// Act
	_, err := s.service.CreateIntent(ctx, dto.CreatePaymentIntentRequest{InvoiceID: "inv-1"})

	// Assert
	s.ErrorIs(err, ErrInvoiceNotFound)
	s.gateway.AssertNotCalled(s.T(), "CreateIntent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreateIntent_StoresPendingPayment() {
	// Arrange
	ctx := tenantCtx()
	invoice := openInvoice()
	invoice.PaidAmount = dec("500000")
	invoice.Status = domain.InvoicePartiallyPaid

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("Currency").Return("vnd")
	s.repos.invoice.On("GetByID", ctx, "inv-1").Return(invoice, nil)
	s.gateway.On("CreateIntent", ctx, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("3000000")) }), mock.Anything, "invoice-inv-1-500000.00").
		Return(&PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: dec("3000000"), Status: "requires_payment_method"}, nil)
	s.repos.payment.On("GetByProviderRef", ctx, "pi_1").Return(nil, repository.ErrNotFound)
	s.repos.payment.On("Create", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentPending && p.Method == domain.PaymentStripe && *p.ProviderRef == "pi_1"
	})).Return(nil)

	// Act
	resp, err := s.service.CreateIntent(ctx, dto.CreatePaymentIntentRequest{InvoiceID: "inv-1"})

	// Assert
	s.Require().NoError(err)
	s.Equal("pi_1", resp.PaymentIntentID)
	s.Equal("pi_1_secret", resp.ClientSecret)
	s.Equal("vnd", resp.Currency)
	s.True(dec("3000000").Equal(resp.Amount))
	s.repos.payment.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestCreateIntent_RetryReopensFailedPayment() {
	// Arrange
	ctx := tenantCtx()
	failed := &domain.Payment{Base: domain.Base{ID: "pay-1"}, InvoiceID: "inv-1", Amount: dec("3500000"), Method: domain.PaymentStripe, Status: domain.PaymentFailed}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("Currency").Return("vnd")
	s.repos.invoice.On("GetByID", ctx, "inv-1").Return(openInvoice(), nil)
	s.gateway.On("CreateIntent", ctx, mock.Anything, mock.Anything, "invoice-inv-1-0.00").
		Return(&PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: dec("3500000")}, nil)
	s.repos.payment.On("GetByProviderRef", ctx, "pi_1").Return(failed, nil)
	s.repos.payment.On("Update", ctx, failed).Return(nil)

	// Act
	resp, err := s.service.CreateIntent(ctx, dto.CreatePaymentIntentRequest{InvoiceID: "inv-1"})

	// Assert
	s.Require().NoError(err)
	s.Equal("pay-1", resp.PaymentID)
	s.Equal(domain.PaymentPending, failed.Status)
	s.repos.payment.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestWebhook_BadSignature() {
	// Arrange
	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", []byte("{}"), "t=1,v1=bad").Return(nil, errors.New("signature mismatch"))

	// Act
	err := s.service.Webhook(context.Background(), []byte("{}"), "t=1,v1=bad")

	// Assert
	s.ErrorIs(err, ErrInvalidSignature)
	s.ErrorIs(err, ErrValidation)
}

func (s *PaymentServiceTestSuite) TestWebhook_SucceededSettlesInvoice() {
	// Arrange
	invoice := openInvoice()
	pending := &domain.Payment{Base: domain.Base{ID: "pay-1"}, OwnerID: "owner-1", InvoiceID: "inv-1", TenantID: "tenant-1", Amount: dec("3500000"), Status: domain.PaymentPending}
	event := &GatewayEvent{Type: EventIntentSucceeded, Intent: &PaymentIntent{ID: "pi_1", Amount: dec("3500000"), Status: IntentSucceeded}}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(event, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_1").Return(pending, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.repos.payment.On("Update", mock.Anything, pending).Return(nil)
	s.repos.payment.On("SumSucceeded", mock.Anything, "inv-1").Return(dec("3500000"), nil)
	s.repos.invoice.On("Update", mock.Anything, invoice).Return(nil)
	s.repos.tenant.On("GetByID", mock.Anything, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
	s.repos.owner.On("GetByID", mock.Anything, "owner-1").Return(&domain.Owner{UserID: "user-owner"}, nil)
	s.notifier.On("Notify", mock.Anything, "user-owner", domain.NotificationInvoicePaid, mock.Anything, mock.Anything, "inv-1").Return()

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{"id":"evt_1"}`), "sig")

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.PaymentSucceeded, pending.Status)
	s.Equal(domain.InvoicePaid, invoice.Status)
	s.notifier.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestWebhook_ReplayIsNoop() {
	// Arrange
	settled := &domain.Payment{Base: domain.Base{ID: "pay-1"}, OwnerID: "owner-1", InvoiceID: "inv-1", Status: domain.PaymentSucceeded}
	event := &GatewayEvent{Type: EventIntentSucceeded, Intent: &PaymentIntent{ID: "pi_1", Status: IntentSucceeded}}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(event, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_1").Return(settled, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(openInvoice(), nil)

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{}`), "sig")

	// Assert
	s.NoError(err)
	s.repos.payment.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.repos.payment.AssertNotCalled(s.T(), "SumSucceeded", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestWebhook_FailedIntentMarksPaymentFailed() {
	// Arrange
	pending := &domain.Payment{Base: domain.Base{ID: "pay-1"}, OwnerID: "owner-1", InvoiceID: "inv-1", Status: domain.PaymentPending}
	event := &GatewayEvent{Type: EventIntentFailed, Intent: &PaymentIntent{ID: "pi_1", Status: IntentFailed}}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(event, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_1").Return(pending, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(openInvoice(), nil)
	s.repos.payment.On("Update", mock.Anything, pending).Return(nil)

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{}`), "sig")

	// Assert
	s.NoError(err)
	s.Equal(domain.PaymentFailed, pending.Status)
	s.repos.invoice.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestWebhook_SucceededAfterFailedSettlesInvoice() {
	// Arrange
	invoice := openInvoice()
	payment := &domain.Payment{Base: domain.Base{ID: "pay-1"}, OwnerID: "owner-1", InvoiceID: "inv-1", TenantID: "tenant-1", Amount: dec("3500000"), Status: domain.PaymentPending}
	declined := &GatewayEvent{Type: EventIntentFailed, Intent: &PaymentIntent{ID: "pi_1", Status: IntentFailed}}
	retried := &GatewayEvent{Type: EventIntentSucceeded, Intent: &PaymentIntent{ID: "pi_1", Amount: dec("3500000"), Status: IntentSucceeded}}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", []byte(`{"id":"evt_1"}`), "sig").Return(declined, nil)
	s.gateway.On("ParseWebhook", []byte(`{"id":"evt_2"}`), "sig").Return(retried, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_1").Return(payment, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.repos.payment.On("Update", mock.Anything, payment).Return(nil)
	s.repos.payment.On("SumSucceeded", mock.Anything, "inv-1").Return(dec("3500000"), nil)
	s.repos.invoice.On("Update", mock.Anything, invoice).Return(nil)
	s.repos.tenant.On("GetByID", mock.Anything, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
	s.repos.owner.On("GetByID", mock.Anything, "owner-1").Return(&domain.Owner{UserID: "user-owner"}, nil)
	s.notifier.On("Notify", mock.Anything, "user-owner", domain.NotificationInvoicePaid, mock.Anything, mock.Anything, "inv-1").Return()

	// Act
	errDeclined := s.service.Webhook(context.Background(), []byte(`{"id":"evt_1"}`), "sig")
	statusAfterDecline := payment.Status
	errRetried := s.service.Webhook(context.Background(), []byte(`{"id":"evt_2"}`), "sig")

	// Assert
	s.Require().NoError(errDeclined)
	s.Require().NoError(errRetried)
	s.Equal(domain.PaymentFailed, statusAfterDecline)
	s.Equal(domain.PaymentSucceeded, payment.Status)
	s.NotNil(payment.PaidAt)
	s.Equal(domain.InvoicePaid, invoice.Status)
	s.True(dec("3500000").Equal(invoice.PaidAmount))
	s.repos.payment.AssertNumberOfCalls(s.T(), "Update", 2)
	s.notifier.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestWebhook_FailedAfterSucceededIsIgnored() {
	// Arrange
	settled := &domain.Payment{Base: domain.Base{ID: "pay-1"}, OwnerID: "owner-1", InvoiceID: "inv-1", Status: domain.PaymentSucceeded}
	event := &GatewayEvent{Type: EventIntentFailed, Intent: &PaymentIntent{ID: "pi_1", Status: IntentFailed}}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(event, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_1").Return(settled, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(openInvoice(), nil)

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{}`), "sig")

	// Assert
	s.NoError(err)
	s.Equal(domain.PaymentSucceeded, settled.Status)
	s.repos.payment.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestWebhook_CardAfterCashReportsOverpayment() {
	// Arrange
	invoice := openInvoice()
	invoice.PaidAmount = dec("3000000")
	invoice.Status = domain.InvoicePartiallyPaid
	pending := &domain.Payment{Base: domain.Base{ID: "pay-2"}, OwnerID: "owner-1", InvoiceID: "inv-1", TenantID: "tenant-1", Amount: dec("3500000"), Status: domain.PaymentPending}
	event := &GatewayEvent{Type: EventIntentSucceeded, Intent: &PaymentIntent{ID: "pi_1", Amount: dec("3500000"), Status: IntentSucceeded}}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(event, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_1").Return(pending, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.repos.payment.On("Update", mock.Anything, pending).Return(nil)
	s.repos.payment.On("SumSucceeded", mock.Anything, "inv-1").Return(dec("6500000"), nil)
	s.repos.invoice.On("Update", mock.Anything, invoice).Return(nil)
	s.repos.tenant.On("GetByID", mock.Anything, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
	s.repos.owner.On("GetByID", mock.Anything, "owner-1").Return(&domain.Owner{UserID: "user-owner"}, nil)
	s.notifier.On("Notify", mock.Anything, "user-owner", domain.NotificationPaymentOverpaid, "Payment exceeds balance", mock.Anything, "pay-2").Return().Once()
	s.notifier.On("Notify", mock.Anything, "user-owner", domain.NotificationInvoicePaid, mock.Anything, mock.Anything, "inv-1").Return()

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{}`), "sig")

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.PaymentSucceeded, pending.Status)
	s.Contains(pending.Note, "refund due")
	s.Equal(domain.InvoicePaid, invoice.Status)
	s.True(invoice.Outstanding().IsZero())
	s.notifier.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestWebhook_ExactBalanceIsNotOverpayment() {
	// Arrange
	invoice := openInvoice()
	invoice.PaidAmount = dec("500000")
	invoice.Status = domain.InvoicePartiallyPaid
	pending := &domain.Payment{Base: domain.Base{ID: "pay-2"}, OwnerID: "owner-1", InvoiceID: "inv-1", TenantID: "tenant-1", Amount: dec("3000000"), Status: domain.PaymentPending}
	event := &GatewayEvent{Type: EventIntentSucceeded, Intent: &PaymentIntent{ID: "pi_1", Amount: dec("3000000"), Status: IntentSucceeded}}

	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(event, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_1").Return(pending, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(invoice, nil)
	s.repos.payment.On("Update", mock.Anything, pending).Return(nil)
	s.repos.payment.On("SumSucceeded", mock.Anything, "inv-1").Return(dec("3500000"), nil)
	s.repos.invoice.On("Update", mock.Anything, invoice).Return(nil)
	s.repos.tenant.On("GetByID", mock.Anything, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
	s.repos.owner.On("GetByID", mock.Anything, "owner-1").Return(&domain.Owner{UserID: "user-owner"}, nil)
	s.notifier.On("Notify", mock.Anything, "user-owner", domain.NotificationInvoicePaid, mock.Anything, mock.Anything, "inv-1").Return()

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{}`), "sig")

	// Assert
	s.Require().NoError(err)
	s.Empty(pending.Note)
	s.notifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything, domain.NotificationPaymentOverpaid, mock.Anything, mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestWebhook_UnknownIntentIsAcknowledged() {
	// Arrange
	event := &GatewayEvent{Type: EventIntentSucceeded, Intent: &PaymentIntent{ID: "pi_unknown", Status: IntentSucceeded}}
	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(event, nil)
	s.repos.payment.On("GetByProviderRef", mock.Anything, "pi_unknown").Return(nil, repository.ErrNotFound)

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{}`), "sig")

	// Assert
	s.NoError(err)
}

func (s *PaymentServiceTestSuite) TestWebhook_IgnoresOtherEvents() {
	// Arrange
	s.gateway.On("Enabled").Return(true)
	s.gateway.On("ParseWebhook", mock.Anything, "sig").Return(&GatewayEvent{Type: "charge.refunded"}, nil)

	// Act
	err := s.service.Webhook(context.Background(), []byte(`{}`), "sig")

	// Assert
	s.NoError(err)
	s.repos.payment.AssertNotCalled(s.T(), "GetByProviderRef", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestList_TenantSeesOwnPayments() {
	// Arrange
	ctx := tenantCtx()
	s.repos.payment.On("List", ctx, domain.PaymentFilter{TenantID: "tenant-1"}).Return([]domain.Payment{}, int64(0), nil)

	// Act
	_, _, err := s.service.List(ctx, domain.PaymentFilter{TenantID: "tenant-2"})

	// Assert
	s.NoError(err)
	s.repos.payment.AssertExpectations(s.T())
}
