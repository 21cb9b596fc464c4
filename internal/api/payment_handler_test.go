package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) Record(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CreateIntent(ctx context.Context, req dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentIntentResponse), args.Error(1)
}

func (m *MockPaymentService) Confirm(ctx context.Context, req dto.ConfirmPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) Webhook(ctx context.Context, payload []byte, signature string) error {
	args := m.Called(ctx, payload, signature)
	return args.Error(0)
}

func (m *MockPaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}

type PaymentHandlerTestSuite struct {
	suite.Suite
	mockService *MockPaymentService
	handler     *PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	s.mockService = new(MockPaymentService)
	s.handler = NewPaymentHandler(s.mockService)
}

func TestPaymentHandler(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_Created() {
	// Arrange
	req := dto.CreatePaymentRequest{
		InvoiceID: "6f1c1a0e-8a57-4c52-9c61-2f0b5f7d9a11",
		Amount:    decimal.NewFromInt(500000),
		Method:    "cash",
	}
	payment := &domain.Payment{Base: domain.Base{ID: "payment-1"}, Amount: req.Amount, Method: domain.PaymentMethod("cash")}
	s.mockService.On("Record", mock.Anything, mock.MatchedBy(func(r dto.CreatePaymentRequest) bool {
		return r.InvoiceID == req.InvoiceID && r.Amount.Equal(req.Amount) && r.Method == "cash"
	})).Return(payment, nil)
	c, w := jsonContext(http.MethodPost, "/payments", req)

	// Act
	s.handler.RecordPayment(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"id":"payment-1"`)
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_UnknownMethod() {
	// Arrange
	c, w := jsonContext(http.MethodPost, "/payments", map[string]string{
		"invoice_id": "6f1c1a0e-8a57-4c52-9c61-2f0b5f7d9a11",
		"amount":     "100",
		"method":     "bitcoin",
	})

	// Act
	s.handler.RecordPayment(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *PaymentHandlerTestSuite) TestRecordPayment_Overpayment() {
	// Arrange
	s.mockService.On("Record", mock.Anything, mock.Anything).Return(nil, service.ErrAmountTooLarge)
	c, w := jsonContext(http.MethodPost, "/payments", dto.CreatePaymentRequest{
		InvoiceID: "6f1c1a0e-8a57-4c52-9c61-2f0b5f7d9a11",
		Amount:    decimal.NewFromInt(99999999),
		Method:    "bank_transfer",
	})

	// Act
	s.handler.RecordPayment(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "amount exceeds outstanding balance")
}

func (s *PaymentHandlerTestSuite) TestWebhook_PassesRawBodyAndSignature() {
	// Arrange
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	s.mockService.On("Webhook", mock.Anything, payload, "t=1,v1=abc").Return(nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(payload))
	c.Request.Header.Set("Stripe-Signature", "t=1,v1=abc")

	// Act
	s.handler.Webhook(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *PaymentHandlerTestSuite) TestWebhook_BadSignature() {
	// Arrange
	s.mockService.On("Webhook", mock.Anything, mock.Anything, "").Return(service.ErrInvalidSignature)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader([]byte("{}")))

	// Act
	s.handler.Webhook(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *PaymentHandlerTestSuite) TestListPayments_DateRange() {
	// Arrange
	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f domain.PaymentFilter) bool {
		return f.Method == "cash" && f.PaidFrom != nil && f.PaidFrom.Equal(from) && f.PaidTo != nil && f.PaidTo.Equal(to)
	})).Return([]domain.Payment{}, int64(0), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payments?method=cash&from=2025-03-01&to=2025-03-31", nil)

	// Act
	s.handler.ListPayments(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *PaymentHandlerTestSuite) TestListPayments_InvalidRange() {
	tests := []struct {
		name  string
		query string
	}{
		{name: "bad from", query: "from=03/01/2025"},
		{name: "bad to", query: "to=yesterday"},
		{name: "from after to", query: "from=2025-04-01&to=2025-03-01"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/payments?"+tt.query, nil)

			s.handler.ListPayments(c)

			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.mockService.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}
