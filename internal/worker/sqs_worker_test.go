package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service/queue"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type MockConsumer struct {
	mock.Mock
}

func (m *MockConsumer) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error) {
	args := m.Called(ctx, queueURL, maxMessages, waitTimeSeconds)
	msgs, _ := args.Get(0).([]queue.ReceivedMessage)
	return msgs, args.Error(1)
}

func (m *MockConsumer) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	args := m.Called(ctx, queueURL, receiptHandle)
	return args.Error(0)
}

type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(ctx context.Context, msg queue.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type SQSWorkerTestSuite struct {
	suite.Suite
	consumer *MockConsumer
	handler  *MockHandler
	worker   *SQSWorker
}

func (s *SQSWorkerTestSuite) SetupTest() {
	s.consumer = new(MockConsumer)
	s.handler = new(MockHandler)
	s.worker = NewSQSWorker("test", s.consumer, s.handler, "queue-url", logger.NewNop(), 1, time.Hour)
}

func handle(value string) *string {
	return &value
}

func (s *SQSWorkerTestSuite) TestProcessMessages_DeletesHandledMessages() {
	// Arrange
	ctx := context.Background()
	msg := queue.Message{Type: queue.MessageTypeEmail, Email: &domain.Email{To: []string{"a@example.com"}}}
	rh := handle("rh-1")
	s.consumer.On("ReceiveMessages", ctx, "queue-url", int32(10), int32(20)).
		Return([]queue.ReceivedMessage{{Message: msg, ReceiptHandle: rh}}, nil)
	s.handler.On("Handle", ctx, msg).Return(nil)
	s.consumer.On("DeleteMessage", ctx, "queue-url", rh).Return(nil)

	// Act
	err := s.worker.processMessages(ctx)

	// Assert
	s.NoError(err)
	s.consumer.AssertExpectations(s.T())
	s.handler.AssertExpectations(s.T())
}

func (s *SQSWorkerTestSuite) TestProcessMessages_KeepsFailedMessages() {
	// Arrange
	ctx := context.Background()
	msg := queue.Message{Type: queue.MessageTypeIndexTenant}
	s.consumer.On("ReceiveMessages", ctx, "queue-url", int32(10), int32(20)).
		Return([]queue.ReceivedMessage{{Message: msg, ReceiptHandle: handle("rh-1")}}, nil)
	s.handler.On("Handle", ctx, msg).Return(errors.New("opensearch down"))

	// Act
	err := s.worker.processMessages(ctx)

	// Assert
	s.NoError(err)
	s.consumer.AssertNotCalled(s.T(), "DeleteMessage", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SQSWorkerTestSuite) TestProcessMessages_DropsUndecodableMessages() {
	// Arrange
	ctx := context.Background()
	rh := handle("rh-bad")
	s.consumer.On("ReceiveMessages", ctx, "queue-url", int32(10), int32(20)).
		Return([]queue.ReceivedMessage{{ReceiptHandle: rh, DecodeErr: errors.New("bad json")}}, nil)
	s.consumer.On("DeleteMessage", ctx, "queue-url", rh).Return(nil)

	// Act
	err := s.worker.processMessages(ctx)

	// Assert
	s.NoError(err)
	s.handler.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
	s.consumer.AssertExpectations(s.T())
}

func (s *SQSWorkerTestSuite) TestProcessMessages_ReceiveError() {
	// Arrange
	ctx := context.Background()
	s.consumer.On("ReceiveMessages", ctx, "queue-url", int32(10), int32(20)).
		Return(nil, errors.New("throttled"))

	// Act
	err := s.worker.processMessages(ctx)

	// Assert
	s.ErrorContains(err, "failed to receive messages")
}

func (s *SQSWorkerTestSuite) TestStartStop() {
	// Arrange
	s.consumer.On("ReceiveMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Maybe()

	// Act
	s.worker.Start()
	s.worker.Stop()

	// Assert
	s.Error(s.worker.ctx.Err())
}

func TestSQSWorkerTestSuite(t *testing.T) {
	suite.Run(t, new(SQSWorkerTestSuite))
}
