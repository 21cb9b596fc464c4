package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service/queue"
)

type MockSearch struct {
	mock.Mock
}

func (m *MockSearch) Index(ctx context.Context, doc *domain.TenantDocument) error {
	return m.Called(ctx, doc).Error(0)
}

func (m *MockSearch) Delete(ctx context.Context, ownerID, tenantID string) error {
	return m.Called(ctx, ownerID, tenantID).Error(0)
}

func (m *MockSearch) Search(ctx context.Context, ownerID, query string, page domain.Pagination) ([]domain.TenantDocument, error) {
	args := m.Called(ctx, ownerID, query, page)
	docs, _ := args.Get(0).([]domain.TenantDocument)
	return docs, args.Error(1)
}

func (m *MockSearch) CreateIndex(ctx context.Context, ownerID string) error {
	return m.Called(ctx, ownerID).Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(email *domain.Email) error {
	return m.Called(email).Error(0)
}

func TestIndexHandler(t *testing.T) {
	ctx := context.Background()
	doc := &domain.TenantDocument{ID: "t1", OwnerID: "o1", FullName: "Nguyen Van A"}

	tests := []struct {
		name    string
		msg     queue.Message
		setup   func(m *MockSearch)
		wantErr error
	}{
		{
			name:  "index",
			msg:   queue.Message{Type: queue.MessageTypeIndexTenant, Tenant: doc},
			setup: func(m *MockSearch) { m.On("Index", ctx, doc).Return(nil) },
		},
		{
			name:  "delete",
			msg:   queue.Message{Type: queue.MessageTypeDeleteTenant, OwnerID: "o1", TenantID: "t1"},
			setup: func(m *MockSearch) { m.On("Delete", ctx, "o1", "t1").Return(nil) },
		},
		{
			name:    "index without document",
			msg:     queue.Message{Type: queue.MessageTypeIndexTenant},
			setup:   func(m *MockSearch) {},
			wantErr: ErrEmptyTenantMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			search := new(MockSearch)
			tt.setup(search)

			err := NewIndexHandler(search).Handle(ctx, tt.msg)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			search.AssertExpectations(t)
		})
	}
}

func TestIndexHandler_UnknownType(t *testing.T) {
	err := NewIndexHandler(new(MockSearch)).Handle(context.Background(), queue.Message{Type: queue.MessageTypeEmail})

	assert.ErrorContains(t, err, "unknown message type")
}

func TestMailHandler(t *testing.T) {
	email := &domain.Email{To: []string{"tenant@example.com"}, Subject: "Invoice 2025-03"}

	t.Run("sends", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", email).Return(nil)

		err := NewMailHandler(sender).Handle(context.Background(), queue.Message{Type: queue.MessageTypeEmail, Email: email})

		assert.NoError(t, err)
		sender.AssertExpectations(t)
	})

	t.Run("smtp failure is returned", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", email).Return(errors.New("421 try later"))

		err := NewMailHandler(sender).Handle(context.Background(), queue.Message{Type: queue.MessageTypeEmail, Email: email})

		assert.ErrorContains(t, err, "421")
	})

	t.Run("empty message", func(t *testing.T) {
		err := NewMailHandler(new(MockSender)).Handle(context.Background(), queue.Message{Type: queue.MessageTypeEmail})

		assert.ErrorIs(t, err, ErrEmptyEmailMessage)
	})

	t.Run("wrong queue", func(t *testing.T) {
		err := NewMailHandler(new(MockSender)).Handle(context.Background(), queue.Message{Type: queue.MessageTypeDeleteTenant})

		assert.ErrorContains(t, err, "unknown message type")
	})
}
