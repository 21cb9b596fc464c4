package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
)

type MessageType string

const (
	MessageTypeEmail        MessageType = "EMAIL"
	MessageTypeIndexTenant  MessageType = "INDEX_TENANT"
	MessageTypeDeleteTenant MessageType = "DELETE_TENANT"
)

type Message struct {
	Type      MessageType            `json:"type"`
	OwnerID   string                 `json:"owner_id,omitempty"`
	Email     *domain.Email          `json:"email,omitempty"`
	Tenant    *domain.TenantDocument `json:"tenant,omitempty"`
	TenantID  string                 `json:"tenant_id,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
	// DecodeErr is set when the body is not a Message. Such messages can
	// never succeed and should be deleted.
	DecodeErr error
}

// SQSAPI is the subset of the SQS client used here.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type SQSService struct {
	client        SQSAPI
	mailQueueURL  string
	indexQueueURL string
}

func NewSQSService(client SQSAPI, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:        client,
		mailQueueURL:  config.MailQueueURL,
		indexQueueURL: config.IndexQueueURL,
	}
}

func (s *SQSService) MailQueueURL() string {
	return s.mailQueueURL
}

func (s *SQSService) IndexQueueURL() string {
	return s.indexQueueURL
}

func (s *SQSService) SendEmail(ctx context.Context, email *domain.Email) error {
	if len(email.To) == 0 {
		return nil
	}
	msg := Message{
		Type:      MessageTypeEmail,
		Email:     email,
		Timestamp: time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.mailQueueURL)
}

func (s *SQSService) SendIndexTenantMessage(ctx context.Context, doc *domain.TenantDocument) error {
	msg := Message{
		Type:      MessageTypeIndexTenant,
		OwnerID:   doc.OwnerID,
		Tenant:    doc,
		TenantID:  doc.ID,
		Timestamp: time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendDeleteTenantMessage(ctx context.Context, ownerID, tenantID string) error {
	msg := Message{
		Type:      MessageTypeDeleteTenant,
		OwnerID:   ownerID,
		TenantID:  tenantID,
		Timestamp: time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		received := ReceivedMessage{ReceiptHandle: msg.ReceiptHandle}
		if err := json.Unmarshal([]byte(aws.ToString(msg.Body)), &received.Message); err != nil {
			received.DecodeErr = fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, received)
	}

	return messages, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
