package service

import (
	"context"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type NotificationService struct {
	repo      repository.Repository
	publisher NotificationPublisher
	logger    *logger.Logger
}

func NewNotificationService(repo repository.Repository, publisher NotificationPublisher, logger *logger.Logger) *NotificationService {
	return &NotificationService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Notify stores a notification and publishes it. Failures are logged only.
func (s *NotificationService) Notify(ctx context.Context, userID string, kind domain.NotificationType, title, message, referenceID string) {
	if userID == "" {
		return
	}
	notification := &domain.Notification{
		UserID:      userID,
		Title:       title,
		Message:     message,
		Type:        kind,
		ReferenceID: referenceID,
	}
	if err := s.repo.Notification().Create(ctx, notification); err != nil {
		s.logger.Error("failed to store notification", err)
		return
	}
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, notification); err != nil {
		s.logger.Error("failed to publish notification", err)
	}
}

func (s *NotificationService) List(ctx context.Context, unreadOnly bool, page domain.Pagination) ([]domain.Notification, int64, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	notifications, total, err := s.repo.Notification().List(ctx, domain.NotificationFilter{
		Pagination: page,
		UserID:     userID,
		UnreadOnly: unreadOnly,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, total, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return err
	}
	return notFound(s.repo.Notification().MarkRead(ctx, userID, id), ErrNotificationNotFound)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.Notification().MarkAllRead(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return 0, err
	}
	return s.repo.Notification().CountUnread(ctx, userID)
}
