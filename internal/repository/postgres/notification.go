package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
)

// NotificationRepository scopes by recipient user rather than by owner.
type NotificationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewNotificationRepository(writerDB, readerDB *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	return translateError(r.writerDB.WithContext(ctx).Create(notification).Error)
}

func (r *NotificationRepository) List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, int64, error) {
	db := r.readerDB.WithContext(ctx).Model(&domain.Notification{}).Where("user_id = ?", filter.UserID)
	if filter.UnreadOnly {
		db = db.Where("is_read = ?", false)
	}

	var notifications []domain.Notification
	total, err := countAndFind(db, filter.Pagination, "created_at DESC", &notifications)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	res := r.writerDB.WithContext(ctx).Model(&domain.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res := r.writerDB.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).Model(&domain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}
