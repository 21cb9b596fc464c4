package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

// SubscriptionRepository takes the owner id explicitly: the subscription
// gate runs before owner claims are trusted.
type SubscriptionRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSubscriptionRepository(writerDB, readerDB *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	return translateError(r.writerDB.WithContext(ctx).Create(sub).Error)
}

func (r *SubscriptionRepository) Update(ctx context.Context, sub *domain.Subscription) error {
	return updateAll(r.writerDB.WithContext(ctx), sub)
}

// GetLatestByOwner returns the subscription that ends last.
func (r *SubscriptionRepository) GetLatestByOwner(ctx context.Context, ownerID string) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := r.writerDB.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("expires_at DESC").
		First(&sub).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &sub, nil
}

func (r *SubscriptionRepository) HasActive(ctx context.Context, ownerID string, at time.Time) (bool, error) {
	var count int64
	err := r.readerDB.WithContext(ctx).Model(&domain.Subscription{}).
		Where("owner_id = ? AND status = ? AND starts_at <= ? AND expires_at > ?",
			ownerID, domain.SubscriptionActive, at, at).
		Count(&count).Error
	return count > 0, err
}

func (r *SubscriptionRepository) List(ctx context.Context, ownerID string, page domain.Pagination) ([]domain.Subscription, int64, error) {
	db := r.readerDB.WithContext(ctx).Model(&domain.Subscription{})
	if ownerID != "" {
		db = db.Where("owner_id = ?", ownerID)
	}

	var subs []domain.Subscription
	total, err := countAndFind(db, page, "expires_at DESC", &subs)
	if err != nil {
		return nil, 0, err
	}
	return subs, total, nil
}

// ExpireEnded flips active subscriptions past their end to expired.
func (r *SubscriptionRepository) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	res := r.writerDB.WithContext(ctx).Model(&domain.Subscription{}).
		Where("status = ? AND expires_at <= ?", domain.SubscriptionActive, now).
		Updates(map[string]any{"status": domain.SubscriptionExpired, "updated_at": now})
	return res.RowsAffected, res.Error
}
