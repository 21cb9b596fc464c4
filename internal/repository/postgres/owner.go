package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

type OwnerRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewOwnerRepository(writerDB, readerDB *gorm.DB) *OwnerRepository {
	return &OwnerRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *OwnerRepository) Create(ctx context.Context, owner *domain.Owner) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("User").Create(owner).Error)
}

func (r *OwnerRepository) GetByID(ctx context.Context, id string) (*domain.Owner, error) {
	var owner domain.Owner
	if err := r.readerDB.WithContext(ctx).Preload("User").First(&owner, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &owner, nil
}

func (r *OwnerRepository) GetByUserID(ctx context.Context, userID string) (*domain.Owner, error) {
	var owner domain.Owner
	if err := r.readerDB.WithContext(ctx).First(&owner, "user_id = ?", userID).Error; err != nil {
		return nil, translateError(err)
	}
	return &owner, nil
}

func (r *OwnerRepository) Update(ctx context.Context, owner *domain.Owner) error {
	return updateAll(r.writerDB.WithContext(ctx), owner)
}

func (r *OwnerRepository) List(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, int64, error) {
	db := r.readerDB.WithContext(ctx).Model(&domain.Owner{})
	if filter.Status != "" {
		db = db.Where("owners.status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		db = db.Joins("JOIN users ON users.id = owners.user_id").
			Where("LOWER(owners.business_name) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(users.full_name) LIKE ?",
				pattern, pattern, pattern)
	}

	var owners []domain.Owner
	total, err := countAndFind(db, filter.Pagination, "owners.created_at DESC", &owners, "User")
	if err != nil {
		return nil, 0, err
	}
	return owners, total, nil
}
