package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

type LicenseKeyRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewLicenseKeyRepository(writerDB, readerDB *gorm.DB) *LicenseKeyRepository {
	return &LicenseKeyRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *LicenseKeyRepository) CreateBatch(ctx context.Context, keys []domain.LicenseKey) error {
	if len(keys) == 0 {
		return nil
	}
	return translateError(r.writerDB.WithContext(ctx).CreateInBatches(keys, 100).Error)
}

func (r *LicenseKeyRepository) GetByID(ctx context.Context, id string) (*domain.LicenseKey, error) {
	var key domain.LicenseKey
	if err := r.readerDB.WithContext(ctx).First(&key, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &key, nil
}

// LockByKey reads a key by its code with a row lock.
func (r *LicenseKeyRepository) LockByKey(ctx context.Context, code string) (*domain.LicenseKey, error) {
	var key domain.LicenseKey
	if err := forUpdate(r.writerDB.WithContext(ctx)).First(&key, "key = ?", code).Error; err != nil {
		return nil, translateError(err)
	}
	return &key, nil
}

func (r *LicenseKeyRepository) Update(ctx context.Context, key *domain.LicenseKey) error {
	return updateAll(r.writerDB.WithContext(ctx), key)
}

func (r *LicenseKeyRepository) List(ctx context.Context, filter domain.LicenseKeyFilter) ([]domain.LicenseKey, int64, error) {
	db := r.readerDB.WithContext(ctx).Model(&domain.LicenseKey{})
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Plan != "" {
		db = db.Where("plan = ?", filter.Plan)
	}

	var keys []domain.LicenseKey
	total, err := countAndFind(db, filter.Pagination, "created_at DESC", &keys)
	if err != nil {
		return nil, 0, err
	}
	return keys, total, nil
}
