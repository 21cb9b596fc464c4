package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

const tenantsTable = "tenants"

type TenantRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewTenantRepository(writerDB, readerDB *gorm.DB) *TenantRepository {
	return &TenantRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *TenantRepository) Create(ctx context.Context, tenant *domain.Tenant) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("Room").Create(tenant).Error)
}

func (r *TenantRepository) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	db, err := getOwnerScope(r.readerDB, ctx, tenantsTable)
	if err != nil {
		return nil, err
	}

	var tenant domain.Tenant
	if err := db.Preload("Room").First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) GetByUserID(ctx context.Context, userID string) (*domain.Tenant, error) {
	var tenant domain.Tenant
	if err := r.readerDB.WithContext(ctx).First(&tenant, "user_id = ?", userID).Error; err != nil {
		return nil, translateError(err)
	}
	return &tenant, nil
}

func (r *TenantRepository) Update(ctx context.Context, tenant *domain.Tenant) error {
	db, err := getOwnerScope(r.writerDB, ctx, tenantsTable)
	if err != nil {
		return err
	}
	return updateAll(db, tenant)
}

func (r *TenantRepository) Delete(ctx context.Context, id string) error {
	db, err := getOwnerScope(r.writerDB, ctx, tenantsTable)
	if err != nil {
		return err
	}
	return deleteByID(db, &domain.Tenant{}, id)
}

func (r *TenantRepository) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, tenantsTable)
	if err != nil {
		return nil, 0, err
	}
	db = db.Model(&domain.Tenant{})
	if filter.RoomID != "" {
		db = db.Where("room_id = ?", filter.RoomID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		db = db.Where("LOWER(full_name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?", pattern, pattern, pattern)
	}

	var tenants []domain.Tenant
	total, err := countAndFind(db, filter.Pagination, "full_name ASC", &tenants, "Room")
	if err != nil {
		return nil, 0, err
	}
	return tenants, total, nil
}
