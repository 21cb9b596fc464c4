package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

type AdminReportRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAdminReportRepository(writerDB, readerDB *gorm.DB) *AdminReportRepository {
	return &AdminReportRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AdminReportRepository) Create(ctx context.Context, report *domain.ReportAdmin) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("Owner").Create(report).Error)
}

func (r *AdminReportRepository) GetByID(ctx context.Context, id string) (*domain.ReportAdmin, error) {
	var report domain.ReportAdmin
	if err := r.readerDB.WithContext(ctx).Preload("Owner").First(&report, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &report, nil
}

func (r *AdminReportRepository) Update(ctx context.Context, report *domain.ReportAdmin) error {
	return updateAll(r.writerDB.WithContext(ctx), report)
}

func (r *AdminReportRepository) List(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportAdmin, int64, error) {
	db := r.readerDB.WithContext(ctx).Model(&domain.ReportAdmin{})
	if filter.OwnerID != "" {
		db = db.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var reports []domain.ReportAdmin
	total, err := countAndFind(db, filter.Pagination, "created_at DESC", &reports, "Owner")
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}
