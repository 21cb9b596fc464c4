package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

const reportsTable = "reports"

type ReportRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewReportRepository(writerDB, readerDB *gorm.DB) *ReportRepository {
	return &ReportRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ReportRepository) Create(ctx context.Context, report *domain.Report) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("Tenant").Create(report).Error)
}

func (r *ReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	db, err := getOwnerScope(r.readerDB, ctx, reportsTable)
	if err != nil {
		return nil, err
	}

	var report domain.Report
	if err := db.Preload("Tenant").First(&report, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &report, nil
}

func (r *ReportRepository) Update(ctx context.Context, report *domain.Report) error {
	db, err := getOwnerScope(r.writerDB, ctx, reportsTable)
	if err != nil {
		return err
	}
	return updateAll(db, report)
}

func (r *ReportRepository) List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, reportsTable)
	if err != nil {
		return nil, 0, err
	}
	db = db.Model(&domain.Report{})
	if filter.TenantID != "" {
		db = db.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var reports []domain.Report
	total, err := countAndFind(db, filter.Pagination, "created_at DESC", &reports, "Tenant")
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}
