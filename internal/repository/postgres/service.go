package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

const servicesTable = "services"

type ServiceRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewServiceRepository(writerDB, readerDB *gorm.DB) *ServiceRepository {
	return &ServiceRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *domain.Service) error {
	return translateError(r.writerDB.WithContext(ctx).Create(svc).Error)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	db, err := getOwnerScope(r.readerDB, ctx, servicesTable)
	if err != nil {
		return nil, err
	}

	var svc domain.Service
	if err := db.First(&svc, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &svc, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *domain.Service) error {
	db, err := getOwnerScope(r.writerDB, ctx, servicesTable)
	if err != nil {
		return err
	}
	return updateAll(db, svc)
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	db, err := getOwnerScope(r.writerDB, ctx, servicesTable)
	if err != nil {
		return err
	}
	if err := deleteByID(db, &domain.Service{}, id); err != nil {
		return err
	}
	return r.writerDB.WithContext(ctx).Where("service_id = ?", id).Delete(&domain.RoomService{}).Error
}

func (r *ServiceRepository) List(ctx context.Context, houseID string, page domain.Pagination) ([]domain.Service, int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, servicesTable)
	if err != nil {
		return nil, 0, err
	}
	db = db.Model(&domain.Service{})
	if houseID != "" {
		db = db.Where("boarding_house_id = ?", houseID)
	}

	var services []domain.Service
	total, err := countAndFind(db, page, "name ASC", &services)
	if err != nil {
		return nil, 0, err
	}
	return services, total, nil
}
