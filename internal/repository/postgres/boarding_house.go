package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

const boardingHousesTable = "boarding_houses"

type BoardingHouseRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBoardingHouseRepository(writerDB, readerDB *gorm.DB) *BoardingHouseRepository {
	return &BoardingHouseRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BoardingHouseRepository) Create(ctx context.Context, house *domain.BoardingHouse) error {
	return translateError(r.writerDB.WithContext(ctx).Create(house).Error)
}

func (r *BoardingHouseRepository) GetByID(ctx context.Context, id string) (*domain.BoardingHouse, error) {
	db, err := getOwnerScope(r.readerDB, ctx, boardingHousesTable)
	if err != nil {
		return nil, err
	}

	var house domain.BoardingHouse
	if err := db.First(&house, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &house, nil
}

func (r *BoardingHouseRepository) Update(ctx context.Context, house *domain.BoardingHouse) error {
	db, err := getOwnerScope(r.writerDB, ctx, boardingHousesTable)
	if err != nil {
		return err
	}
	return updateAll(db, house)
}

func (r *BoardingHouseRepository) Delete(ctx context.Context, id string) error {
	db, err := getOwnerScope(r.writerDB, ctx, boardingHousesTable)
	if err != nil {
		return err
	}
	return deleteByID(db, &domain.BoardingHouse{}, id)
}

func (r *BoardingHouseRepository) List(ctx context.Context, page domain.Pagination) ([]domain.BoardingHouse, int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, boardingHousesTable)
	if err != nil {
		return nil, 0, err
	}
	db = db.Model(&domain.BoardingHouse{})

	var houses []domain.BoardingHouse
	total, err := countAndFind(db, page, "created_at DESC", &houses)
	if err != nil {
		return nil, 0, err
	}
	return houses, total, nil
}

func (r *BoardingHouseRepository) CountRooms(ctx context.Context, houseID string) (int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, roomsTable)
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.Model(&domain.Room{}).Where("boarding_house_id = ?", houseID).Count(&count).Error
	return count, err
}
