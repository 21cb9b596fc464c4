package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
)

const roomsTable = "rooms"

type RoomRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewRoomRepository(writerDB, readerDB *gorm.DB) *RoomRepository {
	return &RoomRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("BoardingHouse").Create(room).Error)
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	db, err := getOwnerScope(r.readerDB, ctx, roomsTable)
	if err != nil {
		return nil, err
	}

	var room domain.Room
	if err := db.First(&room, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &room, nil
}

// LockByID reads the room with a row lock. Only meaningful inside a transaction.
func (r *RoomRepository) LockByID(ctx context.Context, id string) (*domain.Room, error) {
	db, err := getOwnerScope(r.writerDB, ctx, roomsTable)
	if err != nil {
		return nil, err
	}

	var room domain.Room
	if err := forUpdate(db).First(&room, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &room, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	db, err := getOwnerScope(r.writerDB, ctx, roomsTable)
	if err != nil {
		return err
	}
	return updateAll(db, room)
}

func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	db, err := getOwnerScope(r.writerDB, ctx, roomsTable)
	if err != nil {
		return err
	}
	return deleteByID(db, &domain.Room{}, id)
}

func (r *RoomRepository) List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, roomsTable)
	if err != nil {
		return nil, 0, err
	}
	db = db.Model(&domain.Room{})
	if filter.BoardingHouseID != "" {
		db = db.Where("boarding_house_id = ?", filter.BoardingHouseID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}

	var rooms []domain.Room
	total, err := countAndFind(db, filter.Pagination, "floor ASC, name ASC", &rooms)
	if err != nil {
		return nil, 0, err
	}
	return rooms, total, nil
}

func (r *RoomRepository) Count(ctx context.Context) (int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, roomsTable)
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.Model(&domain.Room{}).Count(&count).Error
	return count, err
}

// AttachService links a service to a room. The caller checks both belong to the owner.
func (r *RoomRepository) AttachService(ctx context.Context, roomService *domain.RoomService) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("Service").Create(roomService).Error)
}

func (r *RoomRepository) DetachService(ctx context.Context, roomID, serviceID string) error {
	res := r.writerDB.WithContext(ctx).
		Where("room_id = ? AND service_id = ?", roomID, serviceID).
		Delete(&domain.RoomService{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *RoomRepository) ListServices(ctx context.Context, roomID string) ([]domain.RoomService, error) {
	var roomServices []domain.RoomService
	err := r.readerDB.WithContext(ctx).
		Preload("Service").
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Find(&roomServices).Error
	if err != nil {
		return nil, err
	}
	return roomServices, nil
}
