package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

const contractsTable = "rental_contracts"

type ContractRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewContractRepository(writerDB, readerDB *gorm.DB) *ContractRepository {
	return &ContractRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.RentalContract) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("Room", "Tenant").Create(contract).Error)
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	db, err := getOwnerScope(r.readerDB, ctx, contractsTable)
	if err != nil {
		return nil, err
	}

	var contract domain.RentalContract
	if err := db.Preload("Room").Preload("Tenant").First(&contract, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &contract, nil
}

// LockByID reads the contract with a row lock. Only meaningful inside a transaction.
func (r *ContractRepository) LockByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	db, err := getOwnerScope(r.writerDB, ctx, contractsTable)
	if err != nil {
		return nil, err
	}

	var contract domain.RentalContract
	if err := forUpdate(db).First(&contract, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &contract, nil
}

func (r *ContractRepository) Update(ctx context.Context, contract *domain.RentalContract) error {
	db, err := getOwnerScope(r.writerDB, ctx, contractsTable)
	if err != nil {
		return err
	}
	return updateAll(db, contract)
}

func (r *ContractRepository) List(ctx context.Context, filter domain.ContractFilter) ([]domain.RentalContract, int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, contractsTable)
	if err != nil {
		return nil, 0, err
	}
	db = db.Model(&domain.RentalContract{})
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.RoomID != "" {
		db = db.Where("room_id = ?", filter.RoomID)
	}
	if filter.TenantID != "" {
		db = db.Where("tenant_id = ?", filter.TenantID)
	}

	var contracts []domain.RentalContract
	total, err := countAndFind(db, filter.Pagination, "start_date DESC", &contracts, "Room", "Tenant")
	if err != nil {
		return nil, 0, err
	}
	return contracts, total, nil
}

func (r *ContractRepository) CountActiveByRoom(ctx context.Context, roomID string) (int64, error) {
	return r.countActive(ctx, "room_id", roomID)
}

func (r *ContractRepository) CountActiveByTenant(ctx context.Context, tenantID string) (int64, error) {
	return r.countActive(ctx, "tenant_id", tenantID)
}

func (r *ContractRepository) countActive(ctx context.Context, column, id string) (int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, contractsTable)
	if err != nil {
		return 0, err
	}

	var count int64
	err = db.Model(&domain.RentalContract{}).
		Where(column+" = ? AND status = ?", id, domain.ContractActive).
		Count(&count).Error
	return count, err
}

// GetActiveByRoom returns the oldest active contract on the room.
func (r *ContractRepository) GetActiveByRoom(ctx context.Context, roomID string) (*domain.RentalContract, error) {
	db, err := getOwnerScope(r.readerDB, ctx, contractsTable)
	if err != nil {
		return nil, err
	}

	var contract domain.RentalContract
	err = db.Preload("Tenant").
		Where("room_id = ? AND status = ?", roomID, domain.ContractActive).
		Order("start_date ASC").
		First(&contract).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &contract, nil
}

// ListActiveByHouse returns one active contract per room of the house, the oldest one.
func (r *ContractRepository) ListActiveByHouse(ctx context.Context, houseID string) ([]domain.RentalContract, error) {
	db, err := getOwnerScope(r.readerDB, ctx, contractsTable)
	if err != nil {
		return nil, err
	}

	var contracts []domain.RentalContract
	err = db.Preload("Tenant").
		Joins("JOIN rooms ON rooms.id = rental_contracts.room_id").
		Where("rooms.boarding_house_id = ? AND rental_contracts.status = ?", houseID, domain.ContractActive).
		Order("rental_contracts.room_id ASC, rental_contracts.start_date ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(contracts))
	out := contracts[:0]
	for _, c := range contracts {
		if seen[c.RoomID] {
			continue
		}
		seen[c.RoomID] = true
		out = append(out, c)
	}
	return out, nil
}

func (r *ContractRepository) ListExpiredAcrossOwners(ctx context.Context, now time.Time, limit int) ([]domain.RentalContract, error) {
	var contracts []domain.RentalContract
	err := r.writerDB.WithContext(ctx).
		Where("status = ? AND end_date IS NOT NULL AND end_date < ?", domain.ContractActive, now).
		Order("end_date ASC").
		Limit(sweepLimit(limit)).
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}
