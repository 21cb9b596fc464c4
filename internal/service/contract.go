package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

const defaultPaymentDay = 5

type ContractService struct {
	repo   repository.Repository
	index  IndexQueue
	logger *logger.Logger
	now    func() time.Time
}

func NewContractService(repo repository.Repository, index IndexQueue, logger *logger.Logger) *ContractService {
	return &ContractService{
		repo:   repo,
		index:  index,
		logger: logger,
		now:    time.Now,
	}
}

// Create signs a tenant into a room. The room row is locked so concurrent
// contracts cannot overfill it.
func (s *ContractService) Create(ctx context.Context, req dto.CreateContractRequest) (*domain.RentalContract, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	if req.MonthlyRent != nil && !req.MonthlyRent.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if req.Deposit.IsNegative() {
		return nil, ErrInvalidAmount
	}

	var (
		contract *domain.RentalContract
		tenant   *domain.Tenant
	)
	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		room, err := tx.Room().LockByID(ctx, req.RoomID)
		if err != nil {
			return notFound(err, ErrRoomNotFound)
		}
		if room.Status == domain.RoomMaintenance {
			return ErrRoomUnderMaintenance
		}
		tenant, err = tx.Tenant().GetByID(ctx, req.TenantID)
		if err != nil {
			return notFound(err, ErrTenantNotFound)
		}

		tenantActive, err := tx.Contract().CountActiveByTenant(ctx, tenant.ID)
		if err != nil {
			return err
		}
		if tenantActive > 0 {
			return ErrTenantHasContract
		}
		roomActive, err := tx.Contract().CountActiveByRoom(ctx, room.ID)
		if err != nil {
			return err
		}
		if roomActive >= int64(room.Capacity) {
			return ErrRoomFull
		}

		rent := room.Price
		if req.MonthlyRent != nil {
			rent = *req.MonthlyRent
		}
		paymentDay := req.PaymentDay
		if paymentDay == 0 {
			paymentDay = defaultPaymentDay
		}
		contract = &domain.RentalContract{
			OwnerID:     ownerID,
			RoomID:      room.ID,
			TenantID:    tenant.ID,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
			MonthlyRent: rent,
			Deposit:     req.Deposit,
			PaymentDay:  paymentDay,
			Status:      domain.ContractActive,
			Note:        req.Note,
		}
		if err := tx.Contract().Create(ctx, contract); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrTenantHasContract
			}
			return err
		}

		tenant.RoomID = &room.ID
		tenant.Status = domain.TenantActive
		if err := tx.Tenant().Update(ctx, tenant); err != nil {
			return err
		}
		tenant.Room = room

		room.Status = room.StatusForOccupancy(roomActive + 1)
		if err := tx.Room().Update(ctx, room); err != nil {
			return err
		}
		contract.Room = room
		contract.Tenant = tenant
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.reindex(ctx, tenant)
	return contract, nil
}

func (s *ContractService) GetByID(ctx context.Context, id string) (*domain.RentalContract, error) {
	contract, err := s.repo.Contract().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrContractNotFound)
	}
	return contract, nil
}

func (s *ContractService) List(ctx context.Context, filter domain.ContractFilter) ([]domain.RentalContract, int64, error) {
	return s.repo.Contract().List(ctx, filter)
}

// Update edits an active contract. Moving it to another room recomputes the
// status of both rooms.
func (s *ContractService) Update(ctx context.Context, id string, req dto.UpdateContractRequest) (*domain.RentalContract, error) {
	var (
		contract *domain.RentalContract
		moved    *domain.Tenant
	)
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		contract, err = tx.Contract().GetByID(ctx, id)
		if err != nil {
			return notFound(err, ErrContractNotFound)
		}
		if contract.Status != domain.ContractActive {
			return ErrContractNotActive
		}

		if req.EndDate != nil {
			if !req.EndDate.After(contract.StartDate) {
				return ErrInvalidDateRange
			}
			contract.EndDate = req.EndDate
		}
		if req.MonthlyRent != nil {
			if !req.MonthlyRent.IsPositive() {
				return ErrInvalidAmount
			}
			contract.MonthlyRent = *req.MonthlyRent
		}
		if req.Deposit != nil {
			if req.Deposit.IsNegative() {
				return ErrInvalidAmount
			}
			contract.Deposit = *req.Deposit
		}
		if req.PaymentDay != nil {
			contract.PaymentDay = *req.PaymentDay
		}
		if req.Note != nil {
			contract.Note = *req.Note
		}

		if req.RoomID == nil || *req.RoomID == contract.RoomID {
			return tx.Contract().Update(ctx, contract)
		}

		oldRoom, err := tx.Room().LockByID(ctx, contract.RoomID)
		if err != nil {
			return notFound(err, ErrRoomNotFound)
		}
		newRoom, err := tx.Room().LockByID(ctx, *req.RoomID)
		if err != nil {
			return notFound(err, ErrRoomNotFound)
		}
		if newRoom.Status == domain.RoomMaintenance {
			return ErrRoomUnderMaintenance
		}
		newActive, err := tx.Contract().CountActiveByRoom(ctx, newRoom.ID)
		if err != nil {
			return err
		}
		if newActive >= int64(newRoom.Capacity) {
			return ErrRoomFull
		}

		contract.RoomID = newRoom.ID
		if err := tx.Contract().Update(ctx, contract); err != nil {
			return err
		}

		moved, err = tx.Tenant().GetByID(ctx, contract.TenantID)
		if err != nil {
			return notFound(err, ErrTenantNotFound)
		}
		moved.RoomID = &newRoom.ID
		if err := tx.Tenant().Update(ctx, moved); err != nil {
			return err
		}
		moved.Room = newRoom

		if err := refreshRoomStatus(ctx, tx, oldRoom); err != nil {
			return err
		}
		if err := refreshRoomStatus(ctx, tx, newRoom); err != nil {
			return err
		}
		contract.Room = newRoom
		contract.Tenant = moved
		return nil
	})
	if err != nil {
		return nil, err
	}

	if moved != nil {
		s.reindex(ctx, moved)
	}
	return contract, nil
}

// Terminate ends an active contract early and moves the tenant out.
func (s *ContractService) Terminate(ctx context.Context, id string) (*domain.RentalContract, error) {
	var (
		contract *domain.RentalContract
		tenant   *domain.Tenant
	)
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		contract, err = tx.Contract().LockByID(ctx, id)
		if err != nil {
			return notFound(err, ErrContractNotFound)
		}
		if contract.Status != domain.ContractActive {
			return ErrContractNotActive
		}
		tenant, err = closeContract(ctx, tx, contract, domain.ContractTerminated, s.now())
		return err
	})
	if err != nil {
		return nil, err
	}

	if tenant != nil {
		s.reindex(ctx, tenant)
	}
	return contract, nil
}

func (s *ContractService) reindex(ctx context.Context, tenant *domain.Tenant) {
	if err := s.index.SendIndexTenantMessage(ctx, tenant.Document()); err != nil {
		s.logger.Error("failed to queue tenant index", err)
	}
}

// closeContract moves an active contract to status, moves its tenant out and
// recomputes the room status. It returns the updated tenant.
func closeContract(ctx context.Context, tx repository.Repository, contract *domain.RentalContract, status domain.ContractStatus, now time.Time) (*domain.Tenant, error) {
	contract.Status = status
	if status == domain.ContractTerminated {
		contract.TerminatedAt = &now
	}
	if err := tx.Contract().Update(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to close contract: %w", err)
	}

	tenant, err := tx.Tenant().GetByID(ctx, contract.TenantID)
	if err != nil {
		return nil, notFound(err, ErrTenantNotFound)
	}
	tenant.RoomID = nil
	tenant.Room = nil
	tenant.Status = domain.TenantMovedOut
	if err := tx.Tenant().Update(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to move tenant out: %w", err)
	}

	room, err := tx.Room().LockByID(ctx, contract.RoomID)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	if err := refreshRoomStatus(ctx, tx, room); err != nil {
		return nil, err
	}
	return tenant, nil
}

// refreshRoomStatus derives the room status from its active contracts.
func refreshRoomStatus(ctx context.Context, tx repository.Repository, room *domain.Room) error {
	active, err := tx.Contract().CountActiveByRoom(ctx, room.ID)
	if err != nil {
		return err
	}
	status := room.StatusForOccupancy(active)
	if status == room.Status {
		return nil
	}
	room.Status = status
	return tx.Room().Update(ctx, room)
}
