package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type RoomService struct {
	repo    repository.Repository
	storage ImageStorage
	logger  *logger.Logger
	now     func() time.Time
}

func NewRoomService(repo repository.Repository, storage ImageStorage, logger *logger.Logger) *RoomService {
	return &RoomService{
		repo:    repo,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *RoomService) Create(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !req.Price.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.repo.BoardingHouse().GetByID(ctx, req.BoardingHouseID); err != nil {
		return nil, notFound(err, ErrBoardingHouseNotFound)
	}
	if err := s.checkRoomLimit(ctx, ownerID); err != nil {
		return nil, err
	}

	room := req.ToRoom()
	room.OwnerID = ownerID
	if err := s.repo.Room().Create(ctx, room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrRoomNameTaken
		}
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return room, nil
}

// checkRoomLimit enforces the max rooms of the owner's current plan. Zero
// means unlimited, and owners without a subscription are gated elsewhere.
func (s *RoomService) checkRoomLimit(ctx context.Context, ownerID string) error {
	sub, err := s.repo.Subscription().GetLatestByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load subscription: %w", err)
	}
	if !sub.IsActiveAt(s.now()) || sub.MaxRooms <= 0 {
		return nil
	}
	count, err := s.repo.Room().Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if count >= int64(sub.MaxRooms) {
		return ErrRoomLimitReached
	}
	return nil
}

func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.repo.Room().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrRoomNotFound)
	}
	return room, nil
}

func (s *RoomService) List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, int64, error) {
	return s.repo.Room().List(ctx, filter)
}

func (s *RoomService) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (*domain.Room, error) {
	var room *domain.Room
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		room, err = tx.Room().LockByID(ctx, id)
		if err != nil {
			return notFound(err, ErrRoomNotFound)
		}
		active, err := tx.Contract().CountActiveByRoom(ctx, id)
		if err != nil {
			return err
		}

		req.ApplyTo(room)
		if !room.Price.IsPositive() {
			return ErrInvalidAmount
		}
		if int64(room.Capacity) < active {
			return ErrCapacityTooLow
		}
		// Occupancy is derived from contracts; only maintenance is set by hand.
		room.Status = room.StatusForOccupancy(active)

		if err := tx.Room().Update(ctx, room); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrRoomNameTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return room, nil
}

// Delete removes a room that has no active contracts.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	active, err := s.repo.Contract().CountActiveByRoom(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count contracts: %w", err)
	}
	if active > 0 {
		return ErrRoomHasTenants
	}

	err = s.repo.Room().Delete(ctx, id)
	if errors.Is(err, repository.ErrReferenced) {
		return ErrRoomHasHistory
	}
	return notFound(err, ErrRoomNotFound)
}

func (s *RoomService) AttachService(ctx context.Context, roomID string, req dto.AttachServiceRequest) (*domain.RoomService, error) {
	room, err := s.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	svc, err := s.repo.Service().GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, notFound(err, ErrServiceNotFound)
	}
	if svc.BoardingHouseID != room.BoardingHouseID {
		return nil, ErrServiceNotInHouse
	}

	quantity := req.Quantity
	if quantity.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}
	roomService := &domain.RoomService{
		RoomID:    room.ID,
		ServiceID: svc.ID,
		Quantity:  quantity,
	}
	if err := s.repo.Room().AttachService(ctx, roomService); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrServiceAttached
		}
		return nil, fmt.Errorf("failed to attach service: %w", err)
	}
	roomService.Service = svc
	return roomService, nil
}

func (s *RoomService) DetachService(ctx context.Context, roomID, serviceID string) error {
	if _, err := s.GetByID(ctx, roomID); err != nil {
		return err
	}
	return notFound(s.repo.Room().DetachService(ctx, roomID, serviceID), ErrServiceNotFound)
}

func (s *RoomService) ListServices(ctx context.Context, roomID string) ([]domain.RoomService, error) {
	if _, err := s.GetByID(ctx, roomID); err != nil {
		return nil, err
	}
	return s.repo.Room().ListServices(ctx, roomID)
}

// UploadImage stores a resized copy of the image and appends its URL to the room.
func (s *RoomService) UploadImage(ctx context.Context, roomID string, data []byte) (string, *domain.Room, error) {
	room, err := s.GetByID(ctx, roomID)
	if err != nil {
		return "", nil, err
	}
	url, err := s.storage.UploadImage(ctx, fmt.Sprintf("rooms/%s/%s", room.OwnerID, room.ID), data)
	if err != nil {
		return "", nil, err
	}

	room.ImageURLs = append(room.ImageURLs, url)
	if err := s.repo.Room().Update(ctx, room); err != nil {
		return "", nil, notFound(err, ErrRoomNotFound)
	}
	return url, room, nil
}
