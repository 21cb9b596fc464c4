package service

import (
	"context"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
)

type BoardingHouseService struct {
	repo repository.Repository
}

func NewBoardingHouseService(repo repository.Repository) *BoardingHouseService {
	return &BoardingHouseService{repo: repo}
}

func (s *BoardingHouseService) Create(ctx context.Context, req dto.BoardingHouseRequest) (*domain.BoardingHouse, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	house := req.ToBoardingHouse()
	house.OwnerID = ownerID
	if err := s.repo.BoardingHouse().Create(ctx, house); err != nil {
		return nil, fmt.Errorf("failed to create boarding house: %w", err)
	}
	return house, nil
}

func (s *BoardingHouseService) GetByID(ctx context.Context, id string) (*domain.BoardingHouse, error) {
	house, err := s.repo.BoardingHouse().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrBoardingHouseNotFound)
	}
	return house, nil
}

func (s *BoardingHouseService) List(ctx context.Context, page domain.Pagination) ([]domain.BoardingHouse, int64, error) {
	return s.repo.BoardingHouse().List(ctx, page)
}

func (s *BoardingHouseService) Update(ctx context.Context, id string, req dto.BoardingHouseRequest) (*domain.BoardingHouse, error) {
	house, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	updated := req.ToBoardingHouse()
	house.Name = updated.Name
	house.Address = updated.Address
	house.Description = updated.Description
	house.TotalFloors = updated.TotalFloors
	if err := s.repo.BoardingHouse().Update(ctx, house); err != nil {
		return nil, notFound(err, ErrBoardingHouseNotFound)
	}
	return house, nil
}

// Delete removes an empty boarding house.
func (s *BoardingHouseService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	rooms, err := s.repo.BoardingHouse().CountRooms(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if rooms > 0 {
		return ErrHouseHasRooms
	}
	return notFound(s.repo.BoardingHouse().Delete(ctx, id), ErrBoardingHouseNotFound)
}
