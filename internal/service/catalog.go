package service

import (
	"context"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
)

// CatalogService manages the billable services of boarding houses.
type CatalogService struct {
	repo repository.Repository
}

func NewCatalogService(repo repository.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(ctx context.Context, req dto.ServiceRequest) (*domain.Service, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if req.UnitPrice.IsNegative() {
		return nil, ErrInvalidAmount
	}
	if _, err := s.repo.BoardingHouse().GetByID(ctx, req.BoardingHouseID); err != nil {
		return nil, notFound(err, ErrBoardingHouseNotFound)
	}

	svc := req.ToService()
	svc.OwnerID = ownerID
	if err := s.repo.Service().Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	svc, err := s.repo.Service().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrServiceNotFound)
	}
	return svc, nil
}

func (s *CatalogService) List(ctx context.Context, houseID string, page domain.Pagination) ([]domain.Service, int64, error) {
	return s.repo.Service().List(ctx, houseID, page)
}

// Update changes name, unit, price and metering. The boarding house is fixed.
func (s *CatalogService) Update(ctx context.Context, id string, req dto.ServiceRequest) (*domain.Service, error) {
	if req.UnitPrice.IsNegative() {
		return nil, ErrInvalidAmount
	}
	svc, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	svc.Name = req.Name
	svc.Unit = req.Unit
	svc.UnitPrice = req.UnitPrice
	svc.Metered = req.Metered
	if err := s.repo.Service().Update(ctx, svc); err != nil {
		return nil, notFound(err, ErrServiceNotFound)
	}
	return svc, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return notFound(s.repo.Service().Delete(ctx, id), ErrServiceNotFound)
}
