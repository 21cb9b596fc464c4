package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
	pkgutils "github.com/kingrain94/bhms-api/pkg/utils"
)

const revenueMonths = 12

type DashboardService struct {
	repo   repository.Repository
	cache  Cache
	config *config.Config
	logger *logger.Logger
	now    func() time.Time
}

func NewDashboardService(repo repository.Repository, cache Cache, cfg *config.Config, logger *logger.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		cache:  cache,
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Owner returns the calling owner's dashboard, served from cache when fresh.
func (s *DashboardService) Owner(ctx context.Context) (*domain.OwnerDashboard, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	month := pkgutils.BillingMonthOf(now)
	key := fmt.Sprintf("dashboard:owner:%s:%s", ownerID, month)

	var cached domain.OwnerDashboard
	if s.cached(ctx, key, &cached) {
		return &cached, nil
	}

	dashboard, err := s.repo.Dashboard().OwnerSummary(ctx, month, pkgutils.LastMonths(now, revenueMonths))
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	s.store(ctx, key, dashboard)
	return dashboard, nil
}

func (s *DashboardService) Admin(ctx context.Context) (*domain.AdminDashboard, error) {
	const key = "dashboard:admin"

	var cached domain.AdminDashboard
	if s.cached(ctx, key, &cached) {
		return &cached, nil
	}

	dashboard, err := s.repo.Dashboard().AdminSummary(ctx, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	s.store(ctx, key, dashboard)
	return dashboard, nil
}

func (s *DashboardService) cached(ctx context.Context, key string, dest any) bool {
	if s.cache == nil || s.config.DashboardCacheTTL <= 0 {
		return false
	}
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Error("failed to read dashboard cache", err)
		return false
	}
	return found
}

func (s *DashboardService) store(ctx context.Context, key string, value any) {
	if s.cache == nil || s.config.DashboardCacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.config.DashboardCacheTTL); err != nil {
		s.logger.Error("failed to write dashboard cache", err)
	}
}
