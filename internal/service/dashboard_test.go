package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/mocks"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	repos   *repoMocks
	cache   *mocks.Cache
	service *DashboardService
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks()
	s.cache = new(mocks.Cache)
	cfg := testConfig()
	cfg.DashboardCacheTTL = 5 * time.Minute
	s.service = NewDashboardService(s.repos.repo, s.cache, cfg, logger.NewNop())
	s.service.now = func() time.Time { return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC) }
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) TestOwner_CacheMiss() {
	// Arrange
	ctx := ownerCtx()
	key := "dashboard:owner:owner-1:2025-03"
	dashboard := &domain.OwnerDashboard{TotalRooms: 12, CurrentMonth: "2025-03"}
	s.cache.On("Get", ctx, key, mock.Anything).Return(false, nil)
	s.repos.dashboard.On("OwnerSummary", ctx, "2025-03", mock.MatchedBy(func(months []string) bool {
		return len(months) == 12 && months[0] == "2024-04" && months[11] == "2025-03"
	})).Return(dashboard, nil)
	s.cache.On("Set", ctx, key, dashboard, 5*time.Minute).Return(nil)

	// Act
	got, err := s.service.Owner(ctx)

	// Assert
	s.Require().NoError(err)
	s.Equal(dashboard, got)
	s.cache.AssertExpectations(s.T())
}

func (s *DashboardServiceTestSuite) TestOwner_CacheHit() {
	// Arrange
	ctx := ownerCtx()
	s.cache.On("Get", ctx, "dashboard:owner:owner-1:2025-03", mock.Anything).Return(
		func(_ context.Context, _ string, dest any) (bool, error) {
			dest.(*domain.OwnerDashboard).TotalRooms = 7
			return true, nil
		})

	// Act
	got, err := s.service.Owner(ctx)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(7), got.TotalRooms)
	s.repos.dashboard.AssertNotCalled(s.T(), "OwnerSummary", mock.Anything, mock.Anything, mock.Anything)
}

func (s *DashboardServiceTestSuite) TestAdmin_CacheErrorsFallThrough() {
	// Arrange
	ctx := adminCtx()
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	dashboard := &domain.AdminDashboard{Rooms: 40}
	s.cache.On("Get", ctx, "dashboard:admin", mock.Anything).Return(false, errors.New("redis down"))
	s.repos.dashboard.On("AdminSummary", ctx, now).Return(dashboard, nil)
	s.cache.On("Set", ctx, "dashboard:admin", dashboard, 5*time.Minute).Return(errors.New("redis down"))

	// Act
	got, err := s.service.Admin(ctx)

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(40), got.Rooms)
}

func (s *DashboardServiceTestSuite) TestOwner_CacheDisabled() {
	// Arrange
	ctx := ownerCtx()
	s.service.config.DashboardCacheTTL = 0
	s.repos.dashboard.On("OwnerSummary", ctx, "2025-03", mock.Anything).Return(&domain.OwnerDashboard{}, nil)

	// Act
	_, err := s.service.Owner(ctx)

	// Assert
	s.NoError(err)
	s.cache.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything, mock.Anything)
	s.cache.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
