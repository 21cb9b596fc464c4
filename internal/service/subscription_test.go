package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type SubscriptionServiceTestSuite struct {
	suite.Suite
	repos   *repoMocks
	service *SubscriptionService
	now     time.Time
}

func (s *SubscriptionServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks()
	s.now = time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	cfg := testConfig()
	cfg.SubscriptionRequired = true
	s.service = NewSubscriptionService(s.repos.repo, cfg, logger.NewNop())
	s.service.now = func() time.Time { return s.now }
}

func TestSubscriptionService(t *testing.T) {
	suite.Run(t, new(SubscriptionServiceTestSuite))
}

func unusedKey() *domain.LicenseKey {
	return &domain.LicenseKey{
		Base:         domain.Base{ID: "key-1"},
		Key:          "BHMS-ABCD-EFGH-JKLM",
		Plan:         "standard",
		DurationDays: 30,
		MaxRooms:     20,
		Status:       domain.LicenseUnused,
	}
}

func (s *SubscriptionServiceTestSuite) TestRedeem_FirstSubscription() {
	// Arrange
	ctx := ownerCtx()
	key := unusedKey()
	s.repos.licenseKey.On("LockByKey", ctx, "BHMS-ABCD-EFGH-JKLM").Return(key, nil)
	s.repos.subscription.On("GetLatestByOwner", ctx, "owner-1").Return(nil, repository.ErrNotFound)
	s.repos.subscription.On("Create", ctx, mock.AnythingOfType("*domain.Subscription")).Return(nil)
	s.repos.licenseKey.On("Update", ctx, key).Return(nil)

	// Act
	sub, err := s.service.Redeem(ctx, dto.RedeemLicenseRequest{Key: "  bhms-abcd-efgh-jklm "})

	// Assert
	s.Require().NoError(err)
	s.Equal("owner-1", sub.OwnerID)
	s.Equal(20, sub.MaxRooms)
	s.Equal(s.now.AddDate(0, 0, 30), sub.ExpiresAt)
	s.Equal(domain.LicenseUsed, key.Status)
	s.Equal("owner-1", *key.UsedByOwner)
}

func (s *SubscriptionServiceTestSuite) TestRedeem_ExtendsRunningSubscription() {
	// Arrange
	ctx := ownerCtx()
	key := unusedKey()
	current := &domain.Subscription{
		OwnerID:   "owner-1",
		StartsAt:  s.now.AddDate(0, 0, -20),
		ExpiresAt: s.now.AddDate(0, 0, 10),
		Status:    domain.SubscriptionActive,
	}
	s.repos.licenseKey.On("LockByKey", ctx, key.Key).Return(key, nil)
	s.repos.subscription.On("GetLatestByOwner", ctx, "owner-1").Return(current, nil)
	s.repos.subscription.On("Update", ctx, current).Return(nil)
	s.repos.subscription.On("Create", ctx, mock.Anything).Return(nil)
	s.repos.licenseKey.On("Update", ctx, key).Return(nil)

	// Act
	sub, err := s.service.Redeem(ctx, dto.RedeemLicenseRequest{Key: key.Key})

	// Assert
	s.Require().NoError(err)
	s.Equal(s.now.AddDate(0, 0, 40), sub.ExpiresAt)
	s.Equal(domain.SubscriptionExpired, current.Status)
}

func (s *SubscriptionServiceTestSuite) TestRedeem_ExpiredSubscriptionStartsFresh() {
	// Arrange
	ctx := ownerCtx()
	key := unusedKey()
	lapsed := &domain.Subscription{
		StartsAt:  s.now.AddDate(0, -2, 0),
		ExpiresAt: s.now.AddDate(0, 0, -5),
		Status:    domain.SubscriptionActive,
	}
	s.repos.licenseKey.On("LockByKey", ctx, key.Key).Return(key, nil)
	s.repos.subscription.On("GetLatestByOwner", ctx, "owner-1").Return(lapsed, nil)
	s.repos.subscription.On("Create", ctx, mock.Anything).Return(nil)
	s.repos.licenseKey.On("Update", ctx, key).Return(nil)

	// Act
	sub, err := s.service.Redeem(ctx, dto.RedeemLicenseRequest{Key: key.Key})

	// Assert
	s.Require().NoError(err)
	s.Equal(s.now.AddDate(0, 0, 30), sub.ExpiresAt)
	s.repos.subscription.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *SubscriptionServiceTestSuite) TestRedeem_UsedKey() {
	// Arrange
	ctx := ownerCtx()
	key := unusedKey()
	key.Status = domain.LicenseUsed
	s.repos.licenseKey.On("LockByKey", ctx, key.Key).Return(key, nil)

	// Act
	_, err := s.service.Redeem(ctx, dto.RedeemLicenseRequest{Key: key.Key})

	// Assert
	s.ErrorIs(err, ErrLicenseKeyUsed)
}

func (s *SubscriptionServiceTestSuite) TestRedeem_UnknownKey() {
	// Arrange
	ctx := ownerCtx()
	s.repos.licenseKey.On("LockByKey", ctx, "BHMS-NOPE-NOPE-NOPE").Return(nil, repository.ErrNotFound)

	// Act
	_, err := s.service.Redeem(ctx, dto.RedeemLicenseRequest{Key: "BHMS-NOPE-NOPE-NOPE"})

	// Assert
	s.ErrorIs(err, ErrLicenseKeyNotFound)
}

func (s *SubscriptionServiceTestSuite) TestGenerateKeys() {
	// Arrange
	ctx := adminCtx()
	s.repos.licenseKey.On("CreateBatch", ctx, mock.MatchedBy(func(keys []domain.LicenseKey) bool {
		return len(keys) == 3 && keys[0].Key != keys[1].Key
	})).Return(nil)

	// Act
	keys, err := s.service.GenerateKeys(ctx, dto.GenerateLicenseKeysRequest{Plan: "pro", DurationDays: 365, Price: dec("1990000"), Count: 3})

	// Assert
	s.Require().NoError(err)
	s.Len(keys, 3)
	pattern := regexp.MustCompile(`^BHMS-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)
	for _, key := range keys {
		s.Regexp(pattern, key.Key)
		s.Equal(domain.LicenseUnused, key.Status)
	}
}

func (s *SubscriptionServiceTestSuite) TestRevokeKey_OnlyUnused() {
	// Arrange
	ctx := adminCtx()
	used := unusedKey()
	used.Status = domain.LicenseUsed
	s.repos.licenseKey.On("GetByID", ctx, "key-1").Return(used, nil)

	// Act
	_, err := s.service.RevokeKey(ctx, "key-1")

	// Assert
	s.ErrorIs(err, ErrLicenseKeyUsed)
}

func (s *SubscriptionServiceTestSuite) TestList_OwnerIsScopedToSelf() {
	// Arrange
	ctx := ownerCtx()
	s.repos.subscription.On("List", ctx, "owner-1", domain.Pagination{}).Return([]domain.Subscription{}, int64(0), nil)

	// Act
	_, _, err := s.service.List(ctx, "owner-2", domain.Pagination{})

	// Assert
	s.NoError(err)
	s.repos.subscription.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestList_AdminSeesAll() {
	// Arrange
	ctx := adminCtx()
	s.repos.subscription.On("List", ctx, "", domain.Pagination{}).Return([]domain.Subscription{}, int64(0), nil)

	// Act
	_, _, err := s.service.List(ctx, "", domain.Pagination{})

	// Assert
	s.NoError(err)
	s.repos.subscription.AssertExpectations(s.T())
}

func (s *SubscriptionServiceTestSuite) TestCheckOwnerAccess() {
	tests := []struct {
		name    string
		status  domain.OwnerStatus
		active  bool
		wantErr error
	}{
		{name: "pending owner", status: domain.OwnerPending, wantErr: ErrOwnerPending},
		{name: "locked owner", status: domain.OwnerLocked, wantErr: ErrOwnerLocked},
		{name: "no subscription", status: domain.OwnerActive, active: false, wantErr: ErrPaymentRequired},
		{name: "subscribed", status: domain.OwnerActive, active: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			ctx := ownerCtx()
			s.repos.owner.On("GetByID", ctx, "owner-1").Return(&domain.Owner{Base: domain.Base{ID: "owner-1"}, Status: tt.status}, nil)
			s.repos.subscription.On("HasActive", ctx, "owner-1", s.now).Return(tt.active, nil).Maybe()

			err := s.service.CheckOwnerAccess(ctx, "owner-1")

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
			} else {
				s.NoError(err)
			}
		})
	}
}
