package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/mocks"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type TenantServiceTestSuite struct {
	suite.Suite
	repos   *repoMocks
	index   *mocks.IndexQueue
	mail    *mocks.MailQueue
	service *TenantService
}

func (s *TenantServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks()
	s.index = new(mocks.IndexQueue)
	s.mail = new(mocks.MailQueue)
	s.service = NewTenantService(s.repos.repo, s.index, s.mail, testConfig(), logger.NewNop())
}

func TestTenantService(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

func (s *TenantServiceTestSuite) TestCreate_StartsWithoutRoom() {
	// Arrange
	ctx := ownerCtx()
	s.repos.tenant.On("Create", ctx, mock.AnythingOfType("*domain.Tenant")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Tenant).ID = "tenant-1" }).
		Return(nil)
	s.index.On("SendIndexTenantMessage", ctx, mock.MatchedBy(func(doc *domain.TenantDocument) bool {
		return doc.ID == "tenant-1" && doc.OwnerID == "owner-1" && doc.RoomID == "" && doc.RoomName == ""
	})).Return(nil)

	// Act
	tenant, err := s.service.Create(ctx, dto.CreateTenantRequest{
		FullName: "Nguyen Van A",
		Phone:    "0901234567",
		Email:    " Tenant@Example.com",
	})

	// Assert
	s.Require().NoError(err)
	s.Equal("+84901234567", tenant.Phone)
	s.Equal("tenant@example.com", tenant.Email)
	// A room is only assigned by signing a contract.
	s.Nil(tenant.RoomID)
	s.Nil(tenant.UserID)
	s.index.AssertExpectations(s.T())
	s.repos.room.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
	s.mail.AssertNotCalled(s.T(), "SendEmail", mock.Anything, mock.Anything)
	s.repos.user.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *TenantServiceTestSuite) TestCreate_WithAccount() {
	// Arrange
	ctx := ownerCtx()
	s.repos.user.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.User).ID = "user-9" }).
		Return(nil)
	s.repos.tenant.On("Create", ctx, mock.Anything).Return(nil)
	s.mail.On("SendEmail", ctx, mock.AnythingOfType("*domain.Email")).Return(nil)
	s.index.On("SendIndexTenantMessage", ctx, mock.Anything).Return(nil)

	// Act
	tenant, err := s.service.Create(ctx, dto.CreateTenantRequest{
		FullName:      "Nguyen Van A",
		Phone:         "0901234567",
		Email:         "tenant@example.com",
		CreateAccount: true,
	})

	// Assert
	s.Require().NoError(err)
	s.Require().NotNil(tenant.UserID)
	s.Equal("user-9", *tenant.UserID)

	user := s.repos.user.Calls[0].Arguments.Get(1).(*domain.User)
	s.Equal(domain.RoleTenant, user.Role)
	email := s.mail.Calls[0].Arguments.Get(1).(*domain.Email)
	s.Equal([]string{"tenant@example.com"}, email.To)
	s.Contains(email.HTMLBody, "Temporary password")
}

func (s *TenantServiceTestSuite) TestCreate_Rejections() {
	s.Run("invalid phone", func() {
		s.SetupTest()
		_, err := s.service.Create(ownerCtx(), dto.CreateTenantRequest{FullName: "A", Phone: "12"})
		s.ErrorIs(err, ErrInvalidPhone)
	})

	s.Run("account without email", func() {
		s.SetupTest()
		_, err := s.service.Create(ownerCtx(), dto.CreateTenantRequest{FullName: "A", Phone: "0901234567", CreateAccount: true})
		s.ErrorIs(err, ErrAccountNeedsEmail)
	})

	s.Run("email already used", func() {
		s.SetupTest()
		ctx := ownerCtx()
		s.repos.user.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)
		_, err := s.service.Create(ctx, dto.CreateTenantRequest{FullName: "A", Phone: "0901234567", Email: "a@example.com", CreateAccount: true})
		s.ErrorIs(err, ErrEmailAlreadyExists)
		s.repos.tenant.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	})
}

func (s *TenantServiceTestSuite) TestCreate_IndexFailureIsNotFatal() {
	// Arrange
	ctx := ownerCtx()
	s.repos.tenant.On("Create", ctx, mock.Anything).Return(nil)
	s.index.On("SendIndexTenantMessage", ctx, mock.Anything).Return(errors.New("queue down"))

	// Act
	_, err := s.service.Create(ctx, dto.CreateTenantRequest{FullName: "A", Phone: "0901234567"})

	// Assert
	s.NoError(err)
}

func (s *TenantServiceTestSuite) TestUpdate() {
	// Arrange
	ctx := ownerCtx()
	tenant := &domain.Tenant{Base: domain.Base{ID: "tenant-1"}, OwnerID: "owner-1", FullName: "A", Phone: "+84901234567"}
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(tenant, nil)
	s.repos.tenant.On("Update", ctx, tenant).Return(nil)
	s.index.On("SendIndexTenantMessage", ctx, mock.Anything).Return(nil)

	// Act
	updated, err := s.service.Update(ctx, "tenant-1", dto.UpdateTenantRequest{
		FullName: strPtr("Nguyen Van B"),
		Phone:    strPtr("+84 91 234 5678"),
	})

	// Assert
	s.Require().NoError(err)
	s.Equal("Nguyen Van B", updated.FullName)
	s.Equal("+84912345678", updated.Phone)
}

func (s *TenantServiceTestSuite) TestDelete_DisablesLogin() {
	// Arrange
	ctx := ownerCtx()
	tenant := &domain.Tenant{Base: domain.Base{ID: "tenant-1"}, OwnerID: "owner-1", UserID: strPtr("user-9")}
	user := &domain.User{Base: domain.Base{ID: "user-9"}, Active: true}
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(tenant, nil)
	s.repos.contract.On("CountActiveByTenant", ctx, "tenant-1").Return(int64(0), nil)
	s.repos.tenant.On("Delete", ctx, "tenant-1").Return(nil)
	s.repos.user.On("GetByID", ctx, "user-9").Return(user, nil)
	s.repos.user.On("Update", ctx, user).Return(nil)
	s.index.On("SendDeleteTenantMessage", ctx, "owner-1", "tenant-1").Return(nil)

	// Act
	err := s.service.Delete(ctx, "tenant-1")

	// Assert
	s.Require().NoError(err)
	s.False(user.Active)
	s.index.AssertExpectations(s.T())
}

func (s *TenantServiceTestSuite) TestDelete_Rejections() {
	s.Run("active contract", func() {
		s.SetupTest()
		ctx := ownerCtx()
		s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
		s.repos.contract.On("CountActiveByTenant", ctx, "tenant-1").Return(int64(1), nil)
		s.ErrorIs(s.service.Delete(ctx, "tenant-1"), ErrTenantHasContract)
	})

	s.Run("history", func() {
		s.SetupTest()
		ctx := ownerCtx()
		s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
		s.repos.contract.On("CountActiveByTenant", ctx, "tenant-1").Return(int64(0), nil)
		s.repos.tenant.On("Delete", ctx, "tenant-1").Return(repository.ErrReferenced)
		s.ErrorIs(s.service.Delete(ctx, "tenant-1"), ErrTenantHasHistory)
		s.index.AssertNotCalled(s.T(), "SendDeleteTenantMessage", mock.Anything, mock.Anything, mock.Anything)
	})
}

func (s *TenantServiceTestSuite) TestSearch_ScopedToOwner() {
	// Arrange
	ctx := ownerCtx()
	page := domain.Pagination{Page: 1, PageSize: 20}
	docs := []domain.TenantDocument{{ID: "tenant-1", FullName: "Nguyen Van A"}}
	s.repos.search.On("Search", ctx, "owner-1", "nguyen", page).Return(docs, nil)

	// Act
	got, err := s.service.Search(ctx, "nguyen", page)

	// Assert
	s.Require().NoError(err)
	s.Equal(docs, got)
}
