package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/mocks"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type AuthServiceTestSuite struct {
	suite.Suite
	repos   *repoMocks
	store   *mocks.TokenStore
	mail    *mocks.MailQueue
	tokens  *utils.TokenManager
	service *AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks()
	s.store = new(mocks.TokenStore)
	s.mail = new(mocks.MailQueue)
	s.tokens = utils.NewTokenManager("test-secret", time.Hour)
	s.service = NewAuthService(s.repos.repo, s.tokens, s.store, s.mail, testConfig(), logger.NewNop())
}

func TestAuthService(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) userWithPassword(role domain.Role, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.Require().NoError(err)
	return &domain.User{
		Base:         domain.Base{ID: "user-1"},
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		FullName:     "Tran Van B",
		Role:         role,
		Active:       true,
	}
}

func (s *AuthServiceTestSuite) TestRegister_Success() {
	// Arrange
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:        "  Owner@Example.com ",
		Password:     "s3cretpass",
		FullName:     " Tran Van B ",
		Phone:        "0901234567",
		BusinessName: "Sunrise Rooms",
	}
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(nil, repository.ErrNotFound)
	s.repos.user.On("Create", ctx, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.User).ID = "user-1" }).
		Return(nil)
	s.repos.owner.On("Create", ctx, mock.AnythingOfType("*domain.Owner")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Owner).ID = "owner-1" }).
		Return(nil)

	// Act
	resp, err := s.service.Register(ctx, req)

	// Assert
	s.Require().NoError(err)
	s.Equal("Bearer", resp.TokenType)
	s.Equal("owner@example.com", resp.User.Email)
	s.Equal("Tran Van B", resp.User.FullName)
	s.Equal("+84901234567", resp.User.Phone)
	s.Equal("owner-1", resp.User.OwnerID)
	s.Equal(string(domain.OwnerPending), resp.User.OwnerStatus)

	created := s.repos.user.Calls[1].Arguments.Get(1).(*domain.User)
	s.Equal(domain.RoleOwner, created.Role)
	s.NotEqual("s3cretpass", created.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cretpass")))

	owner := s.repos.owner.Calls[0].Arguments.Get(1).(*domain.Owner)
	s.Equal("user-1", owner.UserID)

	claims, err := s.tokens.Parse(resp.AccessToken)
	s.Require().NoError(err)
	s.Equal("owner-1", claims[string(utils.OwnerIDKey)])
}

func (s *AuthServiceTestSuite) TestRegister_AutoApprove() {
	// Arrange
	ctx := context.Background()
	s.service.config.AutoApproveOwners = true
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(nil, repository.ErrNotFound)
	s.repos.user.On("Create", ctx, mock.Anything).Return(nil)
	s.repos.owner.On("Create", ctx, mock.Anything).Return(nil)

	// Act
	resp, err := s.service.Register(ctx, dto.RegisterRequest{Email: "owner@example.com", Password: "s3cretpass", FullName: "B"})

	// Assert
	s.Require().NoError(err)
	s.Equal(string(domain.OwnerActive), resp.User.OwnerStatus)
}

func (s *AuthServiceTestSuite) TestRegister_EmailTaken() {
	// Arrange
	ctx := context.Background()
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(&domain.User{}, nil)

	// Act
	resp, err := s.service.Register(ctx, dto.RegisterRequest{Email: "owner@example.com", Password: "s3cretpass", FullName: "B"})

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrEmailAlreadyExists)
	s.ErrorIs(err, ErrConflict)
	s.repos.user.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestRegister_DuplicateOnInsert() {
	// Arrange
	ctx := context.Background()
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(nil, repository.ErrNotFound)
	s.repos.user.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

	// Act
	_, err := s.service.Register(ctx, dto.RegisterRequest{Email: "owner@example.com", Password: "s3cretpass", FullName: "B"})

	// Assert
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *AuthServiceTestSuite) TestRegister_InvalidPhone() {
	// Act
	_, err := s.service.Register(context.Background(), dto.RegisterRequest{Email: "owner@example.com", Password: "s3cretpass", Phone: "123"})

	// Assert
	s.ErrorIs(err, ErrInvalidPhone)
	s.ErrorIs(err, ErrValidation)
}

func (s *AuthServiceTestSuite) TestLogin_Owner() {
	// Arrange
	ctx := context.Background()
	user := s.userWithPassword(domain.RoleOwner, "s3cretpass")
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(user, nil)
	s.repos.owner.On("GetByUserID", ctx, "user-1").Return(&domain.Owner{Base: domain.Base{ID: "owner-1"}, Status: domain.OwnerActive}, nil)
	s.repos.user.On("Update", ctx, user).Return(nil)

	// Act
	resp, err := s.service.Login(ctx, dto.LoginRequest{Email: "OWNER@example.com", Password: "s3cretpass"})

	// Assert
	s.Require().NoError(err)
	s.NotEmpty(resp.AccessToken)
	s.Equal("owner-1", resp.User.OwnerID)
	s.NotNil(user.LastLoginAt)
}

func (s *AuthServiceTestSuite) TestLogin_Tenant() {
	// Arrange
	ctx := context.Background()
	user := s.userWithPassword(domain.RoleTenant, "s3cretpass")
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(user, nil)
	s.repos.tenant.On("GetByUserID", ctx, "user-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}, OwnerID: "owner-1"}, nil)
	s.repos.user.On("Update", ctx, user).Return(nil)

	// Act
	resp, err := s.service.Login(ctx, dto.LoginRequest{Email: "owner@example.com", Password: "s3cretpass"})

	// Assert
	s.Require().NoError(err)
	claims, err := s.tokens.Parse(resp.AccessToken)
	s.Require().NoError(err)
	s.Equal("tenant-1", claims[string(utils.TenantIDKey)])
	s.Equal("owner-1", claims[string(utils.OwnerIDKey)])
}

func (s *AuthServiceTestSuite) TestLogin_LastLoginFailureIsNotFatal() {
	// Arrange
	ctx := context.Background()
	user := s.userWithPassword(domain.RoleAdmin, "s3cretpass")
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(user, nil)
	s.repos.user.On("Update", ctx, user).Return(errors.New("db down"))

	// Act
	resp, err := s.service.Login(ctx, dto.LoginRequest{Email: "owner@example.com", Password: "s3cretpass"})

	// Assert
	s.Require().NoError(err)
	s.Equal("admin", resp.User.Role)
}

func (s *AuthServiceTestSuite) TestLogin_Rejections() {
	tests := []struct {
		name     string
		password string
		active   bool
		status   domain.OwnerStatus
		want     error
	}{
		{"wrong password", "nope", true, domain.OwnerActive, ErrInvalidCredentials},
		{"inactive user", "s3cretpass", false, domain.OwnerActive, ErrAccountInactive},
		{"locked owner", "s3cretpass", true, domain.OwnerLocked, ErrOwnerLocked},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Arrange
			s.SetupTest()
			ctx := context.Background()
			user := s.userWithPassword(domain.RoleOwner, "s3cretpass")
			user.Active = tt.active
			s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(user, nil)
			s.repos.owner.On("GetByUserID", ctx, "user-1").Return(&domain.Owner{Base: domain.Base{ID: "owner-1"}, Status: tt.status}, nil)

			// Act
			resp, err := s.service.Login(ctx, dto.LoginRequest{Email: "owner@example.com", Password: tt.password})

			// Assert
			s.Nil(resp)
			s.ErrorIs(err, tt.want)
			s.repos.user.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
		})
	}
}

func (s *AuthServiceTestSuite) TestLogin_UnknownEmail() {
	// Arrange
	ctx := context.Background()
	s.repos.user.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

	// Act
	_, err := s.service.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	// Assert
	s.ErrorIs(err, ErrInvalidCredentials)
	s.ErrorIs(err, ErrUnauthorized)
}

func (s *AuthServiceTestSuite) TestCreateAdmin() {
	// Arrange
	ctx := context.Background()
	s.repos.user.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	// Act
	user, err := s.service.CreateAdmin(ctx, "Root@Example.com", "supersecret", "Root")

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.RoleAdmin, user.Role)
	s.Equal("root@example.com", user.Email)
	s.True(user.Active)
}

func (s *AuthServiceTestSuite) TestCreateAdmin_WeakPassword() {
	// Act
	_, err := s.service.CreateAdmin(context.Background(), "root@example.com", "short", "Root")

	// Assert
	s.ErrorIs(err, ErrWeakPassword)
	s.repos.user.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestCreateAdmin_Duplicate() {
	// Arrange
	ctx := context.Background()
	s.repos.user.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicate)

	// Act
	_, err := s.service.CreateAdmin(ctx, "root@example.com", "supersecret", "Root")

	// Assert
	s.ErrorIs(err, ErrEmailAlreadyExists)
}

func (s *AuthServiceTestSuite) TestChangePassword() {
	// Arrange
	ctx := ownerCtx()
	user := s.userWithPassword(domain.RoleOwner, "oldpassword")
	s.repos.user.On("GetByID", ctx, "user-owner").Return(user, nil)
	s.repos.user.On("Update", ctx, user).Return(nil)

	// Act
	err := s.service.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "oldpassword", NewPassword: "newpassword"})

	// Assert
	s.Require().NoError(err)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword")))
}

func (s *AuthServiceTestSuite) TestChangePassword_WrongCurrent() {
	// Arrange
	ctx := ownerCtx()
	user := s.userWithPassword(domain.RoleOwner, "oldpassword")
	s.repos.user.On("GetByID", ctx, "user-owner").Return(user, nil)

	// Act
	err := s.service.ChangePassword(ctx, dto.ChangePasswordRequest{CurrentPassword: "guess", NewPassword: "newpassword"})

	// Assert
	s.ErrorIs(err, ErrWrongPassword)
	s.repos.user.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestLogout() {
	// Arrange
	ctx := ownerCtx()
	s.store.On("Revoke", ctx, "jti-1", 10*time.Minute).Return(nil)

	// Act
	err := s.service.Logout(ctx, "jti-1", 10*time.Minute)

	// Assert
	s.NoError(err)
	s.store.AssertExpectations(s.T())
}

func (s *AuthServiceTestSuite) TestLogout_ExpiredTokenIsNoop() {
	// Act
	err := s.service.Logout(ownerCtx(), "jti-1", 0)

	// Assert
	s.NoError(err)
	s.store.AssertNotCalled(s.T(), "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestForgotPassword_KnownEmail() {
	// Arrange
	ctx := context.Background()
	user := s.userWithPassword(domain.RoleOwner, "s3cretpass")
	s.repos.user.On("GetByEmail", ctx, "owner@example.com").Return(user, nil)
	s.store.On("SaveResetToken", ctx, mock.AnythingOfType("string"), "user-1", 30*time.Minute).Return(nil)
	s.mail.On("SendEmail", ctx, mock.MatchedBy(func(e *domain.Email) bool {
		return len(e.To) == 1 && e.To[0] == "owner@example.com"
	})).Return(nil)

	// Act
	err := s.service.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "owner@example.com"})

	// Assert
	s.Require().NoError(err)
	token := s.store.Calls[0].Arguments.String(1)
	s.Len(token, 64)
	email := s.mail.Calls[0].Arguments.Get(1).(*domain.Email)
	s.Contains(email.HTMLBody, "http://localhost:5173/reset-password?token="+token)
}

func (s *AuthServiceTestSuite) TestForgotPassword_UnknownEmailIsSilent() {
	// Arrange
	ctx := context.Background()
	s.repos.user.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrNotFound)

	// Act
	err := s.service.ForgotPassword(ctx, dto.ForgotPasswordRequest{Email: "ghost@example.com"})

	// Assert
	s.NoError(err)
	s.store.AssertNotCalled(s.T(), "SaveResetToken", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.mail.AssertNotCalled(s.T(), "SendEmail", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestResetPassword() {
	// Arrange
	ctx := context.Background()
	user := s.userWithPassword(domain.RoleOwner, "forgotten")
	s.store.On("ConsumeResetToken", ctx, "tok").Return("user-1", nil)
	s.repos.user.On("GetByID", ctx, "user-1").Return(user, nil)
	s.repos.user.On("Update", ctx, user).Return(nil)

	// Act
	err := s.service.ResetPassword(ctx, dto.ResetPasswordRequest{Token: "tok", NewPassword: "brandnewpass"})

	// Assert
	s.Require().NoError(err)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("brandnewpass")))
}

func (s *AuthServiceTestSuite) TestResetPassword_UnknownToken() {
	// Arrange
	ctx := context.Background()
	s.store.On("ConsumeResetToken", ctx, "tok").Return("", nil)

	// Act
	err := s.service.ResetPassword(ctx, dto.ResetPasswordRequest{Token: "tok", NewPassword: "brandnewpass"})

	// Assert
	s.ErrorIs(err, ErrInvalidResetToken)
}
