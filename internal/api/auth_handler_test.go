package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenResponse), args.Error(1)
}

func (m *MockAuthService) Me(ctx context.Context) (*dto.UserResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	mockService *MockAuthService
	handler     *AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.mockService = new(MockAuthService)
	s.handler = NewAuthHandler(s.mockService)
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestRegister_Success() {
	// Arrange
	req := dto.RegisterRequest{Email: "owner@example.com", Password: "s3cretpass", FullName: "Tran Van B", Phone: "0901234567"}
	resp := &dto.TokenResponse{AccessToken: "token", TokenType: "Bearer", User: &dto.UserResponse{ID: "user-1", OwnerStatus: "pending"}}
	s.mockService.On("Register", mock.Anything, req).Return(resp, nil)
	c, w := jsonContext(http.MethodPost, "/auth/register", req)

	// Act
	s.handler.Register(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.TokenResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("token", response.AccessToken)
	s.Equal("pending", response.User.OwnerStatus)
}

func (s *AuthHandlerTestSuite) TestRegister_ValidationErrors() {
	tests := []struct {
		name string
		req  dto.RegisterRequest
	}{
		{"short password", dto.RegisterRequest{Email: "owner@example.com", Password: "short", FullName: "B"}},
		{"bad email", dto.RegisterRequest{Email: "not-an-email", Password: "s3cretpass", FullName: "B"}},
		{"bad phone", dto.RegisterRequest{Email: "owner@example.com", Password: "s3cretpass", FullName: "B", Phone: "12"}},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Arrange
			c, w := jsonContext(http.MethodPost, "/auth/register", tt.req)

			// Act
			s.handler.Register(c)

			// Assert
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
	s.mockService.AssertNotCalled(s.T(), "Register", mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestRegister_EmailTaken() {
	// Arrange
	req := dto.RegisterRequest{Email: "owner@example.com", Password: "s3cretpass", FullName: "B"}
	s.mockService.On("Register", mock.Anything, req).Return(nil, service.ErrEmailAlreadyExists)
	c, w := jsonContext(http.MethodPost, "/auth/register", req)

	// Act
	s.handler.Register(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_Failures() {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"locked owner", service.ErrOwnerLocked, http.StatusForbidden},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			// Arrange
			s.SetupTest()
			req := dto.LoginRequest{Email: "owner@example.com", Password: "whatever"}
			s.mockService.On("Login", mock.Anything, req).Return(nil, tt.err)
			c, w := jsonContext(http.MethodPost, "/auth/login", req)

			// Act
			s.handler.Login(c)

			// Assert
			s.Equal(tt.want, w.Code)
		})
	}
}

func (s *AuthHandlerTestSuite) TestForgotPassword_Accepted() {
	// Arrange
	req := dto.ForgotPasswordRequest{Email: "ghost@example.com"}
	s.mockService.On("ForgotPassword", mock.Anything, req).Return(nil)
	c, w := jsonContext(http.MethodPost, "/auth/forgot-password", req)

	// Act
	s.handler.ForgotPassword(c)

	// Assert
	s.Equal(http.StatusAccepted, w.Code)
}

func (s *AuthHandlerTestSuite) TestResetPassword_InvalidToken() {
	// Arrange
	req := dto.ResetPasswordRequest{Token: "stale", NewPassword: "brandnewpass"}
	s.mockService.On("ResetPassword", mock.Anything, req).Return(service.ErrInvalidResetToken)
	c, w := jsonContext(http.MethodPost, "/auth/reset-password", req)

	// Act
	s.handler.ResetPassword(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *AuthHandlerTestSuite) TestLogout_WithoutClaims() {
	// Arrange
	s.mockService.On("Logout", mock.Anything, "", time.Duration(0)).Return(nil)
	c, w := jsonContext(http.MethodPost, "/auth/logout", nil)

	// Act
	s.handler.Logout(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
