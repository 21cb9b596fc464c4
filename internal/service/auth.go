package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
	pkgutils "github.com/kingrain94/bhms-api/pkg/utils"
)

type AuthService struct {
	repo   repository.Repository
	tokens *utils.TokenManager
	store  TokenStore
	mail   MailQueue
	config *config.Config
	logger *logger.Logger
	now    func() time.Time
}

func NewAuthService(repo repository.Repository, tokens *utils.TokenManager, store TokenStore, mail MailQueue, cfg *config.Config, logger *logger.Logger) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		store:  store,
		mail:   mail,
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Register creates an owner account and signs the caller in.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)
	phone := ""
	if req.Phone != "" {
		normalized, err := pkgutils.NormalizePhone(req.Phone, s.config.PhoneRegion)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		phone = normalized
	}

	if _, err := s.repo.User().GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	status := domain.OwnerPending
	if s.config.AutoApproveOwners {
		status = domain.OwnerActive
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        phone,
		Role:         domain.RoleOwner,
		Active:       true,
	}
	owner := &domain.Owner{
		BusinessName: req.BusinessName,
		Phone:        phone,
		Address:      req.Address,
		Status:       status,
	}

	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if err := tx.User().Create(ctx, user); err != nil {
			return err
		}
		owner.UserID = user.ID
		return tx.Owner().Create(ctx, owner)
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to register owner: %w", err)
	}

	s.logger.Infof("owner registered: %s (%s)", user.ID, status)
	return s.issue(user, owner, nil)
}

// CreateAdmin provisions a platform admin. It is only reachable from the operator CLI.
func (s *AuthService) CreateAdmin(ctx context.Context, email, password, fullName string) (*domain.User, error) {
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Infof("admin created: %s", user.ID)
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User().GetByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.Active {
		return nil, ErrAccountInactive
	}

	owner, tenant, err := s.profile(ctx, user)
	if err != nil {
		return nil, err
	}
	if owner != nil && owner.Status == domain.OwnerLocked {
		return nil, ErrOwnerLocked
	}

	now := s.now()
	user.LastLoginAt = &now
	if err := s.repo.User().Update(ctx, user); err != nil {
		s.logger.Error("failed to record last login", err)
	}

	return s.issue(user, owner, tenant)
}

// Me returns the caller's user and profile ids.
func (s *AuthService) Me(ctx context.Context) (*dto.UserResponse, error) {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	owner, tenant, err := s.profile(ctx, user)
	if err != nil {
		return nil, err
	}
	return userResponse(user, owner, tenant), nil
}

func (s *AuthService) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error {
	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		return err
	}
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return notFound(err, ErrUserNotFound)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return ErrWrongPassword
	}
	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.repo.User().Update(ctx, user)
}

// Logout revokes the presented token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	if tokenID == "" || ttl <= 0 {
		return nil
	}
	return s.store.Revoke(ctx, tokenID, ttl)
}

// ForgotPassword mails a reset link when the email is known. Unknown emails
// succeed silently.
func (s *AuthService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) error {
	user, err := s.repo.User().GetByEmail(ctx, normalizeEmail(req.Email))
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := randomToken(32)
	if err != nil {
		return err
	}
	if err := s.store.SaveResetToken(ctx, token, user.ID, s.config.PasswordResetTTL); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	email, err := renderEmail(user.Email, "Reset your BHMS password", "password_reset", emailData{
		Name: user.FullName,
		URL:  strings.TrimRight(s.config.FrontendURL, "/") + "/reset-password?token=" + token,
		TTL:  s.config.PasswordResetTTL.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}
	if err := s.mail.SendEmail(ctx, email); err != nil {
		s.logger.Error("failed to queue reset email", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	userID, err := s.store.ConsumeResetToken(ctx, req.Token)
	if err != nil {
		return err
	}
	if userID == "" {
		return ErrInvalidResetToken
	}
	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		return notFound(err, ErrInvalidResetToken)
	}
	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.repo.User().Update(ctx, user)
}

// IsRevoked reports whether a token id was logged out.
func (s *AuthService) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.store.IsRevoked(ctx, tokenID)
}

func (s *AuthService) profile(ctx context.Context, user *domain.User) (*domain.Owner, *domain.Tenant, error) {
	switch user.Role {
	case domain.RoleOwner:
		owner, err := s.repo.Owner().GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, nil, notFound(err, ErrOwnerNotFound)
		}
		return owner, nil, nil
	case domain.RoleTenant:
		tenant, err := s.repo.Tenant().GetByUserID(ctx, user.ID)
		if err != nil {
			return nil, nil, notFound(err, ErrTenantNotFound)
		}
		return nil, tenant, nil
	}
	return nil, nil, nil
}

func (s *AuthService) issue(user *domain.User, owner *domain.Owner, tenant *domain.Tenant) (*dto.TokenResponse, error) {
	identity := utils.Identity{UserID: user.ID, Role: string(user.Role)}
	if owner != nil {
		identity.OwnerID = owner.ID
	}
	if tenant != nil {
		identity.OwnerID = tenant.OwnerID
		identity.TenantID = tenant.ID
	}

	issued, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: issued.Token,
		TokenType:   "Bearer",
		ExpiresAt:   issued.ExpiresAt,
		User:        userResponse(user, owner, tenant),
	}, nil
}

func userResponse(user *domain.User, owner *domain.Owner, tenant *domain.Tenant) *dto.UserResponse {
	resp := dto.FromUser(user)
	if owner != nil {
		resp.OwnerID = owner.ID
		resp.OwnerStatus = string(owner.Status)
	}
	if tenant != nil {
		resp.OwnerID = tenant.OwnerID
		resp.TenantID = tenant.ID
	}
	return resp
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
