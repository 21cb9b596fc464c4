package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
	pkgutils "github.com/kingrain94/bhms-api/pkg/utils"
)

var ErrAccountNeedsEmail = fmt.Errorf("an email is required to create an account: %w", ErrValidation)

type TenantService struct {
	repo   repository.Repository
	index  IndexQueue
	mail   MailQueue
	config *config.Config
	logger *logger.Logger
}

func NewTenantService(repo repository.Repository, index IndexQueue, mail MailQueue, cfg *config.Config, logger *logger.Logger) *TenantService {
	return &TenantService{
		repo:   repo,
		index:  index,
		mail:   mail,
		config: cfg,
		logger: logger,
	}
}

func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	phone, err := pkgutils.NormalizePhone(req.Phone, s.config.PhoneRegion)
	if err != nil {
		return nil, ErrInvalidPhone
	}
	if req.CreateAccount && strings.TrimSpace(req.Email) == "" {
		return nil, ErrAccountNeedsEmail
	}

	tenant := req.ToTenant()
	tenant.OwnerID = ownerID
	tenant.Phone = phone
	tenant.Email = normalizeEmail(req.Email)

	var (
		user     *domain.User
		password string
	)
	if req.CreateAccount {
		password, err = randomToken(6)
		if err != nil {
			return nil, err
		}
		hash, err := hashPassword(password)
		if err != nil {
			return nil, err
		}
		user = &domain.User{
			Email:        tenant.Email,
			PasswordHash: hash,
			FullName:     tenant.FullName,
			Phone:        phone,
			Role:         domain.RoleTenant,
			Active:       true,
		}
	}

	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if user != nil {
			if err := tx.User().Create(ctx, user); err != nil {
				if errors.Is(err, repository.ErrDuplicate) {
					return ErrEmailAlreadyExists
				}
				return err
			}
			tenant.UserID = &user.ID
		}
		return tx.Tenant().Create(ctx, tenant)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	if user != nil {
		s.sendWelcome(ctx, tenant, password)
	}
	s.reindex(ctx, tenant)
	return tenant, nil
}

func (s *TenantService) sendWelcome(ctx context.Context, tenant *domain.Tenant, password string) {
	email, err := renderEmail(tenant.Email, "Your BHMS tenant account", "welcome_tenant", emailData{
		Name:     tenant.FullName,
		Email:    tenant.Email,
		Password: password,
		URL:      s.config.FrontendURL,
	})
	if err != nil {
		s.logger.Error("failed to render welcome email", err)
		return
	}
	if err := s.mail.SendEmail(ctx, email); err != nil {
		s.logger.Error("failed to queue welcome email", err)
	}
}

func (s *TenantService) GetByID(ctx context.Context, id string) (*domain.Tenant, error) {
	tenant, err := s.repo.Tenant().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrTenantNotFound)
	}
	return tenant, nil
}

func (s *TenantService) List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, int64, error) {
	return s.repo.Tenant().List(ctx, filter)
}

// Search runs a full-text query against the owner's tenant index.
func (s *TenantService) Search(ctx context.Context, query string, page domain.Pagination) ([]domain.TenantDocument, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	docs, err := s.repo.TenantSearch().Search(ctx, ownerID, query, page)
	if err != nil {
		return nil, fmt.Errorf("failed to search tenants: %w", err)
	}
	return docs, nil
}

func (s *TenantService) Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*domain.Tenant, error) {
	tenant, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	req.ApplyTo(tenant)
	if req.Phone != nil {
		phone, err := pkgutils.NormalizePhone(*req.Phone, s.config.PhoneRegion)
		if err != nil {
			return nil, ErrInvalidPhone
		}
		tenant.Phone = phone
	}
	tenant.Email = normalizeEmail(tenant.Email)

	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		return nil, notFound(err, ErrTenantNotFound)
	}
	s.reindex(ctx, tenant)
	return tenant, nil
}

// Delete removes a tenant without an active contract and disables its login.
func (s *TenantService) Delete(ctx context.Context, id string) error {
	tenant, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	active, err := s.repo.Contract().CountActiveByTenant(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count contracts: %w", err)
	}
	if active > 0 {
		return ErrTenantHasContract
	}

	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		if err := tx.Tenant().Delete(ctx, id); err != nil {
			return err
		}
		if tenant.UserID == nil {
			return nil
		}
		user, err := tx.User().GetByID(ctx, *tenant.UserID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		user.Active = false
		return tx.User().Update(ctx, user)
	})
	if errors.Is(err, repository.ErrReferenced) {
		return ErrTenantHasHistory
	}
	if err != nil {
		return notFound(err, ErrTenantNotFound)
	}

	if err := s.index.SendDeleteTenantMessage(ctx, tenant.OwnerID, tenant.ID); err != nil {
		s.logger.Error("failed to queue tenant index delete", err)
	}
	return nil
}

// reindex queues the tenant for the search index. Best effort.
func (s *TenantService) reindex(ctx context.Context, tenant *domain.Tenant) {
	if err := s.index.SendIndexTenantMessage(ctx, tenant.Document()); err != nil {
		s.logger.Error("failed to queue tenant index", err)
	}
}
