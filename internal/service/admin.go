package service

import (
	"context"
	"fmt"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

// AdminService manages owner accounts on behalf of platform admins.
type AdminService struct {
	repo     repository.Repository
	notifier Notifier
	logger   *logger.Logger
}

func NewAdminService(repo repository.Repository, notifier Notifier, logger *logger.Logger) *AdminService {
	return &AdminService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *AdminService) ListOwners(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, int64, error) {
	return s.repo.Owner().List(ctx, filter)
}

func (s *AdminService) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	owner, err := s.repo.Owner().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrOwnerNotFound)
	}
	return owner, nil
}

func (s *AdminService) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error) {
	return s.repo.User().List(ctx, filter)
}

// Approve activates a pending owner.
func (s *AdminService) Approve(ctx context.Context, id string) (*domain.Owner, error) {
	owner, err := s.GetOwner(ctx, id)
	if err != nil {
		return nil, err
	}
	if owner.Status != domain.OwnerPending {
		return nil, ErrOwnerNotPending
	}
	owner.Status = domain.OwnerActive
	if err := s.repo.Owner().Update(ctx, owner); err != nil {
		return nil, notFound(err, ErrOwnerNotFound)
	}
	s.notifier.Notify(ctx, owner.UserID, domain.NotificationSystem, "Account approved",
		"Your owner account has been approved.", owner.ID)
	return owner, nil
}

// Lock blocks an owner and deactivates its login.
func (s *AdminService) Lock(ctx context.Context, id string) (*domain.Owner, error) {
	return s.setLocked(ctx, id, true)
}

// Unlock restores a locked owner and reactivates its login.
func (s *AdminService) Unlock(ctx context.Context, id string) (*domain.Owner, error) {
	return s.setLocked(ctx, id, false)
}

func (s *AdminService) setLocked(ctx context.Context, id string, locked bool) (*domain.Owner, error) {
	var owner *domain.Owner
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		owner, err = tx.Owner().GetByID(ctx, id)
		if err != nil {
			return notFound(err, ErrOwnerNotFound)
		}
		user, err := tx.User().GetByID(ctx, owner.UserID)
		if err != nil {
			return notFound(err, ErrUserNotFound)
		}

		if locked {
			owner.Status = domain.OwnerLocked
		} else {
			owner.Status = domain.OwnerActive
		}
		user.Active = !locked
		if err := tx.Owner().Update(ctx, owner); err != nil {
			return fmt.Errorf("failed to update owner: %w", err)
		}
		if err := tx.User().Update(ctx, user); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		owner.User = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("owner %s status set to %s", owner.ID, owner.Status)
	return owner, nil
}
