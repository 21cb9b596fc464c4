package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

// No 0/O or 1/I so keys survive being read aloud.
const licenseAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type SubscriptionService struct {
	repo   repository.Repository
	config *config.Config
	logger *logger.Logger
	now    func() time.Time
}

func NewSubscriptionService(repo repository.Repository, cfg *config.Config, logger *logger.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo:   repo,
		config: cfg,
		logger: logger,
		now:    time.Now,
	}
}

// GenerateKeys creates a batch of unused license keys.
func (s *SubscriptionService) GenerateKeys(ctx context.Context, req dto.GenerateLicenseKeysRequest) ([]domain.LicenseKey, error) {
	if req.Price.IsNegative() {
		return nil, ErrInvalidAmount
	}
	keys := make([]domain.LicenseKey, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		key, err := NewLicenseKey()
		if err != nil {
			return nil, err
		}
		keys = append(keys, domain.LicenseKey{
			Key:          key,
			Plan:         req.Plan,
			DurationDays: req.DurationDays,
			Price:        req.Price,
			MaxRooms:     req.MaxRooms,
			Status:       domain.LicenseUnused,
		})
	}
	if err := s.repo.LicenseKey().CreateBatch(ctx, keys); err != nil {
		return nil, fmt.Errorf("failed to store license keys: %w", err)
	}
	s.logger.Infof("generated %d %s license keys", len(keys), req.Plan)
	return keys, nil
}

// NewLicenseKey returns a random key formatted as BHMS-XXXX-XXXX-XXXX.
func NewLicenseKey() (string, error) {
	groups := make([]string, 0, 4)
	groups = append(groups, "BHMS")
	size := big.NewInt(int64(len(licenseAlphabet)))
	for g := 0; g < 3; g++ {
		var b strings.Builder
		for i := 0; i < 4; i++ {
			n, err := rand.Int(rand.Reader, size)
			if err != nil {
				return "", fmt.Errorf("failed to generate license key: %w", err)
			}
			b.WriteByte(licenseAlphabet[n.Int64()])
		}
		groups = append(groups, b.String())
	}
	return strings.Join(groups, "-"), nil
}

func (s *SubscriptionService) ListKeys(ctx context.Context, filter domain.LicenseKeyFilter) ([]domain.LicenseKey, int64, error) {
	return s.repo.LicenseKey().List(ctx, filter)
}

// RevokeKey withdraws a key that has not been redeemed.
func (s *SubscriptionService) RevokeKey(ctx context.Context, id string) (*domain.LicenseKey, error) {
	key, err := s.repo.LicenseKey().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrLicenseKeyNotFound)
	}
	if key.Status != domain.LicenseUnused {
		return nil, ErrLicenseKeyUsed
	}
	key.Status = domain.LicenseRevoked
	if err := s.repo.LicenseKey().Update(ctx, key); err != nil {
		return nil, notFound(err, ErrLicenseKeyNotFound)
	}
	return key, nil
}

// Redeem activates a license key for the calling owner. A running
// subscription is extended: the new one ends duration days after the
// current one would have.
func (s *SubscriptionService) Redeem(ctx context.Context, req dto.RedeemLicenseRequest) (*domain.Subscription, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	code := strings.ToUpper(strings.TrimSpace(req.Key))
	now := s.now().UTC()

	var sub *domain.Subscription
	err = s.repo.Transaction(ctx, func(tx repository.Repository) error {
		key, err := tx.LicenseKey().LockByKey(ctx, code)
		if err != nil {
			return notFound(err, ErrLicenseKeyNotFound)
		}
		if key.Status != domain.LicenseUnused {
			return ErrLicenseKeyUsed
		}

		base := now
		current, err := tx.Subscription().GetLatestByOwner(ctx, ownerID)
		switch {
		case errors.Is(err, repository.ErrNotFound):
		case err != nil:
			return fmt.Errorf("failed to load subscription: %w", err)
		case current.IsActiveAt(now):
			base = current.ExpiresAt
			current.Status = domain.SubscriptionExpired
			if err := tx.Subscription().Update(ctx, current); err != nil {
				return fmt.Errorf("failed to supersede subscription: %w", err)
			}
		}

		sub = &domain.Subscription{
			OwnerID:      ownerID,
			LicenseKeyID: key.ID,
			Plan:         key.Plan,
			MaxRooms:     key.MaxRooms,
			StartsAt:     now,
			ExpiresAt:    base.AddDate(0, 0, key.DurationDays),
			Status:       domain.SubscriptionActive,
		}
		if err := tx.Subscription().Create(ctx, sub); err != nil {
			return fmt.Errorf("failed to create subscription: %w", err)
		}

		key.Status = domain.LicenseUsed
		key.UsedByOwner = &ownerID
		key.UsedAt = &now
		return tx.LicenseKey().Update(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Infof("owner %s redeemed a %s license until %s", ownerID, sub.Plan, formatDate(sub.ExpiresAt))
	return sub, nil
}

// Current returns the calling owner's latest subscription.
func (s *SubscriptionService) Current(ctx context.Context) (*domain.Subscription, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	sub, err := s.repo.Subscription().GetLatestByOwner(ctx, ownerID)
	if err != nil {
		return nil, notFound(err, fmt.Errorf("subscription %w", ErrNotFound))
	}
	return sub, nil
}

// List returns subscriptions of one owner, or of every owner when an admin
// leaves ownerID empty. Owners always get their own.
func (s *SubscriptionService) List(ctx context.Context, ownerID string, page domain.Pagination) ([]domain.Subscription, int64, error) {
	identity, err := utils.GetIdentityFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	if identity.Role != string(domain.RoleAdmin) {
		ownerID = identity.OwnerID
	}
	return s.repo.Subscription().List(ctx, ownerID, page)
}

// CheckOwnerAccess gates owner-scoped routes on the owner's status and,
// when configured, on an active subscription.
func (s *SubscriptionService) CheckOwnerAccess(ctx context.Context, ownerID string) error {
	owner, err := s.repo.Owner().GetByID(ctx, ownerID)
	if err != nil {
		return notFound(err, ErrOwnerNotFound)
	}
	switch owner.Status {
	case domain.OwnerPending:
		return ErrOwnerPending
	case domain.OwnerLocked:
		return ErrOwnerLocked
	}
	if !s.config.SubscriptionRequired {
		return nil
	}
	active, err := s.repo.Subscription().HasActive(ctx, ownerID, s.now())
	if err != nil {
		return fmt.Errorf("failed to check subscription: %w", err)
	}
	if !active {
		return ErrPaymentRequired
	}
	return nil
}
