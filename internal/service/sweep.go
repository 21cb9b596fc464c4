package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

const (
	sweepLockKey   = "bhms:lock:sweep"
	sweepBatchSize = 100
	// sweepMaxBatches caps one run so a failing row cannot spin forever.
	sweepMaxBatches = 50
)

// SweepService runs the periodic overdue, reminder and expiry job.
type SweepService struct {
	repo     repository.Repository
	locker   Locker
	notifier Notifier
	mail     MailQueue
	index    IndexQueue
	config   *config.Config
	logger   *logger.Logger
	now      func() time.Time
}

func NewSweepService(repo repository.Repository, locker Locker, notifier Notifier, mail MailQueue, index IndexQueue, cfg *config.Config, logger *logger.Logger) *SweepService {
	return &SweepService{
		repo:     repo,
		locker:   locker,
		notifier: notifier,
		mail:     mail,
		index:    index,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Run performs one sweep. Only one process sweeps at a time; the others get
// ErrSweepInProgress.
func (s *SweepService) Run(ctx context.Context) (*dto.SweepResponse, error) {
	// The locker refreshes the lock while the sweep runs. ttl only bounds
	// how long a crashed sweeper blocks the next one.
	ttl := s.config.OverdueSweepInterval
	if ttl <= 0 || ttl > 10*time.Minute {
		ttl = 10 * time.Minute
	}
	release, ok, err := s.locker.TryLock(ctx, sweepLockKey, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire sweep lock: %w", err)
	}
	if !ok {
		return nil, ErrSweepInProgress
	}
	defer release()

	now := s.now().UTC()
	resp := &dto.SweepResponse{}

	if resp.Overdue, err = s.markOverdue(ctx, now); err != nil {
		return resp, err
	}
	if resp.Reminded, err = s.sendReminders(ctx, now); err != nil {
		return resp, err
	}
	if resp.ExpiredContracts, err = s.expireContracts(ctx, now); err != nil {
		return resp, err
	}
	if resp.ExpiredSubscription, err = s.repo.Subscription().ExpireEnded(ctx, now); err != nil {
		return resp, fmt.Errorf("failed to expire subscriptions: %w", err)
	}

	s.logger.Infof("sweep done: %d overdue, %d reminded, %d contracts expired, %d subscriptions expired",
		resp.Overdue, resp.Reminded, resp.ExpiredContracts, resp.ExpiredSubscription)
	return resp, nil
}

func asOwner(ctx context.Context, ownerID string) context.Context {
	return utils.WithIdentity(ctx, utils.Identity{Role: string(domain.RoleOwner), OwnerID: ownerID})
}

// markOverdue flags open invoices past their due date. The status change is
// what keeps a row from being picked up twice.
func (s *SweepService) markOverdue(ctx context.Context, now time.Time) (int, error) {
	count := 0
	for batch := 0; batch < sweepMaxBatches; batch++ {
		invoices, err := s.repo.Invoice().ListOverdueAcrossOwners(ctx, now, sweepBatchSize)
		if err != nil {
			return count, fmt.Errorf("failed to list overdue invoices: %w", err)
		}
		progressed := 0
		for i := range invoices {
			ownerCtx := asOwner(ctx, invoices[i].OwnerID)
			invoice, err := s.flagOverdue(ownerCtx, invoices[i].ID, now)
			if err != nil {
				s.logger.Error("failed to mark invoice overdue", err)
				continue
			}
			if invoice == nil {
				continue
			}
			progressed++
			s.notifyOverdue(ownerCtx, invoice)
		}
		count += progressed
		if len(invoices) < sweepBatchSize || progressed == 0 {
			break
		}
	}
	return count, nil
}

func (s *SweepService) flagOverdue(ctx context.Context, id string, now time.Time) (*domain.Invoice, error) {
	var invoice *domain.Invoice
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		locked, err := tx.Invoice().LockByID(ctx, id)
		if err != nil {
			return err
		}
		if locked.Status != domain.InvoiceUnpaid && locked.Status != domain.InvoicePartiallyPaid {
			return nil
		}
		if !locked.DueDate.Before(now) {
			return nil
		}
		locked.Status = domain.InvoiceOverdue
		locked.OverdueNotifiedAt = &now
		if err := tx.Invoice().Update(ctx, locked); err != nil {
			return err
		}
		invoice = locked
		return nil
	})
	return invoice, err
}

func (s *SweepService) notifyOverdue(ctx context.Context, invoice *domain.Invoice) {
	tenant, err := s.repo.Tenant().GetByID(ctx, invoice.TenantID)
	if err != nil {
		s.logger.Error("failed to load tenant of overdue invoice", err)
		return
	}
	if owner, err := s.repo.Owner().GetByID(ctx, invoice.OwnerID); err == nil {
		s.notifier.Notify(ctx, owner.UserID, domain.NotificationInvoiceOverdue, "Invoice overdue",
			fmt.Sprintf("Invoice %s of %s is overdue (%s outstanding).", invoice.BillingMonth, tenant.FullName, formatMoney(invoice.Outstanding())),
			invoice.ID)
	}
	if tenant.UserID != nil {
		s.notifier.Notify(ctx, *tenant.UserID, domain.NotificationInvoiceOverdue, "Invoice overdue",
			fmt.Sprintf("Your invoice for %s is overdue.", invoice.BillingMonth), invoice.ID)
	}
	s.mailTenant(ctx, tenant, invoice, "Invoice overdue: "+invoice.BillingMonth, "invoice_overdue")
}

func (s *SweepService) sendReminders(ctx context.Context, now time.Time) (int, error) {
	if s.config.InvoiceReminderDays <= 0 {
		return 0, nil
	}
	until := now.AddDate(0, 0, s.config.InvoiceReminderDays)

	count := 0
	for batch := 0; batch < sweepMaxBatches; batch++ {
		invoices, err := s.repo.Invoice().ListDueSoonAcrossOwners(ctx, now, until, sweepBatchSize)
		if err != nil {
			return count, fmt.Errorf("failed to list invoices due soon: %w", err)
		}
		progressed := 0
		for i := range invoices {
			ownerCtx := asOwner(ctx, invoices[i].OwnerID)
			invoice, err := s.flagReminder(ownerCtx, invoices[i].ID, now)
			if err != nil {
				s.logger.Error("failed to mark reminder", err)
				continue
			}
			if invoice == nil {
				continue
			}
			progressed++
			tenant, err := s.repo.Tenant().GetByID(ownerCtx, invoice.TenantID)
			if err != nil {
				s.logger.Error("failed to load tenant for reminder", err)
				continue
			}
			s.mailTenant(ownerCtx, tenant, invoice, "Invoice due soon: "+invoice.BillingMonth, "invoice_reminder")
		}
		count += progressed
		if len(invoices) < sweepBatchSize || progressed == 0 {
			break
		}
	}
	return count, nil
}

func (s *SweepService) flagReminder(ctx context.Context, id string, now time.Time) (*domain.Invoice, error) {
	var invoice *domain.Invoice
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		locked, err := tx.Invoice().LockByID(ctx, id)
		if err != nil {
			return err
		}
		if locked.ReminderSentAt != nil || !locked.IsOpen() {
			return nil
		}
		locked.ReminderSentAt = &now
		if err := tx.Invoice().Update(ctx, locked); err != nil {
			return err
		}
		invoice = locked
		return nil
	})
	return invoice, err
}

func (s *SweepService) mailTenant(ctx context.Context, tenant *domain.Tenant, invoice *domain.Invoice, subject, tmpl string) {
	if tenant.Email == "" {
		return
	}
	email, err := renderEmail(tenant.Email, subject, tmpl, emailData{
		Name:    tenant.FullName,
		Month:   invoice.BillingMonth,
		DueDate: formatDate(invoice.DueDate),
		Amount:  formatMoney(invoice.Outstanding()),
	})
	if err != nil {
		s.logger.Error("failed to render "+tmpl, err)
		return
	}
	if err := s.mail.SendEmail(ctx, email); err != nil {
		s.logger.Error("failed to queue "+tmpl, err)
	}
}

func (s *SweepService) expireContracts(ctx context.Context, now time.Time) (int, error) {
	count := 0
	for batch := 0; batch < sweepMaxBatches; batch++ {
		contracts, err := s.repo.Contract().ListExpiredAcrossOwners(ctx, now, sweepBatchSize)
		if err != nil {
			return count, fmt.Errorf("failed to list expired contracts: %w", err)
		}
		progressed := 0
		for i := range contracts {
			ownerCtx := asOwner(ctx, contracts[i].OwnerID)
			contract, tenant, err := s.expireContract(ownerCtx, contracts[i].ID, now)
			if err != nil {
				s.logger.Error("failed to expire contract", err)
				continue
			}
			if contract == nil {
				continue
			}
			progressed++

			if err := s.index.SendIndexTenantMessage(ownerCtx, tenant.Document()); err != nil {
				s.logger.Error("failed to queue tenant index", err)
			}
			msg := fmt.Sprintf("The contract of %s ended on %s.", tenant.FullName, formatDate(*contract.EndDate))
			if owner, err := s.repo.Owner().GetByID(ownerCtx, contract.OwnerID); err == nil {
				s.notifier.Notify(ownerCtx, owner.UserID, domain.NotificationContractExpired, "Contract expired", msg, contract.ID)
			}
			if tenant.UserID != nil {
				s.notifier.Notify(ownerCtx, *tenant.UserID, domain.NotificationContractExpired, "Contract expired", msg, contract.ID)
			}
		}
		count += progressed
		if len(contracts) < sweepBatchSize || progressed == 0 {
			break
		}
	}
	return count, nil
}

// expireContract re-reads the contract under a row lock and closes it only if
// it is still active and past its end date. A nil contract means it changed
// since it was listed.
func (s *SweepService) expireContract(ctx context.Context, id string, now time.Time) (*domain.RentalContract, *domain.Tenant, error) {
	var (
		contract *domain.RentalContract
		tenant   *domain.Tenant
	)
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		locked, err := tx.Contract().LockByID(ctx, id)
		if err != nil {
			return err
		}
		if locked.Status != domain.ContractActive || locked.EndDate == nil || !locked.EndDate.Before(now) {
			return nil
		}
		tenant, err = closeContract(ctx, tx, locked, domain.ContractExpired, now)
		if err != nil {
			return err
		}
		contract = locked
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return contract, tenant, nil
}
