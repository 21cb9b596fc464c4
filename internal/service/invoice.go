package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
	"github.com/kingrain94/bhms-api/pkg/logger"
	pkgutils "github.com/kingrain94/bhms-api/pkg/utils"
)

type InvoiceService struct {
	repo     repository.Repository
	notifier Notifier
	config   *config.Config
	logger   *logger.Logger
	now      func() time.Time
}

func NewInvoiceService(repo repository.Repository, notifier Notifier, cfg *config.Config, logger *logger.Logger) *InvoiceService {
	return &InvoiceService{
		repo:     repo,
		notifier: notifier,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// Create bills one room for one month from its active contract and attached services.
func (s *InvoiceService) Create(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if _, err := pkgutils.ParseBillingMonth(req.BillingMonth); err != nil {
		return nil, ErrInvalidMonth
	}
	if req.ExtraCharge.IsNegative() || req.Discount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	var invoice *domain.Invoice
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		room, err := tx.Room().GetByID(ctx, req.RoomID)
		if err != nil {
			return notFound(err, ErrRoomNotFound)
		}
		contract, err := tx.Contract().GetActiveByRoom(ctx, room.ID)
		if err != nil {
			return notFound(err, ErrNoActiveContract)
		}
		exists, err := tx.Invoice().ExistsForRoomMonth(ctx, room.ID, req.BillingMonth)
		if err != nil {
			return err
		}
		if exists {
			return ErrInvoiceExists
		}

		invoice, err = s.build(ctx, tx, contract, req.BillingMonth, req.Quantities, req.DueDate)
		if err != nil {
			return err
		}
		invoice.ExtraCharge = req.ExtraCharge
		invoice.Discount = req.Discount
		invoice.Note = req.Note
		invoice.Recalculate()

		if err := tx.Invoice().Create(ctx, invoice); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrInvoiceExists
			}
			return err
		}
		invoice.Room = room
		invoice.Tenant = contract.Tenant
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCreated(ctx, invoice, invoice.Tenant)
	return invoice, nil
}

// Generate bills every occupied room of a boarding house for a month.
// Rooms already billed for that month are skipped.
func (s *InvoiceService) Generate(ctx context.Context, req dto.GenerateInvoicesRequest) (*dto.GenerateInvoicesResponse, error) {
	if _, err := pkgutils.ParseBillingMonth(req.BillingMonth); err != nil {
		return nil, ErrInvalidMonth
	}
	if _, err := s.repo.BoardingHouse().GetByID(ctx, req.BoardingHouseID); err != nil {
		return nil, notFound(err, ErrBoardingHouseNotFound)
	}

	resp := &dto.GenerateInvoicesResponse{Invoices: []domain.Invoice{}}
	tenants := make(map[string]*domain.Tenant)
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		contracts, err := tx.Contract().ListActiveByHouse(ctx, req.BoardingHouseID)
		if err != nil {
			return err
		}
		for i := range contracts {
			contract := &contracts[i]
			exists, err := tx.Invoice().ExistsForRoomMonth(ctx, contract.RoomID, req.BillingMonth)
			if err != nil {
				return err
			}
			if exists {
				resp.Skipped++
				continue
			}

			invoice, err := s.build(ctx, tx, contract, req.BillingMonth, nil, req.DueDate)
			if err != nil {
				return err
			}
			invoice.Recalculate()
			if err := tx.Invoice().Create(ctx, invoice); err != nil {
				if errors.Is(err, repository.ErrDuplicate) {
					return ErrInvoiceExists
				}
				return fmt.Errorf("failed to create invoice for room %s: %w", contract.RoomID, err)
			}
			tenants[invoice.ID] = contract.Tenant
			resp.Invoices = append(resp.Invoices, *invoice)
			resp.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for i := range resp.Invoices {
		s.notifyCreated(ctx, &resp.Invoices[i], tenants[resp.Invoices[i].ID])
	}
	s.logger.Infof("generated %d invoices for house %s month %s (%d skipped)", resp.Created, req.BoardingHouseID, req.BillingMonth, resp.Skipped)
	return resp, nil
}

// build prices an invoice from a contract. Metered services take their
// quantity from quantities, the others use the quantity set on the room.
func (s *InvoiceService) build(ctx context.Context, tx repository.Repository, contract *domain.RentalContract, month string, quantities map[string]decimal.Decimal, dueDate *time.Time) (*domain.Invoice, error) {
	roomServices, err := tx.Room().ListServices(ctx, contract.RoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load room services: %w", err)
	}

	lines := make(domain.InvoiceLines, 0, len(roomServices))
	for _, rs := range roomServices {
		if rs.Service == nil {
			continue
		}
		qty := rs.Quantity
		if rs.Service.Metered {
			qty = quantities[rs.ServiceID]
		}
		if qty.IsNegative() {
			return nil, ErrInvalidAmount
		}
		lines = append(lines, domain.NewInvoiceLine(*rs.Service, qty))
	}

	due := s.defaultDueDate()
	if dueDate != nil {
		due = *dueDate
	}

	return &domain.Invoice{
		OwnerID:      contract.OwnerID,
		RoomID:       contract.RoomID,
		TenantID:     contract.TenantID,
		ContractID:   contract.ID,
		BillingMonth: month,
		RoomCharge:   contract.MonthlyRent,
		ExtraCharge:  decimal.Zero,
		Discount:     decimal.Zero,
		PaidAmount:   decimal.Zero,
		Status:       domain.InvoiceUnpaid,
		DueDate:      due,
		Lines:        lines,
	}, nil
}

func (s *InvoiceService) defaultDueDate() time.Time {
	now := s.now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, s.config.InvoiceDueDays)
}

func (s *InvoiceService) notifyCreated(ctx context.Context, invoice *domain.Invoice, tenant *domain.Tenant) {
	if tenant == nil || tenant.UserID == nil {
		return
	}
	s.notifier.Notify(ctx, *tenant.UserID, domain.NotificationInvoiceCreated,
		"New invoice",
		fmt.Sprintf("Your invoice for %s is %s, due %s.", invoice.BillingMonth, formatMoney(invoice.TotalAmount), formatDate(invoice.DueDate)),
		invoice.ID)
}

func (s *InvoiceService) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	invoice, err := s.repo.Invoice().GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrInvoiceNotFound)
	}
	return invoice, nil
}

func (s *InvoiceService) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, int64, error) {
	if filter.BillingMonth != "" {
		if _, err := pkgutils.ParseBillingMonth(filter.BillingMonth); err != nil {
			return nil, 0, ErrInvalidMonth
		}
	}
	return s.repo.Invoice().List(ctx, filter)
}

// ListMine lists the calling tenant's invoices.
func (s *InvoiceService) ListMine(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, int64, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.TenantID = tenantID
	filter.BoardingHouseID = ""
	filter.RoomID = ""
	return s.List(ctx, filter)
}

// GetMine returns one of the calling tenant's invoices.
func (s *InvoiceService) GetMine(ctx context.Context, id string) (*domain.Invoice, error) {
	tenantID, err := utils.GetTenantIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	invoice, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.TenantID != tenantID {
		return nil, ErrInvoiceNotFound
	}
	return invoice, nil
}

// Update edits charges of an invoice nothing has been paid on yet.
func (s *InvoiceService) Update(ctx context.Context, id string, req dto.UpdateInvoiceRequest) (*domain.Invoice, error) {
	for _, d := range []*decimal.Decimal{req.ExtraCharge, req.Discount} {
		if d != nil && d.IsNegative() {
			return nil, ErrInvalidAmount
		}
	}

	var invoice *domain.Invoice
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		invoice, err = tx.Invoice().LockByID(ctx, id)
		if err != nil {
			return notFound(err, ErrInvoiceNotFound)
		}
		if invoice.Status != domain.InvoiceUnpaid && invoice.Status != domain.InvoiceOverdue {
			return ErrInvoiceNotEditable
		}

		req.ApplyTo(invoice)
		for i, line := range invoice.Lines {
			qty, ok := req.Quantities[line.ServiceID]
			if !ok {
				continue
			}
			if qty.IsNegative() {
				return ErrInvalidAmount
			}
			invoice.Lines[i].Quantity = qty
			invoice.Lines[i].Amount = line.UnitPrice.Mul(qty).Round(2)
		}
		invoice.Recalculate()

		if invoice.Status == domain.InvoiceOverdue && !invoice.DueDate.Before(s.now()) {
			invoice.Status = domain.InvoiceUnpaid
			invoice.OverdueNotifiedAt = nil
		}
		if req.DueDate != nil {
			invoice.ReminderSentAt = nil
		}
		return tx.Invoice().Update(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// Cancel voids an invoice with no payment recorded or in flight.
func (s *InvoiceService) Cancel(ctx context.Context, id string) (*domain.Invoice, error) {
	var invoice *domain.Invoice
	err := s.repo.Transaction(ctx, func(tx repository.Repository) error {
		var err error
		invoice, err = tx.Invoice().LockByID(ctx, id)
		if err != nil {
			return notFound(err, ErrInvoiceNotFound)
		}
		if !invoice.IsOpen() {
			return ErrInvoiceNotEditable
		}
		if invoice.PaidAmount.IsPositive() {
			return ErrInvoiceHasPayments
		}
		// Pending card payments count too.
		count, err := tx.Payment().CountByInvoice(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to count payments: %w", err)
		}
		if count > 0 {
			return ErrInvoiceHasPayments
		}
		invoice.Status = domain.InvoiceCancelled
		return tx.Invoice().Update(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// Delete removes an invoice without any recorded payment.
func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.repo.Payment().CountByInvoice(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count payments: %w", err)
	}
	if count > 0 {
		return ErrInvoiceHasPayments
	}
	err = s.repo.Invoice().Delete(ctx, id)
	if errors.Is(err, repository.ErrReferenced) {
		return ErrInvoiceHasPayments
	}
	return notFound(err, ErrInvoiceNotFound)
}
