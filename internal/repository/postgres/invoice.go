package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

const invoicesTable = "invoices"

type InvoiceRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewInvoiceRepository(writerDB, readerDB *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("Room", "Tenant").Create(invoice).Error)
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	db, err := getOwnerScope(r.readerDB, ctx, invoicesTable)
	if err != nil {
		return nil, err
	}

	var invoice domain.Invoice
	if err := db.Preload("Room").Preload("Tenant").First(&invoice, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &invoice, nil
}

// LockByID reads the invoice with a row lock. Only meaningful inside a transaction.
func (r *InvoiceRepository) LockByID(ctx context.Context, id string) (*domain.Invoice, error) {
	db, err := getOwnerScope(r.writerDB, ctx, invoicesTable)
	if err != nil {
		return nil, err
	}

	var invoice domain.Invoice
	if err := forUpdate(db).First(&invoice, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Update(ctx context.Context, invoice *domain.Invoice) error {
	db, err := getOwnerScope(r.writerDB, ctx, invoicesTable)
	if err != nil {
		return err
	}
	return updateAll(db, invoice)
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	db, err := getOwnerScope(r.writerDB, ctx, invoicesTable)
	if err != nil {
		return err
	}
	return deleteByID(db, &domain.Invoice{}, id)
}

func (r *InvoiceRepository) List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, int64, error) {
	db, err := r.filtered(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	var invoices []domain.Invoice
	total, err := countAndFind(db, filter.Pagination, "invoices.billing_month DESC, invoices.created_at DESC", &invoices, "Room", "Tenant")
	if err != nil {
		return nil, 0, err
	}
	return invoices, total, nil
}

// ListAll returns every invoice matching the filter, ignoring pagination.
func (r *InvoiceRepository) ListAll(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error) {
	db, err := r.filtered(ctx, filter)
	if err != nil {
		return nil, err
	}

	var invoices []domain.Invoice
	err = db.Preload("Room").Preload("Tenant").
		Order("invoices.billing_month ASC, invoices.created_at ASC").
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceRepository) filtered(ctx context.Context, filter domain.InvoiceFilter) (*gorm.DB, error) {
	db, err := getOwnerScope(r.readerDB, ctx, invoicesTable)
	if err != nil {
		return nil, err
	}
	db = db.Model(&domain.Invoice{})
	if filter.BoardingHouseID != "" {
		db = db.Joins("JOIN rooms ON rooms.id = invoices.room_id").
			Where("rooms.boarding_house_id = ?", filter.BoardingHouseID)
	}
	if filter.RoomID != "" {
		db = db.Where("invoices.room_id = ?", filter.RoomID)
	}
	if filter.TenantID != "" {
		db = db.Where("invoices.tenant_id = ?", filter.TenantID)
	}
	if filter.BillingMonth != "" {
		db = db.Where("invoices.billing_month = ?", filter.BillingMonth)
	}
	if filter.Status != "" {
		db = db.Where("invoices.status = ?", filter.Status)
	}
	return db, nil
}

func (r *InvoiceRepository) ExistsForRoomMonth(ctx context.Context, roomID, billingMonth string) (bool, error) {
	var count int64
	err := r.writerDB.WithContext(ctx).Model(&domain.Invoice{}).
		Where("room_id = ? AND billing_month = ?", roomID, billingMonth).
		Count(&count).Error
	return count > 0, err
}

// ListOverdueAcrossOwners returns open invoices whose due date has passed and
// that are not marked overdue yet.
func (r *InvoiceRepository) ListOverdueAcrossOwners(ctx context.Context, now time.Time, limit int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.writerDB.WithContext(ctx).
		Where("status IN ? AND due_date < ?", []domain.InvoiceStatus{domain.InvoiceUnpaid, domain.InvoicePartiallyPaid}, now).
		Order("due_date ASC").
		Limit(sweepLimit(limit)).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListDueSoonAcrossOwners returns open invoices due in [now, until) that have
// not had a reminder.
func (r *InvoiceRepository) ListDueSoonAcrossOwners(ctx context.Context, now, until time.Time, limit int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.writerDB.WithContext(ctx).
		Where("status IN ? AND due_date >= ? AND due_date < ? AND reminder_sent_at IS NULL",
			[]domain.InvoiceStatus{domain.InvoiceUnpaid, domain.InvoicePartiallyPaid}, now, until).
		Order("due_date ASC").
		Limit(sweepLimit(limit)).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}
