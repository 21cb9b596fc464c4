package postgres

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
)

const paymentsTable = "payments"

type PaymentRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewPaymentRepository(writerDB, readerDB *gorm.DB) *PaymentRepository {
	return &PaymentRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return translateError(r.writerDB.WithContext(ctx).Omit("Invoice").Create(payment).Error)
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	db, err := getOwnerScope(r.readerDB, ctx, paymentsTable)
	if err != nil {
		return nil, err
	}

	var payment domain.Payment
	if err := db.First(&payment, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) GetByProviderRef(ctx context.Context, ref string) (*domain.Payment, error) {
	var payment domain.Payment
	if err := r.writerDB.WithContext(ctx).First(&payment, "provider_ref = ?", ref).Error; err != nil {
		return nil, translateError(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *domain.Payment) error {
	db, err := getOwnerScope(r.writerDB, ctx, paymentsTable)
	if err != nil {
		return err
	}
	return updateAll(db, payment)
}

func (r *PaymentRepository) List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, int64, error) {
	db, err := getOwnerScope(r.readerDB, ctx, paymentsTable)
	if err != nil {
		return nil, 0, err
	}
	db = db.Model(&domain.Payment{})
	if filter.InvoiceID != "" {
		db = db.Where("invoice_id = ?", filter.InvoiceID)
	}
	if filter.TenantID != "" {
		db = db.Where("tenant_id = ?", filter.TenantID)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Method != "" {
		db = db.Where("method = ?", filter.Method)
	}
	if filter.PaidFrom != nil {
		db = db.Where("paid_at >= ?", *filter.PaidFrom)
	}
	if filter.PaidTo != nil {
		db = db.Where("paid_at <= ?", *filter.PaidTo)
	}

	var payments []domain.Payment
	total, err := countAndFind(db, filter.Pagination, "created_at DESC", &payments)
	if err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}

// SumSucceeded totals the succeeded payments of an invoice.
func (r *PaymentRepository) SumSucceeded(ctx context.Context, invoiceID string) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.writerDB.WithContext(ctx).Model(&domain.Payment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("invoice_id = ? AND status = ?", invoiceID, domain.PaymentSucceeded).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *PaymentRepository) CountByInvoice(ctx context.Context, invoiceID string) (int64, error) {
	var count int64
	err := r.writerDB.WithContext(ctx).Model(&domain.Payment{}).
		Where("invoice_id = ? AND status <> ?", invoiceID, domain.PaymentFailed).
		Count(&count).Error
	return count, err
}
