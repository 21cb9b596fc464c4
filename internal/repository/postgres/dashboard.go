package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/utils"
)

// DashboardRepository runs aggregate queries against the reader.
type DashboardRepository struct {
	readerDB *gorm.DB
}

func NewDashboardRepository(readerDB *gorm.DB) *DashboardRepository {
	return &DashboardRepository{readerDB: readerDB}
}

type statusCount struct {
	Status string
	Count  int64
}

type moneySum struct {
	Billed    decimal.Decimal
	Collected decimal.Decimal
}

func (r *DashboardRepository) OwnerSummary(ctx context.Context, month string, months []string) (*domain.OwnerDashboard, error) {
	ownerID, err := utils.GetOwnerIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	db := r.readerDB.WithContext(ctx)
	owned := func(model any) *gorm.DB {
		return db.Model(model).Where("owner_id = ?", ownerID)
	}

	summary := &domain.OwnerDashboard{
		CurrentMonth:  month,
		RoomsByStatus: map[string]int64{},
		Revenue:       make([]domain.MonthlyRevenue, 0, len(months)),
	}

	if err := owned(&domain.BoardingHouse{}).Count(&summary.BoardingHouses).Error; err != nil {
		return nil, err
	}

	var rooms []statusCount
	if err := owned(&domain.Room{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rooms).Error; err != nil {
		return nil, err
	}
	for _, rc := range rooms {
		summary.RoomsByStatus[rc.Status] = rc.Count
		summary.TotalRooms += rc.Count
	}

	if err := owned(&domain.Tenant{}).Where("status = ?", domain.TenantActive).Count(&summary.ActiveTenants).Error; err != nil {
		return nil, err
	}
	if err := owned(&domain.RentalContract{}).Where("status = ?", domain.ContractActive).Count(&summary.ActiveContracts).Error; err != nil {
		return nil, err
	}

	var current moneySum
	err = owned(&domain.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0) AS billed, COALESCE(SUM(paid_amount), 0) AS collected").
		Where("billing_month = ? AND status <> ?", month, domain.InvoiceCancelled).
		Scan(&current).Error
	if err != nil {
		return nil, err
	}
	summary.CurrentBilled = current.Billed
	summary.CurrentCollected = current.Collected
	summary.CurrentOutstanding = current.Billed.Sub(current.Collected)

	err = owned(&domain.Invoice{}).
		Where("status IN ?", []domain.InvoiceStatus{domain.InvoiceUnpaid, domain.InvoicePartiallyPaid}).
		Count(&summary.UnpaidInvoices).Error
	if err != nil {
		return nil, err
	}
	if err := owned(&domain.Invoice{}).Where("status = ?", domain.InvoiceOverdue).Count(&summary.OverdueInvoices).Error; err != nil {
		return nil, err
	}
	if err := owned(&domain.Report{}).Where("status = ?", domain.ReportPending).Count(&summary.PendingReports).Error; err != nil {
		return nil, err
	}

	if len(months) > 0 {
		var rows []struct {
			BillingMonth string
			Billed       decimal.Decimal
			Collected    decimal.Decimal
		}
		err = owned(&domain.Invoice{}).
			Select("billing_month, COALESCE(SUM(total_amount), 0) AS billed, COALESCE(SUM(paid_amount), 0) AS collected").
			Where("billing_month IN ? AND status <> ?", months, domain.InvoiceCancelled).
			Group("billing_month").
			Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		byMonth := make(map[string]moneySum, len(rows))
		for _, row := range rows {
			byMonth[row.BillingMonth] = moneySum{Billed: row.Billed, Collected: row.Collected}
		}
		// Months without invoices are reported as zero.
		for _, m := range months {
			sum := byMonth[m]
			summary.Revenue = append(summary.Revenue, domain.MonthlyRevenue{
				BillingMonth: m,
				Billed:       sum.Billed,
				Collected:    sum.Collected,
			})
		}
	}

	return summary, nil
}

func (r *DashboardRepository) AdminSummary(ctx context.Context, now time.Time) (*domain.AdminDashboard, error) {
	db := r.readerDB.WithContext(ctx)
	summary := &domain.AdminDashboard{OwnersByStatus: map[string]int64{}}

	var owners []statusCount
	if err := db.Model(&domain.Owner{}).Select("status, COUNT(*) AS count").Group("status").Scan(&owners).Error; err != nil {
		return nil, err
	}
	for _, oc := range owners {
		summary.OwnersByStatus[oc.Status] = oc.Count
	}

	err := db.Model(&domain.Subscription{}).
		Where("status = ? AND starts_at <= ? AND expires_at > ?", domain.SubscriptionActive, now, now).
		Distinct("owner_id").
		Count(&summary.ActiveSubscriptions).Error
	if err != nil {
		return nil, err
	}
	if err := db.Model(&domain.BoardingHouse{}).Count(&summary.BoardingHouses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Room{}).Count(&summary.Rooms).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&domain.Tenant{}).Where("status = ?", domain.TenantActive).Count(&summary.Tenants).Error; err != nil {
		return nil, err
	}

	var revenue struct {
		Total decimal.Decimal
	}
	err = db.Model(&domain.LicenseKey{}).
		Select("COALESCE(SUM(price), 0) AS total").
		Where("status = ?", domain.LicenseUsed).
		Scan(&revenue).Error
	if err != nil {
		return nil, err
	}
	summary.LicenseRevenue = revenue.Total

	if err := db.Model(&domain.ReportAdmin{}).Where("status = ?", domain.ReportPending).Count(&summary.PendingAdminReports).Error; err != nil {
		return nil, err
	}

	return summary, nil
}
