package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/mocks"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/internal/utils"
)

// repoMocks wires every sub-repository mock onto one Repository mock.
// Transaction runs its callback against the same mocks.
type repoMocks struct {
	repo         *mocks.Repository
	user         *mocks.UserRepository
	owner        *mocks.OwnerRepository
	house        *mocks.BoardingHouseRepository
	room         *mocks.RoomRepository
	service      *mocks.ServiceRepository
	tenant       *mocks.TenantRepository
	contract     *mocks.ContractRepository
	invoice      *mocks.InvoiceRepository
	payment      *mocks.PaymentRepository
	report       *mocks.ReportRepository
	adminReport  *mocks.AdminReportRepository
	notification *mocks.NotificationRepository
	subscription *mocks.SubscriptionRepository
	licenseKey   *mocks.LicenseKeyRepository
	dashboard    *mocks.DashboardRepository
	search       *mocks.TenantSearchRepository
}

func newRepoMocks() *repoMocks {
	r := &repoMocks{
		repo:         new(mocks.Repository),
		user:         new(mocks.UserRepository),
		owner:        new(mocks.OwnerRepository),
		house:        new(mocks.BoardingHouseRepository),
		room:         new(mocks.RoomRepository),
		service:      new(mocks.ServiceRepository),
		tenant:       new(mocks.TenantRepository),
		contract:     new(mocks.ContractRepository),
		invoice:      new(mocks.InvoiceRepository),
		payment:      new(mocks.PaymentRepository),
		report:       new(mocks.ReportRepository),
		adminReport:  new(mocks.AdminReportRepository),
		notification: new(mocks.NotificationRepository),
		subscription: new(mocks.SubscriptionRepository),
		licenseKey:   new(mocks.LicenseKeyRepository),
		dashboard:    new(mocks.DashboardRepository),
		search:       new(mocks.TenantSearchRepository),
	}

	r.repo.On("User").Return(r.user)
	r.repo.On("Owner").Return(r.owner)
	r.repo.On("BoardingHouse").Return(r.house)
	r.repo.On("Room").Return(r.room)
	r.repo.On("Service").Return(r.service)
	r.repo.On("Tenant").Return(r.tenant)
	r.repo.On("Contract").Return(r.contract)
	r.repo.On("Invoice").Return(r.invoice)
	r.repo.On("Payment").Return(r.payment)
	r.repo.On("Report").Return(r.report)
	r.repo.On("AdminReport").Return(r.adminReport)
	r.repo.On("Notification").Return(r.notification)
	r.repo.On("Subscription").Return(r.subscription)
	r.repo.On("LicenseKey").Return(r.licenseKey)
	r.repo.On("Dashboard").Return(r.dashboard)
	r.repo.On("TenantSearch").Return(r.search)
	r.repo.On("Transaction", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, fn func(tx repository.Repository) error) error {
			return fn(r.repo)
		})

	return r
}

func ownerCtx() context.Context {
	return utils.WithIdentity(context.Background(), utils.Identity{UserID: "user-owner", Role: "owner", OwnerID: "owner-1"})
}

func tenantCtx() context.Context {
	return utils.WithIdentity(context.Background(), utils.Identity{UserID: "user-tenant", Role: "tenant", OwnerID: "owner-1", TenantID: "tenant-1"})
}

func adminCtx() context.Context {
	return utils.WithIdentity(context.Background(), utils.Identity{UserID: "user-admin", Role: "admin"})
}

func testConfig() *config.Config {
	return &config.Config{
		InvoiceDueDays:      7,
		InvoiceReminderDays: 3,
		PhoneRegion:         "VN",
		FrontendURL:         "http://localhost:5173",
		PasswordResetTTL:    30 * time.Minute,
	}
}

func strPtr(s string) *string {
	return &s
}
