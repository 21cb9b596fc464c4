package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/kingrain94/bhms-api/internal/config"
	"github.com/kingrain94/bhms-api/internal/repository"
)

type postgresRepository struct {
	writerDB          *gorm.DB
	readerDB          *gorm.DB
	userRepo          repository.UserRepository
	ownerRepo         repository.OwnerRepository
	boardingHouseRepo repository.BoardingHouseRepository
	roomRepo          repository.RoomRepository
	serviceRepo       repository.ServiceRepository
	tenantRepo        repository.TenantRepository
	contractRepo      repository.ContractRepository
	invoiceRepo       repository.InvoiceRepository
	paymentRepo       repository.PaymentRepository
	reportRepo        repository.ReportRepository
	adminReportRepo   repository.AdminReportRepository
	notificationRepo  repository.NotificationRepository
	subscriptionRepo  repository.SubscriptionRepository
	licenseKeyRepo    repository.LicenseKeyRepository
	dashboardRepo     repository.DashboardRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	return newPostgresRepository(dbConnections.Writer, dbConnections.Reader)
}

func newPostgresRepository(writerDB, readerDB *gorm.DB) *postgresRepository {
	return &postgresRepository{
		writerDB:          writerDB,
		readerDB:          readerDB,
		userRepo:          NewUserRepository(writerDB, readerDB),
		ownerRepo:         NewOwnerRepository(writerDB, readerDB),
		boardingHouseRepo: NewBoardingHouseRepository(writerDB, readerDB),
		roomRepo:          NewRoomRepository(writerDB, readerDB),
		serviceRepo:       NewServiceRepository(writerDB, readerDB),
		tenantRepo:        NewTenantRepository(writerDB, readerDB),
		contractRepo:      NewContractRepository(writerDB, readerDB),
		invoiceRepo:       NewInvoiceRepository(writerDB, readerDB),
		paymentRepo:       NewPaymentRepository(writerDB, readerDB),
		reportRepo:        NewReportRepository(writerDB, readerDB),
		adminReportRepo:   NewAdminReportRepository(writerDB, readerDB),
		notificationRepo:  NewNotificationRepository(writerDB, readerDB),
		subscriptionRepo:  NewSubscriptionRepository(writerDB, readerDB),
		licenseKeyRepo:    NewLicenseKeyRepository(writerDB, readerDB),
		dashboardRepo:     NewDashboardRepository(readerDB),
	}
}

// RunInTx binds every repository to one transaction on the writer. Reads
// inside the transaction go to the writer too.
func (r *postgresRepository) RunInTx(ctx context.Context, fn func(tx repository.PostgresRepository) error) error {
	return r.writerDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(newPostgresRepository(tx, tx))
	})
}

func (r *postgresRepository) User() repository.UserRepository {
	return r.userRepo
}

func (r *postgresRepository) Owner() repository.OwnerRepository {
	return r.ownerRepo
}

func (r *postgresRepository) BoardingHouse() repository.BoardingHouseRepository {
	return r.boardingHouseRepo
}

func (r *postgresRepository) Room() repository.RoomRepository {
	return r.roomRepo
}

func (r *postgresRepository) Service() repository.ServiceRepository {
	return r.serviceRepo
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Contract() repository.ContractRepository {
	return r.contractRepo
}

func (r *postgresRepository) Invoice() repository.InvoiceRepository {
	return r.invoiceRepo
}

func (r *postgresRepository) Payment() repository.PaymentRepository {
	return r.paymentRepo
}

func (r *postgresRepository) Report() repository.ReportRepository {
	return r.reportRepo
}

func (r *postgresRepository) AdminReport() repository.AdminReportRepository {
	return r.adminReportRepo
}

func (r *postgresRepository) Notification() repository.NotificationRepository {
	return r.notificationRepo
}

func (r *postgresRepository) Subscription() repository.SubscriptionRepository {
	return r.subscriptionRepo
}

func (r *postgresRepository) LicenseKey() repository.LicenseKeyRepository {
	return r.licenseKeyRepo
}

func (r *postgresRepository) Dashboard() repository.DashboardRepository {
	return r.dashboardRepo
}
