package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kingrain94/bhms-api/internal/domain"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("duplicate record")
	// ErrReferenced is returned when a delete would break a foreign key.
	ErrReferenced = errors.New("record is still referenced")
)

// Owner-scoped repositories read the owner id from the request context
// claims and only ever see that owner's rows. Methods suffixed
// AcrossOwners are for background jobs and ignore the scope.

//go:generate mockery --name UserRepository --output ../mocks
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int64, error)
}

//go:generate mockery --name OwnerRepository --output ../mocks
type OwnerRepository interface {
	Create(ctx context.Context, owner *domain.Owner) error
	GetByID(ctx context.Context, id string) (*domain.Owner, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Owner, error)
	Update(ctx context.Context, owner *domain.Owner) error
	List(ctx context.Context, filter domain.OwnerFilter) ([]domain.Owner, int64, error)
}

//go:generate mockery --name BoardingHouseRepository --output ../mocks
type BoardingHouseRepository interface {
	Create(ctx context.Context, house *domain.BoardingHouse) error
	GetByID(ctx context.Context, id string) (*domain.BoardingHouse, error)
	Update(ctx context.Context, house *domain.BoardingHouse) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, page domain.Pagination) ([]domain.BoardingHouse, int64, error)
	CountRooms(ctx context.Context, houseID string) (int64, error)
}

//go:generate mockery --name RoomRepository --output ../mocks
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	LockByID(ctx context.Context, id string) (*domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, int64, error)
	Count(ctx context.Context) (int64, error)
	AttachService(ctx context.Context, roomService *domain.RoomService) error
	DetachService(ctx context.Context, roomID, serviceID string) error
	ListServices(ctx context.Context, roomID string) ([]domain.RoomService, error)
}

//go:generate mockery --name ServiceRepository --output ../mocks
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, svc *domain.Service) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, houseID string, page domain.Pagination) ([]domain.Service, int64, error)
}

//go:generate mockery --name TenantRepository --output ../mocks
type TenantRepository interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Tenant, error)
	Update(ctx context.Context, tenant *domain.Tenant) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.TenantFilter) ([]domain.Tenant, int64, error)
}

//go:generate mockery --name ContractRepository --output ../mocks
type ContractRepository interface {
	Create(ctx context.Context, contract *domain.RentalContract) error
	GetByID(ctx context.Context, id string) (*domain.RentalContract, error)
	LockByID(ctx context.Context, id string) (*domain.RentalContract, error)
	Update(ctx context.Context, contract *domain.RentalContract) error
	List(ctx context.Context, filter domain.ContractFilter) ([]domain.RentalContract, int64, error)
	CountActiveByRoom(ctx context.Context, roomID string) (int64, error)
	CountActiveByTenant(ctx context.Context, tenantID string) (int64, error)
	GetActiveByRoom(ctx context.Context, roomID string) (*domain.RentalContract, error)
	ListActiveByHouse(ctx context.Context, houseID string) ([]domain.RentalContract, error)
	ListExpiredAcrossOwners(ctx context.Context, now time.Time, limit int) ([]domain.RentalContract, error)
}

//go:generate mockery --name InvoiceRepository --output ../mocks
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	LockByID(ctx context.Context, id string) (*domain.Invoice, error)
	Update(ctx context.Context, invoice *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, int64, error)
	ListAll(ctx context.Context, filter domain.InvoiceFilter) ([]domain.Invoice, error)
	ExistsForRoomMonth(ctx context.Context, roomID, billingMonth string) (bool, error)
	ListOverdueAcrossOwners(ctx context.Context, now time.Time, limit int) ([]domain.Invoice, error)
	ListDueSoonAcrossOwners(ctx context.Context, now, until time.Time, limit int) ([]domain.Invoice, error)
}

//go:generate mockery --name PaymentRepository --output ../mocks
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	// GetByProviderRef is not owner scoped: webhooks arrive without claims.
	GetByProviderRef(ctx context.Context, ref string) (*domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
	List(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, int64, error)
	SumSucceeded(ctx context.Context, invoiceID string) (decimal.Decimal, error)
	CountByInvoice(ctx context.Context, invoiceID string) (int64, error)
}

//go:generate mockery --name ReportRepository --output ../mocks
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id string) (*domain.Report, error)
	Update(ctx context.Context, report *domain.Report) error
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.Report, int64, error)
}

// AdminReportRepository is not owner scoped; owners filter by OwnerID.
//
//go:generate mockery --name AdminReportRepository --output ../mocks
type AdminReportRepository interface {
	Create(ctx context.Context, report *domain.ReportAdmin) error
	GetByID(ctx context.Context, id string) (*domain.ReportAdmin, error)
	Update(ctx context.Context, report *domain.ReportAdmin) error
	List(ctx context.Context, filter domain.ReportFilter) ([]domain.ReportAdmin, int64, error)
}

//go:generate mockery --name NotificationRepository --output ../mocks
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
}

//go:generate mockery --name SubscriptionRepository --output ../mocks
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	Update(ctx context.Context, sub *domain.Subscription) error
	GetLatestByOwner(ctx context.Context, ownerID string) (*domain.Subscription, error)
	HasActive(ctx context.Context, ownerID string, at time.Time) (bool, error)
	List(ctx context.Context, ownerID string, page domain.Pagination) ([]domain.Subscription, int64, error)
	ExpireEnded(ctx context.Context, now time.Time) (int64, error)
}

//go:generate mockery --name LicenseKeyRepository --output ../mocks
type LicenseKeyRepository interface {
	CreateBatch(ctx context.Context, keys []domain.LicenseKey) error
	GetByID(ctx context.Context, id string) (*domain.LicenseKey, error)
	LockByKey(ctx context.Context, key string) (*domain.LicenseKey, error)
	Update(ctx context.Context, key *domain.LicenseKey) error
	List(ctx context.Context, filter domain.LicenseKeyFilter) ([]domain.LicenseKey, int64, error)
}

//go:generate mockery --name DashboardRepository --output ../mocks
type DashboardRepository interface {
	// OwnerSummary aggregates the calling owner's data for the given month
	// and the monthly revenue of months.
	OwnerSummary(ctx context.Context, month string, months []string) (*domain.OwnerDashboard, error)
	AdminSummary(ctx context.Context, now time.Time) (*domain.AdminDashboard, error)
}

//go:generate mockery --name TenantSearchRepository --output ../mocks
type TenantSearchRepository interface {
	Index(ctx context.Context, doc *domain.TenantDocument) error
	Delete(ctx context.Context, ownerID, tenantID string) error
	Search(ctx context.Context, ownerID, query string, page domain.Pagination) ([]domain.TenantDocument, error)
	CreateIndex(ctx context.Context, ownerID string) error
}

//go:generate mockery --name PostgresRepository --output ../mocks
type PostgresRepository interface {
	User() UserRepository
	Owner() OwnerRepository
	BoardingHouse() BoardingHouseRepository
	Room() RoomRepository
	Service() ServiceRepository
	Tenant() TenantRepository
	Contract() ContractRepository
	Invoice() InvoiceRepository
	Payment() PaymentRepository
	Report() ReportRepository
	AdminReport() AdminReportRepository
	Notification() NotificationRepository
	Subscription() SubscriptionRepository
	LicenseKey() LicenseKeyRepository
	Dashboard() DashboardRepository
	// RunInTx runs fn against repositories bound to one database transaction.
	RunInTx(ctx context.Context, fn func(tx PostgresRepository) error) error
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	PostgresRepository
	TenantSearch() TenantSearchRepository
	// Transaction is RunInTx for the full repository.
	Transaction(ctx context.Context, fn func(tx Repository) error) error
}
