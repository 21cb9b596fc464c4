package service

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/mocks"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type SweepServiceTestSuite struct {
	suite.Suite
	repos    *repoMocks
	locker   *mocks.Locker
	notifier *mocks.Notifier
	mail     *mocks.MailQueue
	index    *mocks.IndexQueue
	service  *SweepService
	now      time.Time
	released bool
}

func (s *SweepServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks()
	s.locker = new(mocks.Locker)
	s.notifier = new(mocks.Notifier)
	s.mail = new(mocks.MailQueue)
	s.index = new(mocks.IndexQueue)
	s.now = time.Date(2025, 3, 12, 1, 0, 0, 0, time.UTC)
	s.released = false

	cfg := testConfig()
	cfg.OverdueSweepInterval = time.Hour
	s.service = NewSweepService(s.repos.repo, s.locker, s.notifier, s.mail, s.index, cfg, logger.NewNop())
	s.service.now = func() time.Time { return s.now }
}

func TestSweepService(t *testing.T) {
	suite.Run(t, new(SweepServiceTestSuite))
}

func (s *SweepServiceTestSuite) lockAcquired() {
	s.locker.On("TryLock", mock.Anything, sweepLockKey, 10*time.Minute).
		Return(func() { s.released = true }, true, nil)
}

// nothingElseDue stubs the sweep phases a test does not exercise.
func (s *SweepServiceTestSuite) nothingElseDue(overdue, reminders, contracts bool) {
	if overdue {
		s.repos.invoice.On("ListOverdueAcrossOwners", mock.Anything, s.now, sweepBatchSize).Return([]domain.Invoice{}, nil)
	}
	if reminders {
		s.repos.invoice.On("ListDueSoonAcrossOwners", mock.Anything, s.now, s.now.AddDate(0, 0, 3), sweepBatchSize).Return([]domain.Invoice{}, nil)
	}
	if contracts {
		s.repos.contract.On("ListExpiredAcrossOwners", mock.Anything, s.now, sweepBatchSize).Return([]domain.RentalContract{}, nil)
	}
	s.repos.subscription.On("ExpireEnded", mock.Anything, s.now).Return(int64(0), nil)
}

func (s *SweepServiceTestSuite) TestRun_LockHeldElsewhere() {
	// Arrange
	s.locker.On("TryLock", mock.Anything, sweepLockKey, 10*time.Minute).Return(nil, false, nil)

	// Act
	resp, err := s.service.Run(adminCtx())

	// Assert
	s.Nil(resp)
	s.ErrorIs(err, ErrSweepInProgress)
	s.repos.invoice.AssertNotCalled(s.T(), "ListOverdueAcrossOwners", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SweepServiceTestSuite) TestRun_LockError() {
	// Arrange
	s.locker.On("TryLock", mock.Anything, sweepLockKey, 10*time.Minute).Return(nil, false, errors.New("redis down"))

	// Act
	_, err := s.service.Run(adminCtx())

	// Assert
	s.ErrorContains(err, "redis down")
}

func (s *SweepServiceTestSuite) TestRun_MarksOverdueAndNotifies() {
	// Arrange
	s.lockAcquired()
	s.nothingElseDue(false, true, true)

	due := s.now.AddDate(0, 0, -1)
	candidate := domain.Invoice{Base: domain.Base{ID: "inv-1"}, OwnerID: "owner-1"}
	locked := &domain.Invoice{
		Base:         domain.Base{ID: "inv-1"},
		OwnerID:      "owner-1",
		TenantID:     "tenant-1",
		BillingMonth: "2025-02",
		TotalAmount:  dec("3000000"),
		Status:       domain.InvoiceUnpaid,
		DueDate:      due,
	}
	s.repos.invoice.On("ListOverdueAcrossOwners", mock.Anything, s.now, sweepBatchSize).Return([]domain.Invoice{candidate}, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(locked, nil)
	s.repos.invoice.On("Update", mock.Anything, locked).Return(nil)
	s.repos.tenant.On("GetByID", mock.Anything, "tenant-1").Return(&domain.Tenant{
		Base:     domain.Base{ID: "tenant-1"},
		UserID:   strPtr("user-tenant"),
		FullName: "Le Van C",
		Email:    "c@example.com",
	}, nil)
	s.repos.owner.On("GetByID", mock.Anything, "owner-1").Return(&domain.Owner{UserID: "user-owner"}, nil)
	s.notifier.On("Notify", mock.Anything, "user-owner", domain.NotificationInvoiceOverdue, "Invoice overdue", mock.Anything, "inv-1").Return().Once()
	s.notifier.On("Notify", mock.Anything, "user-tenant", domain.NotificationInvoiceOverdue, "Invoice overdue", mock.Anything, "inv-1").Return().Once()
	s.mail.On("SendEmail", mock.Anything, mock.MatchedBy(func(e *domain.Email) bool {
		return e.Subject == "Invoice overdue: 2025-02"
	})).Return(nil).Once()

	// Act
	resp, err := s.service.Run(adminCtx())

	// Assert
	s.Require().NoError(err)
	s.Equal(1, resp.Overdue)
	s.Equal(domain.InvoiceOverdue, locked.Status)
	s.Require().NotNil(locked.OverdueNotifiedAt)
	s.True(s.released)
	s.notifier.AssertExpectations(s.T())
	s.mail.AssertExpectations(s.T())
}

func (s *SweepServiceTestSuite) TestRun_SkipsInvoicePaidMeanwhile() {
	// Arrange
	s.lockAcquired()
	s.nothingElseDue(false, true, true)

	s.repos.invoice.On("ListOverdueAcrossOwners", mock.Anything, s.now, sweepBatchSize).
		Return([]domain.Invoice{{Base: domain.Base{ID: "inv-1"}, OwnerID: "owner-1"}}, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(&domain.Invoice{
		Base:    domain.Base{ID: "inv-1"},
		Status:  domain.InvoicePaid,
		DueDate: s.now.AddDate(0, 0, -1),
	}, nil)

	// Act
	resp, err := s.service.Run(adminCtx())

	// Assert
	s.Require().NoError(err)
	s.Equal(0, resp.Overdue)
	s.repos.invoice.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.notifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SweepServiceTestSuite) TestRun_SendsEachReminderOnce() {
	// Arrange
	s.lockAcquired()
	s.nothingElseDue(true, false, true)

	fresh := &domain.Invoice{Base: domain.Base{ID: "inv-1"}, OwnerID: "owner-1", TenantID: "tenant-1", BillingMonth: "2025-03", Status: domain.InvoiceUnpaid, TotalAmount: dec("100")}
	reminded := &domain.Invoice{Base: domain.Base{ID: "inv-2"}, OwnerID: "owner-1", Status: domain.InvoiceUnpaid, ReminderSentAt: &s.now}
	s.repos.invoice.On("ListDueSoonAcrossOwners", mock.Anything, s.now, s.now.AddDate(0, 0, 3), sweepBatchSize).
		Return([]domain.Invoice{*fresh, *reminded}, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-1").Return(fresh, nil)
	s.repos.invoice.On("LockByID", mock.Anything, "inv-2").Return(reminded, nil)
	s.repos.invoice.On("Update", mock.Anything, fresh).Return(nil).Once()
	s.repos.tenant.On("GetByID", mock.Anything, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}, Email: "d@example.com"}, nil)
	s.mail.On("SendEmail", mock.Anything, mock.MatchedBy(func(e *domain.Email) bool {
		return e.Subject == "Invoice due soon: 2025-03"
	})).Return(nil).Once()

	// Act
	resp, err := s.service.Run(adminCtx())

	// Assert
	s.Require().NoError(err)
	s.Equal(1, resp.Reminded)
	s.NotNil(fresh.ReminderSentAt)
	s.repos.invoice.AssertExpectations(s.T())
	s.mail.AssertExpectations(s.T())
}

func (s *SweepServiceTestSuite) TestRun_ExpiresContracts() {
	// Arrange
	s.lockAcquired()
	s.nothingElseDue(true, true, false)

	end := s.now.AddDate(0, 0, -1)
	contract := domain.RentalContract{
		Base:     domain.Base{ID: "contract-1"},
		OwnerID:  "owner-1",
		RoomID:   "room-1",
		TenantID: "tenant-1",
		EndDate:  &end,
		Status:   domain.ContractActive,
	}
	tenant := &domain.Tenant{Base: domain.Base{ID: "tenant-1"}, OwnerID: "owner-1", RoomID: strPtr("room-1"), FullName: "Pham D", Status: domain.TenantActive}
	room := &domain.Room{Base: domain.Base{ID: "room-1"}, Status: domain.RoomOccupied, Capacity: 1}

	locked := contract
	s.repos.contract.On("ListExpiredAcrossOwners", mock.Anything, s.now, sweepBatchSize).Return([]domain.RentalContract{contract}, nil)
	s.repos.contract.On("LockByID", mock.Anything, "contract-1").Return(&locked, nil)
	s.repos.contract.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.RentalContract) bool {
		return c.ID == "contract-1" && c.Status == domain.ContractExpired
	})).Return(nil)
	s.repos.tenant.On("GetByID", mock.Anything, "tenant-1").Return(tenant, nil)
	s.repos.tenant.On("Update", mock.Anything, tenant).Return(nil)
	s.repos.room.On("LockByID", mock.Anything, "room-1").Return(room, nil)
	s.repos.contract.On("CountActiveByRoom", mock.Anything, "room-1").Return(int64(0), nil)
	s.repos.room.On("Update", mock.Anything, room).Return(nil)
	s.index.On("SendIndexTenantMessage", mock.Anything, mock.MatchedBy(func(doc *domain.TenantDocument) bool {
		return doc.ID == "tenant-1" && doc.Status == string(domain.TenantMovedOut)
	})).Return(nil)
	s.repos.owner.On("GetByID", mock.Anything, "owner-1").Return(&domain.Owner{UserID: "user-owner"}, nil)
	s.notifier.On("Notify", mock.Anything, "user-owner", domain.NotificationContractExpired, "Contract expired", mock.Anything, "contract-1").Return()

	// Act
	resp, err := s.service.Run(adminCtx())

	// Assert
	s.Require().NoError(err)
	s.Equal(1, resp.ExpiredContracts)
	s.Equal(domain.TenantMovedOut, tenant.Status)
	s.Nil(tenant.RoomID)
	s.Equal(domain.RoomAvailable, room.Status)
	s.index.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func (s *SweepServiceTestSuite) TestRun_SkipsContractTerminatedMeanwhile() {
	// Arrange
	s.lockAcquired()
	s.nothingElseDue(true, true, false)

	end := s.now.AddDate(0, 0, -1)
	listed := domain.RentalContract{
		Base:     domain.Base{ID: "contract-1"},
		OwnerID:  "owner-1",
		RoomID:   "room-1",
		TenantID: "tenant-1",
		EndDate:  &end,
		Status:   domain.ContractActive,
	}
	terminatedAt := s.now.Add(-time.Minute)
	current := listed
	current.Status = domain.ContractTerminated
	current.TerminatedAt = &terminatedAt

	s.repos.contract.On("ListExpiredAcrossOwners", mock.Anything, s.now, sweepBatchSize).Return([]domain.RentalContract{listed}, nil)
	s.repos.contract.On("LockByID", mock.Anything, "contract-1").Return(&current, nil)

	// Act
	resp, err := s.service.Run(adminCtx())

	// Assert
	s.Require().NoError(err)
	s.Equal(0, resp.ExpiredContracts)
	s.Equal(domain.ContractTerminated, current.Status)
	s.repos.contract.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.repos.tenant.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
	s.notifier.AssertNotCalled(s.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *SweepServiceTestSuite) TestRun_ReportsExpiredSubscriptions() {
	// Arrange
	s.lockAcquired()
	s.repos.invoice.On("ListOverdueAcrossOwners", mock.Anything, s.now, sweepBatchSize).Return([]domain.Invoice{}, nil)
	s.repos.invoice.On("ListDueSoonAcrossOwners", mock.Anything, s.now, s.now.AddDate(0, 0, 3), sweepBatchSize).Return([]domain.Invoice{}, nil)
	s.repos.contract.On("ListExpiredAcrossOwners", mock.Anything, s.now, sweepBatchSize).Return([]domain.RentalContract{}, nil)
	s.repos.subscription.On("ExpireEnded", mock.Anything, s.now).Return(int64(4), nil)

	// Act
	resp, err := s.service.Run(adminCtx())

	// Assert
	s.Require().NoError(err)
	s.Equal(int64(4), resp.ExpiredSubscription)
	s.True(s.released)
}
