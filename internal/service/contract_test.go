package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/mocks"
	"github.com/kingrain94/bhms-api/internal/repository"
	"github.com/kingrain94/bhms-api/pkg/logger"
)

type ContractServiceTestSuite struct {
	suite.Suite
	repos   *repoMocks
	index   *mocks.IndexQueue
	service *ContractService
	start   time.Time
}

func (s *ContractServiceTestSuite) SetupTest() {
	s.repos = newRepoMocks()
	s.index = new(mocks.IndexQueue)
	s.service = NewContractService(s.repos.repo, s.index, logger.NewNop())
	s.start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
}

func TestContractService(t *testing.T) {
	suite.Run(t, new(ContractServiceTestSuite))
}

func (s *ContractServiceTestSuite) room(capacity int, status domain.RoomStatus) *domain.Room {
	return &domain.Room{Base: domain.Base{ID: "room-1"}, Name: "101", Price: dec("3000000"), Capacity: capacity, Status: status}
}

func (s *ContractServiceTestSuite) TestCreate_Success() {
	// Arrange
	ctx := ownerCtx()
	room := s.room(2, domain.RoomAvailable)
	tenant := &domain.Tenant{Base: domain.Base{ID: "tenant-1"}, OwnerID: "owner-1", FullName: "Nguyen Van A"}
	req := dto.CreateContractRequest{RoomID: "room-1", TenantID: "tenant-1", StartDate: s.start, Deposit: dec("3000000")}

	s.repos.room.On("LockByID", ctx, "room-1").Return(room, nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(tenant, nil)
	s.repos.contract.On("CountActiveByTenant", ctx, "tenant-1").Return(int64(0), nil)
	s.repos.contract.On("CountActiveByRoom", ctx, "room-1").Return(int64(1), nil)
	s.repos.contract.On("Create", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(nil)
	s.repos.tenant.On("Update", ctx, tenant).Return(nil)
	s.repos.room.On("Update", ctx, room).Return(nil)
	s.index.On("SendIndexTenantMessage", ctx, mock.MatchedBy(func(doc *domain.TenantDocument) bool {
		return doc.ID == "tenant-1" && doc.RoomID == "room-1" && doc.RoomName == "101"
	})).Return(nil)

	// Act
	contract, err := s.service.Create(ctx, req)

	// Assert
	s.Require().NoError(err)
	s.Equal("owner-1", contract.OwnerID)
	s.True(dec("3000000").Equal(contract.MonthlyRent))
	s.Equal(defaultPaymentDay, contract.PaymentDay)
	s.Equal(domain.ContractActive, contract.Status)
	s.Equal(domain.RoomOccupied, room.Status)
	s.Equal(domain.TenantActive, tenant.Status)
	s.index.AssertExpectations(s.T())
}

func (s *ContractServiceTestSuite) TestCreate_RoomFull() {
	// Arrange
	ctx := ownerCtx()
	s.repos.room.On("LockByID", ctx, "room-1").Return(s.room(1, domain.RoomOccupied), nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
	s.repos.contract.On("CountActiveByTenant", ctx, "tenant-1").Return(int64(0), nil)
	s.repos.contract.On("CountActiveByRoom", ctx, "room-1").Return(int64(1), nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateContractRequest{RoomID: "room-1", TenantID: "tenant-1", StartDate: s.start})

	// Assert
	s.ErrorIs(err, ErrRoomFull)
	s.repos.contract.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ContractServiceTestSuite) TestCreate_TenantAlreadyHasContract() {
	// Arrange
	ctx := ownerCtx()
	s.repos.room.On("LockByID", ctx, "room-1").Return(s.room(2, domain.RoomAvailable), nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(&domain.Tenant{Base: domain.Base{ID: "tenant-1"}}, nil)
	s.repos.contract.On("CountActiveByTenant", ctx, "tenant-1").Return(int64(1), nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateContractRequest{RoomID: "room-1", TenantID: "tenant-1", StartDate: s.start})

	// Assert
	s.ErrorIs(err, ErrTenantHasContract)
}

func (s *ContractServiceTestSuite) TestCreate_ConcurrentContractIsConflict() {
	// Arrange
	ctx := ownerCtx()
	tenant := &domain.Tenant{Base: domain.Base{ID: "tenant-1"}, OwnerID: "owner-1"}
	s.repos.room.On("LockByID", ctx, "room-1").Return(s.room(2, domain.RoomAvailable), nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(tenant, nil)
	s.repos.contract.On("CountActiveByTenant", ctx, "tenant-1").Return(int64(0), nil)
	s.repos.contract.On("CountActiveByRoom", ctx, "room-1").Return(int64(0), nil)
	s.repos.contract.On("Create", ctx, mock.AnythingOfType("*domain.RentalContract")).Return(repository.ErrDuplicate)

	// Act
	_, err := s.service.Create(ctx, dto.CreateContractRequest{RoomID: "room-1", TenantID: "tenant-1", StartDate: s.start})

	// Assert
	s.ErrorIs(err, ErrTenantHasContract)
	s.ErrorIs(err, ErrConflict)
	s.repos.tenant.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *ContractServiceTestSuite) TestCreate_RoomUnderMaintenance() {
	// Arrange
	ctx := ownerCtx()
	s.repos.room.On("LockByID", ctx, "room-1").Return(s.room(2, domain.RoomMaintenance), nil)

	// Act
	_, err := s.service.Create(ctx, dto.CreateContractRequest{RoomID: "room-1", TenantID: "tenant-1", StartDate: s.start})

	// Assert
	s.ErrorIs(err, ErrRoomUnderMaintenance)
}

func (s *ContractServiceTestSuite) TestCreate_EndBeforeStart() {
	// Arrange
	end := s.start.AddDate(0, 0, -1)

	// Act
	_, err := s.service.Create(ownerCtx(), dto.CreateContractRequest{RoomID: "room-1", TenantID: "tenant-1", StartDate: s.start, EndDate: &end})

	// Assert
	s.ErrorIs(err, ErrInvalidDateRange)
}

func (s *ContractServiceTestSuite) TestCreate_UnknownRoom() {
	// Arrange
	ctx := ownerCtx()
	s.repos.room.On("LockByID", ctx, "room-x").Return(nil, repository.ErrNotFound)

	// Act
	_, err := s.service.Create(ctx, dto.CreateContractRequest{RoomID: "room-x", TenantID: "tenant-1", StartDate: s.start})

	// Assert
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *ContractServiceTestSuite) TestTerminate_MovesTenantOut() {
	// Arrange
	ctx := ownerCtx()
	contract := &domain.RentalContract{Base: domain.Base{ID: "contract-1"}, RoomID: "room-1", TenantID: "tenant-1", Status: domain.ContractActive}
	tenant := &domain.Tenant{Base: domain.Base{ID: "tenant-1"}, RoomID: strPtr("room-1"), Status: domain.TenantActive}
	room := s.room(2, domain.RoomOccupied)

	s.repos.contract.On("LockByID", ctx, "contract-1").Return(contract, nil)
	s.repos.contract.On("Update", ctx, contract).Return(nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(tenant, nil)
	s.repos.tenant.On("Update", ctx, tenant).Return(nil)
	s.repos.room.On("LockByID", ctx, "room-1").Return(room, nil)
	s.repos.contract.On("CountActiveByRoom", ctx, "room-1").Return(int64(1), nil)
	s.index.On("SendIndexTenantMessage", ctx, mock.Anything).Return(nil)

	// Act
	terminated, err := s.service.Terminate(ctx, "contract-1")

	// Assert
	s.Require().NoError(err)
	s.Equal(domain.ContractTerminated, terminated.Status)
	s.NotNil(terminated.TerminatedAt)
	s.Equal(domain.TenantMovedOut, tenant.Status)
	s.Nil(tenant.RoomID)
	// Another tenant still lives there.
	s.Equal(domain.RoomOccupied, room.Status)
	s.repos.room.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *ContractServiceTestSuite) TestTerminate_AlreadyClosed() {
	// Arrange
	ctx := ownerCtx()
	s.repos.contract.On("LockByID", ctx, "contract-1").Return(&domain.RentalContract{Base: domain.Base{ID: "contract-1"}, Status: domain.ContractExpired}, nil)

	// Act
	_, err := s.service.Terminate(ctx, "contract-1")

	// Assert
	s.ErrorIs(err, ErrContractNotActive)
}

func (s *ContractServiceTestSuite) TestUpdate_MoveToAnotherRoom() {
	// Arrange
	ctx := ownerCtx()
	contract := &domain.RentalContract{Base: domain.Base{ID: "contract-1"}, RoomID: "room-1", TenantID: "tenant-1", StartDate: s.start, Status: domain.ContractActive}
	oldRoom := s.room(1, domain.RoomOccupied)
	newRoom := &domain.Room{Base: domain.Base{ID: "room-2"}, Name: "102", Capacity: 1, Status: domain.RoomAvailable}
	tenant := &domain.Tenant{Base: domain.Base{ID: "tenant-1"}, RoomID: strPtr("room-1")}
	target := "room-2"

	s.repos.contract.On("GetByID", ctx, "contract-1").Return(contract, nil)
	s.repos.room.On("LockByID", ctx, "room-1").Return(oldRoom, nil)
	s.repos.room.On("LockByID", ctx, "room-2").Return(newRoom, nil)
	s.repos.contract.On("CountActiveByRoom", ctx, "room-2").Return(int64(0), nil).Once()
	s.repos.contract.On("Update", ctx, contract).Return(nil)
	s.repos.tenant.On("GetByID", ctx, "tenant-1").Return(tenant, nil)
	s.repos.tenant.On("Update", ctx, tenant).Return(nil)
	s.repos.contract.On("CountActiveByRoom", ctx, "room-1").Return(int64(0), nil)
	s.repos.contract.On("CountActiveByRoom", ctx, "room-2").Return(int64(1), nil)
	s.repos.room.On("Update", ctx, oldRoom).Return(nil)
	s.repos.room.On("Update", ctx, newRoom).Return(nil)
	s.index.On("SendIndexTenantMessage", ctx, mock.MatchedBy(func(doc *domain.TenantDocument) bool {
		return doc.RoomID == "room-2" && doc.RoomName == "102"
	})).Return(nil)

	// Act
	updated, err := s.service.Update(ctx, "contract-1", dto.UpdateContractRequest{RoomID: &target})

	// Assert
	s.Require().NoError(err)
	s.Equal("room-2", updated.RoomID)
	s.Equal(domain.RoomAvailable, oldRoom.Status)
	s.Equal(domain.RoomOccupied, newRoom.Status)
	s.index.AssertExpectations(s.T())
}
