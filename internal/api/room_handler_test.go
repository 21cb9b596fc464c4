package api

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
	"github.com/kingrain94/bhms-api/internal/service"
)

type MockRoomService struct {
	mock.Mock
}

func (m *MockRoomService) Create(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Room), args.Get(1).(int64), args.Error(2)
}

func (m *MockRoomService) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (*domain.Room, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRoomService) AttachService(ctx context.Context, roomID string, req dto.AttachServiceRequest) (*domain.RoomService, error) {
	args := m.Called(ctx, roomID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomService), args.Error(1)
}

func (m *MockRoomService) DetachService(ctx context.Context, roomID, serviceID string) error {
	args := m.Called(ctx, roomID, serviceID)
	return args.Error(0)
}

func (m *MockRoomService) ListServices(ctx context.Context, roomID string) ([]domain.RoomService, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RoomService), args.Error(1)
}

func (m *MockRoomService) UploadImage(ctx context.Context, roomID string, data []byte) (string, *domain.Room, error) {
	args := m.Called(ctx, roomID, data)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Room), args.Error(2)
}

type RoomHandlerTestSuite struct {
	suite.Suite
	mockService *MockRoomService
	handler     *RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	s.mockService = new(MockRoomService)
	s.handler = NewRoomHandler(s.mockService)
}

func TestRoomHandler(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func jsonContext(method, target string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(method, target, bytes.NewBuffer(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func (s *RoomHandlerTestSuite) TestCreateRoom_Success() {
	// Arrange
	req := dto.CreateRoomRequest{
		BoardingHouseID: "6f1c1a0e-8a57-4c52-9c61-2f0b5f7d9a11",
		Name:            "101",
		Price:           decimal.NewFromInt(3500000),
		Capacity:        2,
	}
	room := &domain.Room{Base: domain.Base{ID: "room-1"}, Name: "101", Status: domain.RoomAvailable}
	s.mockService.On("Create", mock.Anything, mock.MatchedBy(func(r dto.CreateRoomRequest) bool {
		return r.Name == "101" && r.Price.Equal(req.Price) && r.Capacity == 2
	})).Return(room, nil)
	c, w := jsonContext(http.MethodPost, "/rooms", req)

	// Act
	s.handler.CreateRoom(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response domain.Room
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("room-1", response.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *RoomHandlerTestSuite) TestCreateRoom_InvalidBody() {
	// Arrange
	c, w := jsonContext(http.MethodPost, "/rooms", map[string]string{"name": "101"})

	// Act
	s.handler.CreateRoom(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *RoomHandlerTestSuite) TestCreateRoom_LimitReached() {
	// Arrange
	req := dto.CreateRoomRequest{BoardingHouseID: "6f1c1a0e-8a57-4c52-9c61-2f0b5f7d9a11", Name: "101", Price: decimal.NewFromInt(1)}
	s.mockService.On("Create", mock.Anything, mock.Anything).Return(nil, service.ErrRoomLimitReached)
	c, w := jsonContext(http.MethodPost, "/rooms", req)

	// Act
	s.handler.CreateRoom(c)

	// Assert
	s.Equal(http.StatusPaymentRequired, w.Code)
}

func (s *RoomHandlerTestSuite) TestListRooms_Filters() {
	// Arrange
	expected := domain.RoomFilter{
		Pagination:      domain.Pagination{Page: 2, PageSize: 5, Limit: 5, Offset: 5},
		BoardingHouseID: "house-1",
		Status:          "available",
	}
	s.mockService.On("List", mock.Anything, expected).Return([]domain.Room{{Name: "101"}}, int64(6), nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/rooms?boarding_house_id=house-1&status=available&page=2&page_size=5", nil)

	// Act
	s.handler.ListRooms(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.PageResponse[domain.Room]
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(int64(6), response.Total)
	s.Equal(2, response.Page)
	s.Len(response.Items, 1)
}

func (s *RoomHandlerTestSuite) TestGetRoom_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "missing").Return(nil, service.ErrRoomNotFound)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/rooms/missing", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	// Act
	s.handler.GetRoom(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *RoomHandlerTestSuite) TestDeleteRoom_HasTenants() {
	// Arrange
	s.mockService.On("Delete", mock.Anything, "room-1").Return(service.ErrRoomHasTenants)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/rooms/room-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "room-1"}}

	// Act
	s.handler.DeleteRoom(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
}

func (s *RoomHandlerTestSuite) TestListRoomServices_EmptyIsArray() {
	// Arrange
	s.mockService.On("ListServices", mock.Anything, "room-1").Return(nil, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/rooms/room-1/services", nil)
	c.Params = gin.Params{{Key: "id", Value: "room-1"}}

	// Act
	s.handler.ListRoomServices(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq("[]", w.Body.String())
}

func (s *RoomHandlerTestSuite) TestUploadImage() {
	// Arrange
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("image", "room.png")
	s.Require().NoError(err)
	_, _ = part.Write([]byte("fake-png"))
	s.Require().NoError(form.Close())

	room := &domain.Room{Base: domain.Base{ID: "room-1"}}
	s.mockService.On("UploadImage", mock.Anything, "room-1", []byte("fake-png")).Return("https://cdn.example.com/a.jpg", room, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/rooms/room-1/images", &body)
	c.Request.Header.Set("Content-Type", form.FormDataContentType())
	c.Params = gin.Params{{Key: "id", Value: "room-1"}}

	// Act
	s.handler.UploadImage(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.ImageUploadResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("https://cdn.example.com/a.jpg", response.URL)
}

func (s *RoomHandlerTestSuite) TestUploadImage_MissingFile() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/rooms/room-1/images", nil)
	c.Params = gin.Params{{Key: "id", Value: "room-1"}}

	// Act
	s.handler.UploadImage(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "UploadImage", mock.Anything, mock.Anything, mock.Anything)
}
