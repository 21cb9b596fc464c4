package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
)

const maxImageBytes = 5 << 20

//go:generate mockery --name RoomService --output ../mocks
type RoomService interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, int64, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
	AttachService(ctx context.Context, roomID string, req dto.AttachServiceRequest) (*domain.RoomService, error)
	DetachService(ctx context.Context, roomID, serviceID string) error
	ListServices(ctx context.Context, roomID string) ([]domain.RoomService, error)
	UploadImage(ctx context.Context, roomID string, data []byte) (string, *domain.Room, error)
}

type RoomHandler struct {
	*BaseHandler
	service RoomService
}

func NewRoomHandler(service RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// CreateRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param body body dto.CreateRoomRequest true "Room"
// @Success 201 {object} domain.Room
// @Failure 400 {object} dto.Error
// @Failure 402 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	room, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ListRooms godoc
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Param boarding_house_id query string false "Filter by boarding house"
// @Param status query string false "available, occupied or maintenance"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.Room]
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	filter := domain.RoomFilter{
		Pagination:      pageFromQuery(c),
		BoardingHouseID: c.Query("boarding_house_id"),
		Status:          c.Query("status"),
	}
	rooms, total, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(rooms, total, filter.Pagination))
}

// GetRoom godoc
// @Summary Get a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} domain.Room
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	room, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// UpdateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param body body dto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} domain.Room
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	room, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// DeleteRoom godoc
// @Summary Delete a room
// @Description Rooms with contracts or invoices cannot be deleted
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListRoomServices godoc
// @Summary List services attached to a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} domain.RoomService
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /rooms/{id}/services [get]
func (h *RoomHandler) ListRoomServices(c *gin.Context) {
	services, err := h.service.ListServices(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if services == nil {
		services = []domain.RoomService{}
	}

	c.JSON(http.StatusOK, services)
}

// AttachService godoc
// @Summary Attach a billable service to a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param body body dto.AttachServiceRequest true "Service and fixed quantity"
// @Success 201 {object} domain.RoomService
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security BearerAuth
// @Router /rooms/{id}/services [post]
func (h *RoomHandler) AttachService(c *gin.Context) {
	var req dto.AttachServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	rs, err := h.service.AttachService(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rs)
}

// DetachService godoc
// @Summary Detach a billable service from a room
// @Tags rooms
// @Param id path string true "Room ID"
// @Param service_id path string true "Service ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /rooms/{id}/services/{service_id} [delete]
func (h *RoomHandler) DetachService(c *gin.Context) {
	if err := h.service.DetachService(h.RequestCtx(c), c.Param("id"), c.Param("service_id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage godoc
// @Summary Upload a room photo
// @Description The image is resized and stored as JPEG
// @Tags rooms
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Room ID"
// @Param image formData file true "Image file"
// @Success 201 {object} dto.ImageUploadResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /rooms/{id}/images [post]
func (h *RoomHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "image file is required"})
		return
	}
	if header.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "image is larger than 5MB"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	url, room, err := h.service.UploadImage(h.RequestCtx(c), c.Param("id"), data)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ImageUploadResponse{URL: url, Room: room})
}
