package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/bhms-api/internal/api/dto"
	"github.com/kingrain94/bhms-api/internal/domain"
)

//go:generate mockery --name BoardingHouseService --output ../mocks
type BoardingHouseService interface {
	Create(ctx context.Context, req dto.BoardingHouseRequest) (*domain.BoardingHouse, error)
	GetByID(ctx context.Context, id string) (*domain.BoardingHouse, error)
	List(ctx context.Context, page domain.Pagination) ([]domain.BoardingHouse, int64, error)
	Update(ctx context.Context, id string, req dto.BoardingHouseRequest) (*domain.BoardingHouse, error)
	Delete(ctx context.Context, id string) error
}

type BoardingHouseHandler struct {
	*BaseHandler
	service BoardingHouseService
}

func NewBoardingHouseHandler(service BoardingHouseService) *BoardingHouseHandler {
	return &BoardingHouseHandler{service: service}
}

// CreateBoardingHouse godoc
// @Summary Create a boarding house
// @Tags boarding-houses
// @Accept json
// @Produce json
// @Param body body dto.BoardingHouseRequest true "Boarding house"
// @Success 201 {object} domain.BoardingHouse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 402 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /boarding-houses [post]
func (h *BoardingHouseHandler) CreateBoardingHouse(c *gin.Context) {
	var req dto.BoardingHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	house, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, house)
}

// ListBoardingHouses godoc
// @Summary List boarding houses
// @Tags boarding-houses
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.PageResponse[domain.BoardingHouse]
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /boarding-houses [get]
func (h *BoardingHouseHandler) ListBoardingHouses(c *gin.Context) {
	page := pageFromQuery(c)
	houses, total, err := h.service.List(h.RequestCtx(c), page)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPage(houses, total, page))
}

// GetBoardingHouse godoc
// @Summary Get a boarding house
// @Tags boarding-houses
// @Produce json
// @Param id path string true "Boarding house ID"
// @Success 200 {object} domain.BoardingHouse
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /boarding-houses/{id} [get]
func (h *BoardingHouseHandler) GetBoardingHouse(c *gin.Context) {
	house, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, house)
}

// UpdateBoardingHouse godoc
// @Summary Update a boarding house
// @Tags boarding-houses
// @Accept json
// @Produce json
// @Param id path string true "Boarding house ID"
// @Param body body dto.BoardingHouseRequest true "Boarding house"
// @Success 200 {object} domain.BoardingHouse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /boarding-houses/{id} [put]
func (h *BoardingHouseHandler) UpdateBoardingHouse(c *gin.Context) {
	var req dto.BoardingHouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	house, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, house)
}

// DeleteBoardingHouse godoc
// @Summary Delete a boarding house
// @Description Only houses without rooms can be deleted
// @Tags boarding-houses
// @Param id path string true "Boarding house ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security BearerAuth
// @Router /boarding-houses/{id} [delete]
func (h *BoardingHouseHandler) DeleteBoardingHouse(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
