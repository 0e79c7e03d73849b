package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/service"
)

//go:generate mockery --name BuildingService --output ../mocks
type BuildingService interface {
	Create(ctx context.Context, req dto.CreateBuildingRequest) (*dto.BuildingResponse, error)
	List(ctx context.Context) ([]dto.BuildingResponse, error)
	RegenerateToken(ctx context.Context, id string) (*dto.BuildingResponse, error)
}

type BuildingHandler struct {
	*BaseHandler
	service BuildingService
}

func NewBuildingHandler(service BuildingService) *BuildingHandler {
	return &BuildingHandler{service: service}
}

// CreateBuilding godoc
// @Summary Create a new building
// @Description Register a building and mint its API token. The token is only shown in full here and on regeneration.
// @Tags buildings
// @Accept json
// @Produce json
// @Param body body dto.CreateBuildingRequest true "Building object"
// @Success 201 {object} dto.BuildingResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security AdminToken
// @Router /admin/buildings [post]
func (h *BuildingHandler) CreateBuilding(c *gin.Context) {
	var req dto.CreateBuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	building, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, building)
}

// ListBuildings godoc
// @Summary List all buildings
// @Description Get all registered buildings including their API tokens
// @Tags buildings
// @Produce json
// @Success 200 {array} dto.BuildingResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security AdminToken
// @Router /admin/buildings [get]
func (h *BuildingHandler) ListBuildings(c *gin.Context) {
	buildings, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, buildings)
}

// RegenerateToken godoc
// @Summary Regenerate a building's API token
// @Description Replace the building's API token. The old token stops working immediately.
// @Tags buildings
// @Produce json
// @Param id path string true "Building ID"
// @Success 200 {object} dto.BuildingResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security AdminToken
// @Router /admin/buildings/{id}/regenerate-token [post]
func (h *BuildingHandler) RegenerateToken(c *gin.Context) {
	building, err := h.service.RegenerateToken(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBuildingNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Building not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, building)
}
