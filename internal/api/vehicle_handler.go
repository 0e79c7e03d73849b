package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/middleware"
	"github.com/khangtran94/parking-alpr-api/internal/service"
)

//go:generate mockery --name VehicleService --output ../mocks
type VehicleService interface {
	Create(ctx context.Context, buildingID string, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error)
	Get(ctx context.Context, buildingID, rawPlate string) (*dto.VehicleResponse, error)
	List(ctx context.Context, buildingID string, activeOnly bool, offset, limit int) ([]dto.VehicleResponse, error)
	Update(ctx context.Context, buildingID, rawPlate string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error)
	Deactivate(ctx context.Context, buildingID, rawPlate string) error
}

type VehicleHandler struct {
	*BaseHandler
	service VehicleService
}

func NewVehicleHandler(service VehicleService) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// CreateVehicle godoc
// @Summary Register a vehicle
// @Description Register a vehicle under the authenticated building. The plate is canonicalized before storage.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param body body dto.CreateVehicleRequest true "Vehicle object"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	vehicle, err := h.service.Create(h.RequestCtx(c), building.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlate):
			c.JSON(http.StatusBadRequest, dto.Error{Error: "License plate must contain 4 to 20 alphanumeric characters"})
		case errors.Is(err, service.ErrPlateAlreadyRegistered):
			c.JSON(http.StatusConflict, dto.Error{Error: "License plate already registered for this building"})
		default:
			c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// ListVehicles godoc
// @Summary List registered vehicles
// @Description List the building's vehicles, newest first. Deactivated vehicles are excluded unless include_inactive is set.
// @Tags vehicles
// @Produce json
// @Param skip query int false "Number of records to skip" default(0)
// @Param limit query int false "Maximum records to return" default(100)
// @Param include_inactive query bool false "Include deactivated vehicles" default(false)
// @Success 200 {array} dto.VehicleResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	includeInactive := c.Query("include_inactive") == "true"

	vehicles, err := h.service.List(h.RequestCtx(c), building.ID, !includeInactive, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle godoc
// @Summary Get a vehicle by license plate
// @Description Look up one vehicle by its plate. Matches deactivated vehicles too.
// @Tags vehicles
// @Produce json
// @Param plate path string true "License plate"
// @Success 200 {object} dto.VehicleResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /vehicles/{plate} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	vehicle, err := h.service.Get(h.RequestCtx(c), building.ID, c.Param("plate"))
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle godoc
// @Summary Update a vehicle
// @Description Patch the supplied fields only. Setting is_active true re-registers a deactivated vehicle.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param plate path string true "License plate"
// @Param body body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /vehicles/{plate} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	vehicle, err := h.service.Update(h.RequestCtx(c), building.ID, c.Param("plate"), req)
	if err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle godoc
// @Summary Deactivate a vehicle
// @Description Soft-delete a vehicle. The record stays for history but no longer authorizes access.
// @Tags vehicles
// @Produce json
// @Param plate path string true "License plate"
// @Success 204 "No Content"
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /vehicles/{plate} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	if err := h.service.Deactivate(h.RequestCtx(c), building.ID, c.Param("plate")); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, dto.Error{Error: "Vehicle not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
