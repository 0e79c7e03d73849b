package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/middleware"
)

//go:generate mockery --name AccessLogService --output ../mocks
type AccessLogService interface {
	List(ctx context.Context, buildingID string, authorized *bool, offset, limit int) ([]dto.AccessLogResponse, error)
	ListByPlate(ctx context.Context, buildingID, rawPlate string, limit int) ([]dto.AccessLogResponse, error)
}

type AccessLogHandler struct {
	*BaseHandler
	service AccessLogService
}

func NewAccessLogHandler(service AccessLogService) *AccessLogHandler {
	return &AccessLogHandler{service: service}
}

// ListLogs godoc
// @Summary List access attempts
// @Description List the building's access attempts, newest first.
// @Tags logs
// @Produce json
// @Param skip query int false "Number of records to skip" default(0)
// @Param limit query int false "Maximum records to return" default(100)
// @Param authorized_only query bool false "Filter by outcome: true for authorized attempts, false for denied; omit for all"
// @Success 200 {array} dto.AccessLogResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /logs [get]
func (h *AccessLogHandler) ListLogs(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	// Tri-state: absent means no filter, "true"/"false" filter either way
	var authorized *bool
	if raw, ok := c.GetQuery("authorized_only"); ok {
		if parsed, err := strconv.ParseBool(raw); err == nil {
			authorized = &parsed
		}
	}

	logs, err := h.service.List(h.RequestCtx(c), building.ID, authorized, skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}

// ListLogsByPlate godoc
// @Summary List access attempts for one plate
// @Description List attempts matching the given plate, newest first. The plate is canonicalized before matching.
// @Tags logs
// @Produce json
// @Param plate path string true "License plate"
// @Param limit query int false "Maximum records to return" default(50)
// @Success 200 {array} dto.AccessLogResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /logs/{plate} [get]
func (h *AccessLogHandler) ListLogsByPlate(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	logs, err := h.service.ListByPlate(h.RequestCtx(c), building.ID, c.Param("plate"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
