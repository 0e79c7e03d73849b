package api

import (
	"context"
	"encoding/base64"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/internal/middleware"
)

//go:generate mockery --name VerificationService --output ../mocks
type VerificationService interface {
	Verify(ctx context.Context, building *domain.Building, image []byte) (*dto.VerifyPlateResponse, error)
}

type VerifyHandler struct {
	*BaseHandler
	service VerificationService
}

func NewVerifyHandler(service VerificationService) *VerifyHandler {
	return &VerifyHandler{service: service}
}

// VerifyPlate godoc
// @Summary Verify a license plate from a camera frame
// @Description Recognize the plate in the submitted image and decide whether the vehicle may enter. Always returns 200 with the decision; a denied vehicle is not an error.
// @Tags verify
// @Accept json
// @Produce json
// @Param body body dto.VerifyPlateRequest true "Base64-encoded camera frame"
// @Success 200 {object} dto.VerifyPlateResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /verify [post]
func (h *VerifyHandler) VerifyPlate(c *gin.Context) {
	building, ok := middleware.CurrentBuilding(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No building found"})
		return
	}

	var req dto.VerifyPlateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	image, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "image_base64 is not valid base64"})
		return
	}

	result, err := h.service.Verify(h.RequestCtx(c), building, image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
