package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

type VerifyHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockVerificationService
	handler     *VerifyHandler
}

type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) Verify(ctx context.Context, building *domain.Building, image []byte) (*dto.VerifyPlateResponse, error) {
	args := m.Called(ctx, building, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VerifyPlateResponse), args.Error(1)
}

func (s *VerifyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockVerificationService)
	s.handler = NewVerifyHandler(s.mockService)

	s.router.Use(func(c *gin.Context) {
		c.Set("building", &domain.Building{ID: "building1", Name: "Tower A", IsActive: true})
	})
	s.router.POST("/verify", s.handler.VerifyPlate)
}

func TestVerifyHandler(t *testing.T) {
	suite.Run(t, new(VerifyHandlerTestSuite))
}

func (s *VerifyHandlerTestSuite) TestVerifyPlate_Authorized() {
	image := []byte("camera frame")
	plate := "ABC123"
	owner := "John Doe"
	confidence := 93

	s.mockService.On("Verify", mock.Anything, mock.MatchedBy(func(b *domain.Building) bool {
		return b.ID == "building1"
	}), image).Return(&dto.VerifyPlateResponse{
		LicensePlate: &plate,
		IsAuthorized: true,
		Confidence:   &confidence,
		OwnerName:    &owner,
		Message:      "Vehicle authorized",
	}, nil)

	body, _ := json.Marshal(dto.VerifyPlateRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	})
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/verify", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusOK, w.Code)
	var response dto.VerifyPlateResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.True(response.IsAuthorized)
	s.Equal("ABC123", *response.LicensePlate)
	s.mockService.AssertExpectations(s.T())
}

func (s *VerifyHandlerTestSuite) TestVerifyPlate_DeniedIsStillOK() {
	image := []byte("camera frame")
	plate := "UNKNOWN1"

	s.mockService.On("Verify", mock.Anything, mock.Anything, image).Return(&dto.VerifyPlateResponse{
		LicensePlate: &plate,
		IsAuthorized: false,
		Message:      "Vehicle not authorized for this building",
	}, nil)

	body, _ := json.Marshal(dto.VerifyPlateRequest{
		ImageBase64: base64.StdEncoding.EncodeToString(image),
	})
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/verify", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	s.router.ServeHTTP(w, httpReq)

	// A denied vehicle is a decision, not an error
	s.Equal(http.StatusOK, w.Code)
	var response dto.VerifyPlateResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.False(response.IsAuthorized)
	s.mockService.AssertExpectations(s.T())
}

func (s *VerifyHandlerTestSuite) TestVerifyPlate_InvalidBase64() {
	body := []byte(`{"image_base64": "not_base64!!!"}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/verify", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Verify", mock.Anything, mock.Anything, mock.Anything)
}

func (s *VerifyHandlerTestSuite) TestVerifyPlate_MissingImage() {
	body := []byte(`{}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/verify", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Verify", mock.Anything, mock.Anything, mock.Anything)
}
