package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/service"
)

type BuildingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBuildingService
	handler     *BuildingHandler
}

type MockBuildingService struct {
	mock.Mock
}

func (m *MockBuildingService) Create(ctx context.Context, req dto.CreateBuildingRequest) (*dto.BuildingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BuildingResponse), args.Error(1)
}

func (m *MockBuildingService) List(ctx context.Context) ([]dto.BuildingResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.BuildingResponse), args.Error(1)
}

func (m *MockBuildingService) RegenerateToken(ctx context.Context, id string) (*dto.BuildingResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BuildingResponse), args.Error(1)
}

func (s *BuildingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockBuildingService)
	s.handler = NewBuildingHandler(s.mockService)

	// Setup routes
	s.router.POST("/admin/buildings", s.handler.CreateBuilding)
	s.router.GET("/admin/buildings", s.handler.ListBuildings)
	s.router.POST("/admin/buildings/:id/regenerate-token", s.handler.RegenerateToken)
}

func TestBuildingHandler(t *testing.T) {
	suite.Run(t, new(BuildingHandlerTestSuite))
}

func (s *BuildingHandlerTestSuite) TestCreateBuilding_Success() {
	// Arrange
	req := dto.CreateBuildingRequest{
		Name:    "Tower A",
		Address: "123 Main St",
	}

	expectedResponse := &dto.BuildingResponse{
		ID:        "building1",
		Name:      req.Name,
		Address:   req.Address,
		APIToken:  "h1q9Zc3dJ3w8Qm2kX0pT5rG7vB4nL6sYfA8eU1oWiDc",
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	s.mockService.On("Create", mock.Anything, req).Return(expectedResponse, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/admin/buildings", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	// Act
	s.router.ServeHTTP(w, httpReq)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.BuildingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal(expectedResponse.ID, response.ID)
	s.Equal(expectedResponse.APIToken, response.APIToken)
	s.mockService.AssertExpectations(s.T())
}

func (s *BuildingHandlerTestSuite) TestCreateBuilding_NameTooShort() {
	body := []byte(`{"name": "A"}`)
	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/admin/buildings", bytes.NewBuffer(body))
	httpReq.Header.Set("Content-Type", "application/json")

	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *BuildingHandlerTestSuite) TestListBuildings_Success() {
	now := time.Now()
	expectedBuildings := []dto.BuildingResponse{
		{ID: "building1", Name: "Tower A", APIToken: "token1", IsActive: true, CreatedAt: now},
		{ID: "building2", Name: "Tower B", APIToken: "token2", IsActive: false, CreatedAt: now},
	}

	s.mockService.On("List", mock.Anything).Return(expectedBuildings, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodGet, "/admin/buildings", nil)

	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusOK, w.Code)
	var response []dto.BuildingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Len(response, 2)
	s.Equal("token1", response[0].APIToken)
	s.mockService.AssertExpectations(s.T())
}

func (s *BuildingHandlerTestSuite) TestRegenerateToken_Success() {
	expectedResponse := &dto.BuildingResponse{
		ID:       "building1",
		Name:     "Tower A",
		APIToken: "newtokenvalue",
		IsActive: true,
	}

	s.mockService.On("RegenerateToken", mock.Anything, "building1").Return(expectedResponse, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/admin/buildings/building1/regenerate-token", nil)

	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusOK, w.Code)
	var response dto.BuildingResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	s.NoError(err)
	s.Equal("newtokenvalue", response.APIToken)
	s.mockService.AssertExpectations(s.T())
}

func (s *BuildingHandlerTestSuite) TestRegenerateToken_NotFound() {
	s.mockService.On("RegenerateToken", mock.Anything, "missing").Return(nil, service.ErrBuildingNotFound)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest(http.MethodPost, "/admin/buildings/missing/regenerate-token", nil)

	s.router.ServeHTTP(w, httpReq)

	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}
