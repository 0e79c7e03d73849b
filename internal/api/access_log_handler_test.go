package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

type AccessLogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockAccessLogService
	handler     *AccessLogHandler
}

type MockAccessLogService struct {
	mock.Mock
}

func (m *MockAccessLogService) List(ctx context.Context, buildingID string, authorized *bool, offset, limit int) ([]dto.AccessLogResponse, error) {
	args := m.Called(ctx, buildingID, authorized, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccessLogResponse), args.Error(1)
}

func (m *MockAccessLogService) ListByPlate(ctx context.Context, buildingID, rawPlate string, limit int) ([]dto.AccessLogResponse, error) {
	args := m.Called(ctx, buildingID, rawPlate, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AccessLogResponse), args.Error(1)
}

func (s *AccessLogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockAccessLogService)
	s.handler = NewAccessLogHandler(s.mockService)

	// Simulates the API key middleware attaching the resolved building
	s.router.Use(func(c *gin.Context) {
		c.Set("building", &domain.Building{ID: "building1", Name: "Tower A", IsActive: true})
	})

	// Setup routes
	s.router.GET("/logs", s.handler.ListLogs)
	s.router.GET("/logs/:plate", s.handler.ListLogsByPlate)
}

func TestAccessLogHandler(t *testing.T) {
	suite.Run(t, new(AccessLogHandlerTestSuite))
}

func (s *AccessLogHandlerTestSuite) TestListLogs_NoFilterByDefault() {
	s.mockService.On("List", mock.Anything, "building1", (*bool)(nil), 0, 100).
		Return([]dto.AccessLogResponse{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/logs", nil)

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccessLogHandlerTestSuite) TestListLogs_AuthorizedOnlyTrue() {
	s.mockService.On("List", mock.Anything, "building1", mock.MatchedBy(func(authorized *bool) bool {
		return authorized != nil && *authorized
	}), 0, 100).Return([]dto.AccessLogResponse{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/logs?authorized_only=true", nil)

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccessLogHandlerTestSuite) TestListLogs_AuthorizedOnlyFalseListsDenied() {
	// false is a filter too, not the same as omitting the parameter
	s.mockService.On("List", mock.Anything, "building1", mock.MatchedBy(func(authorized *bool) bool {
		return authorized != nil && !*authorized
	}), 0, 100).Return([]dto.AccessLogResponse{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/logs?authorized_only=false", nil)

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccessLogHandlerTestSuite) TestListLogs_UnparseableFilterIgnored() {
	s.mockService.On("List", mock.Anything, "building1", (*bool)(nil), 0, 100).
		Return([]dto.AccessLogResponse{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/logs?authorized_only=maybe", nil)

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccessLogHandlerTestSuite) TestListLogs_PaginationPassedThrough() {
	s.mockService.On("List", mock.Anything, "building1", (*bool)(nil), 20, 10).
		Return([]dto.AccessLogResponse{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/logs?skip=20&limit=10", nil)

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AccessLogHandlerTestSuite) TestListLogsByPlate_PassesRawPlate() {
	s.mockService.On("ListByPlate", mock.Anything, "building1", "abc-123", 50).
		Return([]dto.AccessLogResponse{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/logs/abc-123", nil)

	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}
