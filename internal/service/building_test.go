package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

type BuildingServiceTestSuite struct {
	suite.Suite
	repo    *MockRepository
	service *BuildingService
}

func (s *BuildingServiceTestSuite) SetupTest() {
	s.repo = NewMockRepository()
	s.service = NewBuildingService(s.repo)
}

func TestBuildingService(t *testing.T) {
	suite.Run(t, new(BuildingServiceTestSuite))
}

func (s *BuildingServiceTestSuite) TestCreate_MintsToken() {
	req := dto.CreateBuildingRequest{Name: "Tower A", Address: "123 Main St"}

	s.repo.buildings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Building) bool {
		return b.Name == "Tower A" && b.IsActive && len(b.APIToken) == 43
	})).Return(&domain.Building{
		ID:        "building1",
		Name:      "Tower A",
		Address:   "123 Main St",
		APIToken:  "sometokenvalue",
		IsActive:  true,
		CreatedAt: time.Now(),
	}, nil)

	building, err := s.service.Create(context.Background(), req)

	s.NoError(err)
	s.Equal("Tower A", building.Name)
	s.NotEmpty(building.APIToken)
	s.True(building.IsActive)
	s.repo.buildings.AssertExpectations(s.T())
}

func (s *BuildingServiceTestSuite) TestRegenerateToken_ReplacesToken() {
	existing := &domain.Building{
		ID:       "building1",
		Name:     "Tower A",
		APIToken: "oldtoken",
		IsActive: true,
	}
	s.repo.buildings.On("GetByID", mock.Anything, "building1").Return(existing, nil)
	s.repo.buildings.On("Update", mock.Anything, mock.MatchedBy(func(b *domain.Building) bool {
		return b.ID == "building1" && b.APIToken != "oldtoken" && len(b.APIToken) == 43
	})).Return(nil)

	building, err := s.service.RegenerateToken(context.Background(), "building1")

	s.NoError(err)
	s.NotEqual("oldtoken", building.APIToken)
	s.repo.buildings.AssertExpectations(s.T())
}

func (s *BuildingServiceTestSuite) TestRegenerateToken_NotFound() {
	s.repo.buildings.On("GetByID", mock.Anything, "missing").Return(nil, nil)

	building, err := s.service.RegenerateToken(context.Background(), "missing")

	s.ErrorIs(err, ErrBuildingNotFound)
	s.Nil(building)
	s.repo.buildings.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *BuildingServiceTestSuite) TestResolveToken_ActiveBuilding() {
	building := &domain.Building{ID: "building1", IsActive: true}
	s.repo.buildings.On("GetActiveByToken", mock.Anything, "validtoken").Return(building, nil)

	resolved, err := s.service.ResolveToken(context.Background(), "validtoken")

	s.NoError(err)
	s.Equal("building1", resolved.ID)
}

func (s *BuildingServiceTestSuite) TestResolveToken_UnknownToken() {
	s.repo.buildings.On("GetActiveByToken", mock.Anything, "badtoken").Return(nil, nil)

	resolved, err := s.service.ResolveToken(context.Background(), "badtoken")

	s.NoError(err)
	s.Nil(resolved)
}

func (s *BuildingServiceTestSuite) TestList_ReturnsAllBuildings() {
	now := time.Now()
	s.repo.buildings.On("List", mock.Anything).Return([]domain.Building{
		{ID: "building1", Name: "Tower A", APIToken: "token1", IsActive: true, CreatedAt: now},
		{ID: "building2", Name: "Tower B", APIToken: "token2", IsActive: false, CreatedAt: now},
	}, nil)

	buildings, err := s.service.List(context.Background())

	s.NoError(err)
	s.Len(buildings, 2)
	s.Equal("token1", buildings[0].APIToken)
	s.False(buildings[1].IsActive)
}
