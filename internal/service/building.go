package service

import (
	"context"
	"fmt"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/internal/repository"
	"github.com/khangtran94/parking-alpr-api/pkg/token"
)

// BuildingService manages tenants and their API tokens.
type BuildingService struct {
	repo repository.Repository
}

func NewBuildingService(repo repository.Repository) *BuildingService {
	return &BuildingService{repo: repo}
}

// Create registers a building and mints its API token. The full token is
// returned here; this is the one response where it is guaranteed fresh.
func (s *BuildingService) Create(ctx context.Context, req dto.CreateBuildingRequest) (*dto.BuildingResponse, error) {
	apiToken, err := token.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API token: %w", err)
	}

	building := &domain.Building{
		Name:     req.Name,
		Address:  req.Address,
		APIToken: apiToken,
		IsActive: true,
	}

	created, err := s.repo.Building().Create(ctx, building)
	if err != nil {
		return nil, fmt.Errorf("failed to create building: %w", err)
	}
	return dto.FromBuilding(created), nil
}

func (s *BuildingService) List(ctx context.Context) ([]dto.BuildingResponse, error) {
	buildings, err := s.repo.Building().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.FromBuildings(buildings), nil
}

// RegenerateToken replaces the building's token in a single update; the
// old token stops resolving the moment the write commits.
func (s *BuildingService) RegenerateToken(ctx context.Context, id string) (*dto.BuildingResponse, error) {
	building, err := s.repo.Building().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if building == nil {
		return nil, ErrBuildingNotFound
	}

	apiToken, err := token.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate API token: %w", err)
	}

	building.APIToken = apiToken
	if err := s.repo.Building().Update(ctx, building); err != nil {
		return nil, fmt.Errorf("failed to update building token: %w", err)
	}
	return dto.FromBuilding(building), nil
}

// ResolveToken maps an API token to its active building. It returns
// (nil, nil) for unknown tokens and for inactive buildings alike, so the
// caller cannot leak which of the two it was.
func (s *BuildingService) ResolveToken(ctx context.Context, apiToken string) (*domain.Building, error) {
	return s.repo.Building().GetActiveByToken(ctx, apiToken)
}
