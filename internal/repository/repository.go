package repository

import (
	"context"

	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

//go:generate mockery --name BuildingRepository --output ../mocks
type BuildingRepository interface {
	Create(ctx context.Context, building *domain.Building) (*domain.Building, error)
	GetByID(ctx context.Context, id string) (*domain.Building, error)
	// GetActiveByToken resolves an API token to an active building.
	// Returns (nil, nil) when the token matches nothing or the building
	// is inactive; callers must not distinguish the two.
	GetActiveByToken(ctx context.Context, token string) (*domain.Building, error)
	Update(ctx context.Context, building *domain.Building) error
	List(ctx context.Context) ([]domain.Building, error)
}

//go:generate mockery --name VehicleRepository --output ../mocks
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	// Find matches the canonical plate within a building regardless of
	// the active flag. Returns (nil, nil) when absent.
	Find(ctx context.Context, buildingID, plate string) (*domain.Vehicle, error)
	// FindActive is Find restricted to active records; authorization
	// lookups go through this.
	FindActive(ctx context.Context, buildingID, plate string) (*domain.Vehicle, error)
	List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	// Update applies the supplied fields and returns the number of rows
	// matched (0 when the vehicle does not exist).
	Update(ctx context.Context, buildingID, plate string, fields map[string]any) (int64, error)
}

//go:generate mockery --name AccessLogRepository --output ../mocks
type AccessLogRepository interface {
	Create(ctx context.Context, log *domain.AccessLog) error
	List(ctx context.Context, filter domain.AccessLogFilter) ([]domain.AccessLog, error)
}

//go:generate mockery --name Repository --output ../mocks
type Repository interface {
	Building() BuildingRepository
	Vehicle() VehicleRepository
	AccessLog() AccessLogRepository
}
