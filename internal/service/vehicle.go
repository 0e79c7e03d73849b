package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/khangtran94/parking-alpr-api/internal/api/dto"
	"github.com/khangtran94/parking-alpr-api/internal/domain"
	"github.com/khangtran94/parking-alpr-api/internal/repository"
	"github.com/khangtran94/parking-alpr-api/pkg/plate"
)

const (
	minPlateLength = 4
	maxPlateLength = 20

	defaultVehicleListLimit = 100
	maxVehicleListLimit     = 1000
)

// VehicleService manages a building's vehicle registry. Every plate
// crossing this boundary is canonicalized first, so storage only ever
// sees canonical plates.
type VehicleService struct {
	repo repository.Repository
}

func NewVehicleService(repo repository.Repository) *VehicleService {
	return &VehicleService{repo: repo}
}

// Create registers a vehicle. Duplicate detection is left to the unique
// index: a conflicting insert comes back as gorm.ErrDuplicatedKey even
// when two registrations race. The duplicate check covers deactivated
// records too; re-registering a retired plate must go through Update.
func (s *VehicleService) Create(ctx context.Context, buildingID string, req dto.CreateVehicleRequest) (*dto.VehicleResponse, error) {
	canonical := plate.Normalize(req.LicensePlate)
	if len(canonical) < minPlateLength || len(canonical) > maxPlateLength {
		return nil, ErrInvalidPlate
	}

	created, err := s.repo.Vehicle().Create(ctx, req.ToVehicle(buildingID, canonical))
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrPlateAlreadyRegistered
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return dto.FromVehicle(created), nil
}

// Get returns the vehicle regardless of its active flag.
func (s *VehicleService) Get(ctx context.Context, buildingID, rawPlate string) (*dto.VehicleResponse, error) {
	vehicle, err := s.repo.Vehicle().Find(ctx, buildingID, plate.Normalize(rawPlate))
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return dto.FromVehicle(vehicle), nil
}

func (s *VehicleService) List(ctx context.Context, buildingID string, activeOnly bool, offset, limit int) ([]dto.VehicleResponse, error) {
	if limit <= 0 {
		limit = defaultVehicleListLimit
	}
	if limit > maxVehicleListLimit {
		limit = maxVehicleListLimit
	}
	if offset < 0 {
		offset = 0
	}

	vehicles, err := s.repo.Vehicle().List(ctx, domain.VehicleFilter{
		BuildingID: buildingID,
		ActiveOnly: activeOnly,
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		return nil, err
	}
	return dto.FromVehicles(vehicles), nil
}

// Update patches the supplied fields only. It matches active and
// inactive records; setting is_active back to true is how a retired
// plate is re-registered.
func (s *VehicleService) Update(ctx context.Context, buildingID, rawPlate string, req dto.UpdateVehicleRequest) (*dto.VehicleResponse, error) {
	canonical := plate.Normalize(rawPlate)

	fields := req.ToVehicleUpdate().Fields()
	if len(fields) > 0 {
		rows, err := s.repo.Vehicle().Update(ctx, buildingID, canonical, fields)
		if err != nil {
			return nil, fmt.Errorf("failed to update vehicle: %w", err)
		}
		if rows == 0 {
			return nil, ErrVehicleNotFound
		}
	}

	vehicle, err := s.repo.Vehicle().Find(ctx, buildingID, canonical)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}
	return dto.FromVehicle(vehicle), nil
}

// Deactivate soft-deletes: the row stays for history and duplicate
// checks, but stops matching authorization lookups and default listings.
func (s *VehicleService) Deactivate(ctx context.Context, buildingID, rawPlate string) error {
	rows, err := s.repo.Vehicle().Update(ctx, buildingID, plate.Normalize(rawPlate), map[string]any{
		"is_active": false,
	})
	if err != nil {
		return fmt.Errorf("failed to deactivate vehicle: %w", err)
	}
	if rows == 0 {
		return ErrVehicleNotFound
	}
	return nil
}
