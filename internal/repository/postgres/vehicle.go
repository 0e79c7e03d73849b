package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

type VehicleRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewVehicleRepository(writerDB, readerDB *gorm.DB) *VehicleRepository {
	return &VehicleRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

// Create inserts the vehicle. The unique index on (building_id,
// license_plate) rejects duplicates; with TranslateError on, the caller
// sees gorm.ErrDuplicatedKey.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if vehicle.ID == "" {
		vehicle.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (r *VehicleRepository) Find(ctx context.Context, buildingID, plate string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.readerDB.WithContext(ctx).
		First(&vehicle, "building_id = ? AND license_plate = ?", buildingID, plate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) FindActive(ctx context.Context, buildingID, plate string) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.readerDB.WithContext(ctx).
		First(&vehicle, "building_id = ? AND license_plate = ? AND is_active = ?", buildingID, plate, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) List(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle

	db := r.readerDB.WithContext(ctx).Where("building_id = ?", filter.BuildingID)
	if filter.ActiveOnly {
		db = db.Where("is_active = ?", true)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	// Stable order for pagination; not part of the API contract.
	db = db.Order("created_at DESC").Order("id")

	if err := db.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) Update(ctx context.Context, buildingID, plate string, fields map[string]any) (int64, error) {
	fields["updated_at"] = time.Now()

	result := r.writerDB.WithContext(ctx).
		Model(&domain.Vehicle{}).
		Where("building_id = ? AND license_plate = ?", buildingID, plate).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
