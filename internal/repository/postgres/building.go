package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

type BuildingRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewBuildingRepository(writerDB, readerDB *gorm.DB) *BuildingRepository {
	return &BuildingRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *BuildingRepository) Create(ctx context.Context, building *domain.Building) (*domain.Building, error) {
	if building.ID == "" {
		building.ID = uuid.New().String()
	}
	if err := r.writerDB.WithContext(ctx).Create(building).Error; err != nil {
		return nil, err
	}
	return building, nil
}

func (r *BuildingRepository) GetByID(ctx context.Context, id string) (*domain.Building, error) {
	var building domain.Building
	err := r.readerDB.WithContext(ctx).First(&building, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *BuildingRepository) GetActiveByToken(ctx context.Context, token string) (*domain.Building, error) {
	var building domain.Building
	err := r.readerDB.WithContext(ctx).
		First(&building, "api_token = ? AND is_active = ?", token, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *BuildingRepository) Update(ctx context.Context, building *domain.Building) error {
	return r.writerDB.WithContext(ctx).Save(building).Error
}

func (r *BuildingRepository) List(ctx context.Context) ([]domain.Building, error) {
	var buildings []domain.Building
	if err := r.readerDB.WithContext(ctx).Order("created_at DESC").Find(&buildings).Error; err != nil {
		return nil, err
	}
	return buildings, nil
}
