package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

// AccessLogRepository appends and queries access attempts. There is
// deliberately no update or delete method: the log is append-only.
type AccessLogRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAccessLogRepository(writerDB, readerDB *gorm.DB) *AccessLogRepository {
	return &AccessLogRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AccessLogRepository) Create(ctx context.Context, log *domain.AccessLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(log).Error
}

func (r *AccessLogRepository) List(ctx context.Context, filter domain.AccessLogFilter) ([]domain.AccessLog, error) {
	var logs []domain.AccessLog

	if filter.BuildingID == "" {
		return nil, fmt.Errorf("building_id is required")
	}

	db := r.readerDB.WithContext(ctx).Where("building_id = ?", filter.BuildingID)
	if filter.LicensePlate != "" {
		db = db.Where("license_plate = ?", filter.LicensePlate)
	}
	if filter.Authorized != nil {
		db = db.Where("is_authorized = ?", *filter.Authorized)
	}
	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	db = db.Order("accessed_at DESC")

	if err := db.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
