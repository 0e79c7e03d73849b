package postgres

import (
	"gorm.io/gorm"

	"github.com/khangtran94/parking-alpr-api/internal/config"
	"github.com/khangtran94/parking-alpr-api/internal/repository"
)

type postgresRepository struct {
	writerDB      *gorm.DB
	readerDB      *gorm.DB
	buildingRepo  repository.BuildingRepository
	vehicleRepo   repository.VehicleRepository
	accessLogRepo repository.AccessLogRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.Repository {
	return &postgresRepository{
		writerDB:      dbConnections.Writer,
		readerDB:      dbConnections.Reader,
		buildingRepo:  NewBuildingRepository(dbConnections.Writer, dbConnections.Reader),
		vehicleRepo:   NewVehicleRepository(dbConnections.Writer, dbConnections.Reader),
		accessLogRepo: NewAccessLogRepository(dbConnections.Writer, dbConnections.Reader),
	}
}

func (r *postgresRepository) Building() repository.BuildingRepository {
	return r.buildingRepo
}

func (r *postgresRepository) Vehicle() repository.VehicleRepository {
	return r.vehicleRepo
}

func (r *postgresRepository) AccessLog() repository.AccessLogRepository {
	return r.accessLogRepo
}
