package dto

import (
	"github.com/khangtran94/parking-alpr-api/internal/domain"
)

// ToVehicle converts a CreateVehicleRequest to a Vehicle domain model.
// The plate is expected to be canonical already.
func (r *CreateVehicleRequest) ToVehicle(buildingID, canonicalPlate string) *domain.Vehicle {
	return &domain.Vehicle{
		BuildingID:   buildingID,
		LicensePlate: canonicalPlate,
		OwnerName:    r.OwnerName,
		Apartment:    r.Apartment,
		Phone:        r.Phone,
		VehicleType:  r.VehicleType,
		VehicleBrand: r.VehicleBrand,
		VehicleColor: r.VehicleColor,
		IsActive:     true,
	}
}

// ToVehicleUpdate converts the request to the domain partial update.
func (r *UpdateVehicleRequest) ToVehicleUpdate() domain.VehicleUpdate {
	return domain.VehicleUpdate{
		OwnerName:    r.OwnerName,
		Apartment:    r.Apartment,
		Phone:        r.Phone,
		VehicleType:  r.VehicleType,
		VehicleBrand: r.VehicleBrand,
		VehicleColor: r.VehicleColor,
		IsActive:     r.IsActive,
	}
}

func FromBuilding(building *domain.Building) *BuildingResponse {
	return &BuildingResponse{
		ID:        building.ID,
		Name:      building.Name,
		Address:   building.Address,
		APIToken:  building.APIToken,
		IsActive:  building.IsActive,
		CreatedAt: building.CreatedAt,
	}
}

func FromBuildings(buildings []domain.Building) []BuildingResponse {
	responses := make([]BuildingResponse, len(buildings))
	for i := range buildings {
		responses[i] = *FromBuilding(&buildings[i])
	}
	return responses
}

func FromVehicle(vehicle *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:           vehicle.ID,
		LicensePlate: vehicle.LicensePlate,
		OwnerName:    vehicle.OwnerName,
		Apartment:    vehicle.Apartment,
		Phone:        vehicle.Phone,
		VehicleType:  vehicle.VehicleType,
		VehicleBrand: vehicle.VehicleBrand,
		VehicleColor: vehicle.VehicleColor,
		IsActive:     vehicle.IsActive,
		CreatedAt:    vehicle.CreatedAt,
		UpdatedAt:    vehicle.UpdatedAt,
	}
}

func FromVehicles(vehicles []domain.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = *FromVehicle(&vehicles[i])
	}
	return responses
}

func FromAccessLog(log *domain.AccessLog) *AccessLogResponse {
	return &AccessLogResponse{
		ID:           log.ID,
		BuildingID:   log.BuildingID,
		LicensePlate: log.LicensePlate,
		IsAuthorized: log.IsAuthorized,
		Confidence:   log.Confidence,
		SnapshotKey:  log.SnapshotKey,
		AccessedAt:   log.AccessedAt,
	}
}

func FromAccessLogs(logs []domain.AccessLog) []AccessLogResponse {
	responses := make([]AccessLogResponse, len(logs))
	for i := range logs {
		responses[i] = *FromAccessLog(&logs[i])
	}
	return responses
}
