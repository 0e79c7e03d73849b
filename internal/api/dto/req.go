package dto

// CreateBuildingRequest registers a new building (tenant). The API token
// is generated server-side, never chosen by the caller.
type CreateBuildingRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"Tower A"`
	Address string `json:"address" binding:"omitempty,max=255" example:"123 Main St"`
}

type CreateVehicleRequest struct {
	LicensePlate string `json:"license_plate" binding:"required,min=4,max=20" example:"ABC123"`
	OwnerName    string `json:"owner_name" binding:"required,min=2,max=100" example:"John Doe"`
	Apartment    string `json:"apartment" binding:"omitempty,max=20" example:"101A"`
	Phone        string `json:"phone" binding:"omitempty,max=20" example:"+1234567890"`
	VehicleType  string `json:"vehicle_type" binding:"omitempty,max=50" example:"car"`
	VehicleBrand string `json:"vehicle_brand" binding:"omitempty,max=50" example:"Toyota"`
	VehicleColor string `json:"vehicle_color" binding:"omitempty,max=30" example:"black"`
}

// UpdateVehicleRequest is a partial update: nil means the field was not
// supplied; an empty string clears an optional field. The plate itself
// is immutable.
type UpdateVehicleRequest struct {
	OwnerName    *string `json:"owner_name" binding:"omitempty,min=2,max=100"`
	Apartment    *string `json:"apartment" binding:"omitempty,max=20"`
	Phone        *string `json:"phone" binding:"omitempty,max=20"`
	VehicleType  *string `json:"vehicle_type" binding:"omitempty,max=50"`
	VehicleBrand *string `json:"vehicle_brand" binding:"omitempty,max=50"`
	VehicleColor *string `json:"vehicle_color" binding:"omitempty,max=30"`
	IsActive     *bool   `json:"is_active"`
}

type VerifyPlateRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required" swaggertype:"string"`
}
