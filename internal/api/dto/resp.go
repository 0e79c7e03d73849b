package dto

import (
	"time"
)

// BuildingResponse is the admin view of a building, token included: the
// admin surface is the token owner's only way to read the full value.
type BuildingResponse struct {
	ID        string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name      string    `json:"name" example:"Tower A"`
	Address   string    `json:"address,omitempty" example:"123 Main St"`
	APIToken  string    `json:"api_token" example:"h1q9Zc3dJ3w8Qm2kX0pT5rG7vB4nL6sYfA8eU1oWiDc"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2025-07-17T21:20:48Z"`
}

type VehicleResponse struct {
	ID           string     `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	LicensePlate string     `json:"license_plate" example:"ABC123"`
	OwnerName    string     `json:"owner_name" example:"John Doe"`
	Apartment    string     `json:"apartment,omitempty" example:"101A"`
	Phone        string     `json:"phone,omitempty" example:"+1234567890"`
	VehicleType  string     `json:"vehicle_type,omitempty" example:"car"`
	VehicleBrand string     `json:"vehicle_brand,omitempty" example:"Toyota"`
	VehicleColor string     `json:"vehicle_color,omitempty" example:"black"`
	IsActive     bool       `json:"is_active" example:"true"`
	CreatedAt    time.Time  `json:"created_at" example:"2025-07-17T21:20:48Z"`
	UpdatedAt    *time.Time `json:"updated_at" example:"2025-07-18T09:03:11Z"`
}

// VerifyPlateResponse is the outcome of one verification attempt.
// LicensePlate is null when nothing readable was detected; OwnerName and
// Apartment are only set for authorized vehicles.
type VerifyPlateResponse struct {
	LicensePlate *string `json:"license_plate" example:"ABC123"`
	IsAuthorized bool    `json:"is_authorized" example:"true"`
	Confidence   *int    `json:"confidence" example:"93"`
	OwnerName    *string `json:"owner_name" example:"John Doe"`
	Apartment    *string `json:"apartment" example:"101A"`
	Message      string  `json:"message" example:"Vehicle authorized"`
}

type AccessLogResponse struct {
	ID           string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	BuildingID   string    `json:"building_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	LicensePlate string    `json:"license_plate" example:"ABC123"`
	IsAuthorized bool      `json:"is_authorized" example:"false"`
	Confidence   *int      `json:"confidence" example:"87"`
	SnapshotKey  string    `json:"snapshot_key,omitempty" example:"snapshots/550e8400/1c7a.jpg"`
	AccessedAt   time.Time `json:"accessed_at" example:"2025-07-17T21:20:48Z"`
}
