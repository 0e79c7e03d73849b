package domain

import (
	"time"
)

// Vehicle is a plate authorized to enter a building. The plate is stored
// in canonical form (uppercase alphanumeric, see pkg/plate). The composite
// unique index makes the database the arbiter for duplicate registrations,
// so concurrent creates of the same plate cannot race past a pre-check.
type Vehicle struct {
	ID           string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	BuildingID   string     `gorm:"type:uuid;not null;uniqueIndex:idx_vehicles_building_plate" json:"building_id"`
	LicensePlate string     `gorm:"type:text;not null;uniqueIndex:idx_vehicles_building_plate" json:"license_plate"`
	OwnerName    string     `gorm:"type:text;not null" json:"owner_name"`
	Apartment    string     `gorm:"type:text" json:"apartment"`
	Phone        string     `gorm:"type:text" json:"phone"`
	VehicleType  string     `gorm:"type:text" json:"vehicle_type"`
	VehicleBrand string     `gorm:"type:text" json:"vehicle_brand"`
	VehicleColor string     `gorm:"type:text" json:"vehicle_color"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    *time.Time `gorm:"type:timestamp with time zone" json:"updated_at"`
	Building     *Building  `gorm:"foreignKey:BuildingID" json:"-"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// VehicleUpdate carries a partial update. Nil pointers mean "field not
// supplied"; a pointer to the zero value clears the field.
type VehicleUpdate struct {
	OwnerName    *string
	Apartment    *string
	Phone        *string
	VehicleType  *string
	VehicleBrand *string
	VehicleColor *string
	IsActive     *bool
}

// Fields returns the gorm update map for the supplied fields only.
func (u VehicleUpdate) Fields() map[string]any {
	fields := make(map[string]any)
	if u.OwnerName != nil {
		fields["owner_name"] = *u.OwnerName
	}
	if u.Apartment != nil {
		fields["apartment"] = *u.Apartment
	}
	if u.Phone != nil {
		fields["phone"] = *u.Phone
	}
	if u.VehicleType != nil {
		fields["vehicle_type"] = *u.VehicleType
	}
	if u.VehicleBrand != nil {
		fields["vehicle_brand"] = *u.VehicleBrand
	}
	if u.VehicleColor != nil {
		fields["vehicle_color"] = *u.VehicleColor
	}
	if u.IsActive != nil {
		fields["is_active"] = *u.IsActive
	}
	return fields
}

// VehicleFilter narrows vehicle listings. ActiveOnly defaults to true at
// the service layer; Limit is clamped there as well.
type VehicleFilter struct {
	BuildingID string
	ActiveOnly bool
	Offset     int
	Limit      int
}
