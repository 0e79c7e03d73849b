package domain

import (
	"time"
)

// PlateUnreadable is recorded as the plate text when the recognizer
// fails outright (bad image, decode error).
const PlateUnreadable = "UNREADABLE"

// AccessLog is one verification attempt. Rows are append-only: no update
// or delete path exists anywhere in the codebase.
type AccessLog struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	BuildingID   string    `gorm:"type:uuid;not null;index" json:"building_id"`
	LicensePlate string    `gorm:"type:text;not null;index" json:"license_plate"`
	IsAuthorized bool      `gorm:"not null" json:"is_authorized"`
	Confidence   *int      `json:"confidence"`
	SnapshotKey  string    `gorm:"type:text" json:"snapshot_key,omitempty"`
	AccessedAt   time.Time `gorm:"type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"accessed_at"`
	Building     *Building `gorm:"foreignKey:BuildingID" json:"-"`
}

func (AccessLog) TableName() string {
	return "access_logs"
}

// AccessLogFilter narrows access log queries. Authorized is tri-state:
// nil means no filter.
type AccessLogFilter struct {
	BuildingID   string
	LicensePlate string
	Authorized   *bool
	Offset       int
	Limit        int
}
