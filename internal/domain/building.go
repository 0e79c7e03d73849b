package domain

import (
	"time"
)

// Building is a tenant of the system. Each building authenticates with
// its own opaque API token; vehicles and access logs are scoped to it.
type Building struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	APIToken  string    `gorm:"type:text;not null;uniqueIndex" json:"api_token"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Building) TableName() string {
	return "buildings"
}
