package model

import "time"

// Resource is the catalog entry for one distinct url.
type Resource struct {
	ID        uint   `gorm:"primaryKey"`
	URL       string `gorm:"not null;uniqueIndex:idx_resources_url"`
	Domain    string `gorm:"not null;default:''"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Resource) TableName() string {
	return "resources"
}
