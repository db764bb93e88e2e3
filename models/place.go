package models

import "placeserver/geo"

type Place struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Type     string    `gorm:"type:varchar(255);not null" json:"type"`
	Location geo.Point `gorm:"not null" json:"location"`
}

// TableName keeps the singular name the schema was created with.
func (Place) TableName() string {
	return "place"
}
