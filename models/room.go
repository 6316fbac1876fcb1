package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type RoomType struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	Name       string         `json:"name" gorm:"uniqueIndex"`
	BaseRate   float64        `json:"baseRate"`
	Occupancy  int            `json:"occupancy"`
	TotalUnits int            `json:"totalUnits"`
	Amenities  datatypes.JSON `json:"amenities" gorm:"type:json"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Room struct {
	RoomId     uint           `json:"id" gorm:"primaryKey"`
	RoomNumber string         `json:"roomNumber" gorm:"uniqueIndex"`
	Floor      int            `json:"floor"`
	RoomTypeID uint           `json:"roomTypeId"`
	RoomType   RoomType       `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Status     int            `json:"status" gorm:"default:1"`
	Photos     datatypes.JSON `json:"photos" gorm:"type:json"`
	Notes      string         `json:"notes"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 1 || r.Status > 4 {
		return fmt.Errorf("invalid status: %d, must be between 1 and 4", r.Status)
	}
	return nil
}
