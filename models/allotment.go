package models

import (
	"time"
)

type Allotment struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	RoomTypeID  uint               `json:"roomTypeId" gorm:"uniqueIndex"`
	RoomType    *RoomType          `json:"roomType,omitempty" gorm:"foreignKey:RoomTypeID"`
	TotalUnits  int                `json:"totalUnits"`
	ReleaseDays int                `json:"releaseDays" gorm:"default:3"`
	Channels    []AllotmentChannel `json:"channels" gorm:"foreignKey:AllotmentID"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Allocated is the total units currently given to channels.
func (a *Allotment) Allocated() int {
	total := 0
	for _, ch := range a.Channels {
		total += ch.Allocated
	}
	return total
}

type AllotmentChannel struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	AllotmentID   uint       `json:"allotmentId" gorm:"index"`
	Name          string     `json:"name"`
	Kind          string     `json:"kind" gorm:"default:ota"` // direct, ota
	Allocated     int        `json:"allocated"`
	Priority      int        `json:"priority" gorm:"default:1"`
	CommissionPct float64    `json:"commissionPct"`
	MarkupPct     float64    `json:"markupPct"`
	StopSell      bool       `json:"stopSell" gorm:"default:false"`
	ReleasedAt    *time.Time `json:"releasedAt,omitempty"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

// SellRate applies the channel markup on top of a base rate.
func (ch *AllotmentChannel) SellRate(baseRate float64) float64 {
	return baseRate * (1 + ch.MarkupPct/100)
}
