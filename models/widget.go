package models

import (
	"time"

	"gorm.io/datatypes"
)

type Widget struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Key         string         `json:"key" gorm:"uniqueIndex;size:36"`
	Name        string         `json:"name" gorm:"not null"`
	TargetPage  string         `json:"targetPage"`
	Theme       datatypes.JSON `json:"theme" gorm:"type:json"`
	Active      bool           `json:"active" gorm:"default:true"`
	Impressions int64          `json:"impressions" gorm:"default:0"`
	Clicks      int64          `json:"clicks" gorm:"default:0"`
	Conversions int64          `json:"conversions" gorm:"default:0"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// WidgetStat is a daily rollup of the widget counters.
type WidgetStat struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	WidgetID    uint   `json:"widgetId" gorm:"index:idx_widget_date,unique"`
	Date        string `json:"date" gorm:"index:idx_widget_date,unique;size:10"` // 2006-01-02
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
	Conversions int64  `json:"conversions"`
}
