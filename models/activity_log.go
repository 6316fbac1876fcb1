package models

import "time"

// ActivityLog records admin actions for the console's audit trail.
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index"`
	Method    string    `json:"method" gorm:"size:10"`
	Path      string    `json:"path"`
	Status    int       `json:"status"`
	ClientIP  string    `json:"clientIp" gorm:"size:45"`
	LatencyMs int64     `json:"latencyMs"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
