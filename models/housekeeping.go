package models

import (
	"time"

	"gorm.io/datatypes"
)

type HousekeepingTask struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RoomID       uint           `json:"roomId" gorm:"index"`
	Room         *Room          `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Type         string         `json:"type"` // cleaning, maintenance, inspection
	Status       string         `json:"status" gorm:"default:pending;index"`
	Priority     int            `json:"priority" gorm:"default:2"` // 1 low, 2 normal, 3 high
	Notes        string         `json:"notes"`
	Checklist    datatypes.JSON `json:"checklist" gorm:"type:json"`
	AssigneeID   *uint          `json:"assigneeId,omitempty" gorm:"index"`
	Assignee     *User          `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	DueAt        *time.Time     `json:"dueAt,omitempty"`
	AssignedAt   *time.Time     `json:"assignedAt,omitempty"`
	StartedAt    *time.Time     `json:"startedAt,omitempty"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
	CancelReason string         `json:"cancelReason,omitempty"`
	CreatedBy    uint           `json:"createdBy"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// DurationMinutes is the time spent on the task, 0 until completed.
func (t *HousekeepingTask) DurationMinutes() int {
	if t.StartedAt == nil || t.CompletedAt == nil {
		return 0
	}
	return int(t.CompletedAt.Sub(*t.StartedAt).Minutes())
}
