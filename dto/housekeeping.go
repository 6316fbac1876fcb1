package dto

import "encoding/json"

type CreateTaskRequest struct {
	RoomID    uint            `json:"roomId" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Priority  int             `json:"priority"`
	Notes     string          `json:"notes"`
	Checklist json.RawMessage `json:"checklist"`
	DueAt     string          `json:"dueAt"` // 02/01/2006 15:04
}

type AssignTaskRequest struct {
	TaskID     uint `json:"taskId" binding:"required"`
	AssigneeID uint `json:"assigneeId" binding:"required"`
}

type TaskActionRequest struct {
	TaskID uint   `json:"taskId" binding:"required"`
	Reason string `json:"reason"`
}

type TaskResponse struct {
	ID          uint   `json:"id"`
	RoomNumber  string `json:"roomNumber"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	Priority    int    `json:"priority"`
	Assignee    string `json:"assignee,omitempty"`
	AssigneeID  *uint  `json:"assigneeId,omitempty"`
	DueAt       string `json:"dueAt,omitempty"`
	DurationMin int    `json:"durationMin,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type HousekeepingSummary struct {
	ByStatus       map[string]int64    `json:"byStatus"`
	AvgCompleteMin float64             `json:"avgCompleteMin"`
	StaffLoad      []StaffLoadResponse `json:"staffLoad"`
	OverdueCount   int64               `json:"overdueCount"`
}
