package services

import (
	"time"

	"pentouz/constants"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/services/notification"

	"gorm.io/gorm"
)

// AssignTask moves a task to assigned and sets the assignee. Reassigning an
// already assigned task is allowed.
func AssignTask(db *gorm.DB, taskID, assigneeID uint) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	if err := db.First(&task, taskID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeTaskNotFound, "Task not found", err)
	}

	if !ValidTaskTransition("assign", task.Status) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Task cannot be assigned from status "+task.Status, nil)
	}

	var staff models.User
	if err := db.First(&staff, assigneeID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAssignee, "Assignee not found", err)
	}
	if staff.Status != constants.StatusActive {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAssignee, "Assignee is not an active staff member", nil)
	}

	now := time.Now()
	task.Status = NextTaskStatus("assign")
	task.AssigneeID = &assigneeID
	task.AssignedAt = &now

	if err := db.Save(&task).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot update task", err)
	}
	return &task, nil
}

// StartTask moves an assigned task to in_progress.
func StartTask(db *gorm.DB, taskID uint) (*models.HousekeepingTask, error) {
	return applyTaskAction(db, taskID, "start", "")
}

// CompleteTask finishes an in_progress task and stamps the completion time.
func CompleteTask(db *gorm.DB, taskID uint) (*models.HousekeepingTask, error) {
	return applyTaskAction(db, taskID, "complete", "")
}

// CancelTask cancels a task; a reason is required.
func CancelTask(db *gorm.DB, taskID uint, reason string) (*models.HousekeepingTask, error) {
	if reason == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Cancel reason must not be empty", nil)
	}
	return applyTaskAction(db, taskID, "cancel", reason)
}

// ReopenTask puts a finished task back to pending.
func ReopenTask(db *gorm.DB, taskID uint) (*models.HousekeepingTask, error) {
	return applyTaskAction(db, taskID, "reopen", "")
}

func applyTaskAction(db *gorm.DB, taskID uint, action, reason string) (*models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	if err := db.First(&task, taskID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeTaskNotFound, "Task not found", err)
	}

	if !ValidTaskTransition(action, task.Status) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition, "Action "+action+" not allowed from status "+task.Status, nil)
	}

	now := time.Now()
	task.Status = NextTaskStatus(action)

	switch action {
	case "start":
		task.StartedAt = &now
	case "complete":
		task.CompletedAt = &now
	case "cancel":
		task.CancelReason = reason
	case "reopen":
		task.AssigneeID = nil
		task.AssignedAt = nil
		task.StartedAt = nil
		task.CompletedAt = nil
		task.CancelReason = ""
	}

	if err := db.Save(&task).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot update task", err)
	}
	return &task, nil
}

// HousekeepingSummary aggregates the dashboard numbers.
func GetHousekeepingSummary(db *gorm.DB) (*dto.HousekeepingSummary, error) {
	summary := &dto.HousekeepingSummary{
		ByStatus: make(map[string]int64),
	}

	rows, err := db.Model(&models.HousekeepingTask{}).
		Select("status, count(*) as total").
		Group("status").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var total int64
		if err := rows.Scan(&status, &total); err != nil {
			return nil, err
		}
		summary.ByStatus[status] = total
	}

	var avgMin *float64
	db.Model(&models.HousekeepingTask{}).
		Where("status = ? AND started_at IS NOT NULL AND completed_at IS NOT NULL", constants.TaskStatusCompleted).
		Select("AVG(EXTRACT(EPOCH FROM (completed_at - started_at)) / 60)").
		Scan(&avgMin)
	if avgMin != nil {
		summary.AvgCompleteMin = Round2(*avgMin)
	}

	db.Model(&models.HousekeepingTask{}).
		Where("due_at < ? AND status NOT IN ?", time.Now(), []string{constants.TaskStatusCompleted, constants.TaskStatusCancelled}).
		Count(&summary.OverdueCount)

	loadRows, err := db.Model(&models.HousekeepingTask{}).
		Select("users.id, users.name, count(housekeeping_tasks.id) as open_tasks").
		Joins("JOIN users ON users.id = housekeeping_tasks.assignee_id").
		Where("housekeeping_tasks.status IN ?", []string{constants.TaskStatusAssigned, constants.TaskStatusInProgress}).
		Group("users.id, users.name").Rows()
	if err != nil {
		return nil, err
	}
	defer loadRows.Close()

	for loadRows.Next() {
		var load dto.StaffLoadResponse
		if err := loadRows.Scan(&load.UserID, &load.Name, &load.OpenTasks); err != nil {
			return nil, err
		}
		summary.StaffLoad = append(summary.StaffLoad, load)
	}

	return summary, nil
}

// EscalateOverdueTasks bumps the priority of open tasks past due and pushes
// an event to the console feed. Used by the nightly cron.
func EscalateOverdueTasks(db *gorm.DB, notifier notification.Service) (int64, error) {
	res := db.Model(&models.HousekeepingTask{}).
		Where("due_at < ? AND priority < 3 AND status NOT IN ?",
			time.Now(), []string{constants.TaskStatusCompleted, constants.TaskStatusCancelled}).
		Update("priority", gorm.Expr("priority + 1"))
	if res.Error != nil {
		return 0, res.Error
	}

	if res.RowsAffected > 0 && notifier != nil {
		msg := notification.NewEventBuilder("housekeeping.escalated").
			WithPayload(map[string]int64{"count": res.RowsAffected}).
			Build()
		notifier.SendMessage(msg)
	}

	return res.RowsAffected, nil
}
