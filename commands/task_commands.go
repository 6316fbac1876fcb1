package commands

import (
	"pentouz/models"

	"gorm.io/gorm"
)

// TaskCommand is the interface of housekeeping write operations
type TaskCommand interface {
	Execute() error
}

// CreateTaskCommand creates a new housekeeping task
type CreateTaskCommand struct {
	task *models.HousekeepingTask
	db   *gorm.DB
}

func NewCreateTaskCommand(task *models.HousekeepingTask, db *gorm.DB) *CreateTaskCommand {
	return &CreateTaskCommand{
		task: task,
		db:   db,
	}
}

func (c *CreateTaskCommand) Execute() error {
	return c.db.Create(c.task).Error
}

// UpdateTaskCommand persists task changes
type UpdateTaskCommand struct {
	task *models.HousekeepingTask
	db   *gorm.DB
}

func NewUpdateTaskCommand(task *models.HousekeepingTask, db *gorm.DB) *UpdateTaskCommand {
	return &UpdateTaskCommand{
		task: task,
		db:   db,
	}
}

func (c *UpdateTaskCommand) Execute() error {
	return c.db.Save(c.task).Error
}

// DeleteTaskCommand removes a task
type DeleteTaskCommand struct {
	taskID uint
	db     *gorm.DB
}

func NewDeleteTaskCommand(taskID uint, db *gorm.DB) *DeleteTaskCommand {
	return &DeleteTaskCommand{
		taskID: taskID,
		db:     db,
	}
}

func (c *DeleteTaskCommand) Execute() error {
	return c.db.Delete(&models.HousekeepingTask{}, c.taskID).Error
}
