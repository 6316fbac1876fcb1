package controllers

import (
	"strconv"
	"time"

	"pentouz/commands"
	"pentouz/config"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"
	"pentouz/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// GetTasks godoc
// @Summary List housekeeping tasks with filters
// @Tags housekeeping
// @Produce json
// @Param status query string false "status filter"
// @Param assigneeId query int false "assignee filter"
// @Success 200 {object} response.Response
// @Router /housekeeping/tasks [get]
func GetTasks(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.HousekeepingTask{})
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if taskType := c.Query("type"); taskType != "" {
		tx = tx.Where("type = ?", taskType)
	}
	if assigneeID := c.Query("assigneeId"); assigneeID != "" {
		tx = tx.Where("assignee_id = ?", assigneeID)
	}
	if floor := c.Query("floor"); floor != "" {
		tx = tx.Joins("JOIN rooms ON rooms.room_id = housekeeping_tasks.room_id").
			Where("rooms.floor = ?", floor)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var tasks []models.HousekeepingTask
	err := tx.Preload("Room").Preload("Assignee").
		Order("priority desc, due_at asc nulls last").
		Offset(page * limit).Limit(limit).Find(&tasks).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	taskResponses := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		taskResponses = append(taskResponses, toTaskResponse(&tasks[i]))
	}

	response.SuccessWithPagination(c, taskResponses, page, limit, int(total))
}

// CreateTask opens a new housekeeping task in pending
func CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid task payload")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	priority := req.Priority
	if priority == 0 {
		priority = 2
	}

	task := models.HousekeepingTask{
		RoomID:    req.RoomID,
		Type:      req.Type,
		Priority:  priority,
		Notes:     req.Notes,
		Checklist: datatypes.JSON(req.Checklist),
	}

	if req.DueAt != "" {
		dueAt, err := time.Parse("02/01/2006 15:04", req.DueAt)
		if err != nil {
			response.BadRequest(c, "Due time must be in 02/01/2006 15:04 form")
			return
		}
		task.DueAt = &dueAt
	}

	if creatorID, exists := c.Get("userID"); exists {
		task.CreatedBy = creatorID.(uint)
	}

	if err := validator.ValidateTask(&task); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	cmd := commands.NewCreateTaskCommand(&task, config.DB)
	if err := cmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toTaskResponse(&task))
}

// GetTaskByID returns one task with room and assignee
func GetTaskByID(c *gin.Context) {
	id := c.Param("id")

	var task models.HousekeepingTask
	if err := config.DB.Preload("Room").Preload("Assignee").First(&task, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, task)
}

// AssignTask hands a task to an active staff member
func AssignTask(c *gin.Context) {
	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	task, err := services.AssignTask(config.DB, req.TaskID, req.AssigneeID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, toTaskResponse(task))
}

// StartTask moves an assigned task into progress
func StartTask(c *gin.Context) {
	var req dto.TaskActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	task, err := services.StartTask(config.DB, req.TaskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, toTaskResponse(task))
}

// CompleteTask finishes an in-progress task
func CompleteTask(c *gin.Context) {
	var req dto.TaskActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	task, err := services.CompleteTask(config.DB, req.TaskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, toTaskResponse(task))
}

// CancelTask cancels a task with a mandatory reason
func CancelTask(c *gin.Context) {
	var req dto.TaskActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	task, err := services.CancelTask(config.DB, req.TaskID, req.Reason)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, toTaskResponse(task))
}

// ReopenTask sends a finished task back to pending
func ReopenTask(c *gin.Context) {
	var req dto.TaskActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	task, err := services.ReopenTask(config.DB, req.TaskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	response.Success(c, toTaskResponse(task))
}

// DeleteTask removes a task record
func DeleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid task id")
		return
	}

	cmd := commands.NewDeleteTaskCommand(uint(id), config.DB)
	if err := cmd.Execute(); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetHousekeepingSummary returns the dashboard aggregates
func GetHousekeepingSummary(c *gin.Context) {
	summary, err := services.GetHousekeepingSummary(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, summary)
}

func respondTaskError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeTaskNotFound:
			response.NotFound(c)
		case errors.ErrCodeInvalidTransition:
			response.Conflict(c)
		default:
			response.ValidationError(c, appErr.Message)
		}
		return
	}
	response.ServerError(c)
}

func toTaskResponse(task *models.HousekeepingTask) dto.TaskResponse {
	res := dto.TaskResponse{
		ID:          task.ID,
		Type:        task.Type,
		Status:      task.Status,
		Priority:    task.Priority,
		AssigneeID:  task.AssigneeID,
		DurationMin: task.DurationMinutes(),
		Notes:       task.Notes,
	}
	if task.Room != nil {
		res.RoomNumber = task.Room.RoomNumber
	}
	if task.Assignee != nil {
		res.Assignee = task.Assignee.Name
	}
	if task.DueAt != nil {
		res.DueAt = task.DueAt.Format("02/01/2006 15:04")
	}
	return res
}
