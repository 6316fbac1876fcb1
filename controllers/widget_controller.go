package controllers

import (
	"strconv"
	"time"

	"pentouz/config"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GetWidgets lists widgets with their computed rates
func GetWidgets(c *gin.Context) {
	var widgets []models.Widget
	if err := config.DB.Order("created_at desc").Find(&widgets).Error; err != nil {
		response.ServerError(c)
		return
	}

	stats := make([]dto.WidgetStatsResponse, 0, len(widgets))
	for i := range widgets {
		stats = append(stats, services.ComputeWidgetStats(&widgets[i]))
	}

	response.SuccessWithTotal(c, gin.H{
		"widgets": widgets,
		"stats":   stats,
	}, len(widgets))
}

// CreateWidget registers an embeddable booking widget with a fresh key
func CreateWidget(c *gin.Context) {
	var req dto.CreateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid widget payload")
		return
	}

	widget := models.Widget{
		Key:        uuid.New().String(),
		Name:       req.Name,
		TargetPage: req.TargetPage,
		Theme:      datatypes.JSON(req.Theme),
		Active:     true,
	}

	if err := config.DB.Create(&widget).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, widget)
}

// UpdateWidget edits the widget configuration or toggles it
func UpdateWidget(c *gin.Context) {
	var req dto.UpdateWidgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid widget payload")
		return
	}

	var widget models.Widget
	if err := config.DB.First(&widget, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		widget.Name = req.Name
	}
	if req.TargetPage != "" {
		widget.TargetPage = req.TargetPage
	}
	if len(req.Theme) > 0 {
		widget.Theme = datatypes.JSON(req.Theme)
	}
	if req.Active != nil {
		widget.Active = *req.Active
	}

	if err := config.DB.Save(&widget).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, widget)
}

// DeleteWidget removes a widget and its daily stats
func DeleteWidget(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid widget id")
		return
	}

	if err := config.DB.Where("widget_id = ?", id).Delete(&models.WidgetStat{}).Error; err != nil {
		response.ServerError(c)
		return
	}
	if err := config.DB.Delete(&models.Widget{}, id).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// TrackWidgetEvent godoc
// @Summary Record an impression, click or conversion from the embed snippet
// @Tags widgets
// @Accept json
// @Produce json
// @Param body body dto.TrackEventRequest true "event"
// @Success 200 {object} response.Response
// @Router /widgets/track [post]
func TrackWidgetEvent(c *gin.Context) {
	var req dto.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid event payload")
		return
	}

	if err := services.TrackWidgetEvent(config.DB, req.Key, req.Event); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			switch appErr.Code {
			case errors.ErrCodeWidgetNotFound:
				response.NotFound(c)
			case errors.ErrCodeWidgetInactive:
				response.Forbidden(c)
			default:
				response.ValidationError(c, appErr.Message)
			}
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// GetWidgetStats returns the lifetime counters and rates of one widget
func GetWidgetStats(c *gin.Context) {
	id := c.Param("id")

	var widget models.Widget
	if err := config.DB.First(&widget, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, services.ComputeWidgetStats(&widget))
}

// GetWidgetStatsRange sums the daily rollups over a date range.
// Defaults to the last 7 days.
func GetWidgetStatsRange(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid widget id")
		return
	}

	to := c.Query("to")
	from := c.Query("from")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -7).Format("2006-01-02")
	}

	stats, err := services.WidgetStatsRange(config.DB, uint(id), from, to)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, stats)
}
