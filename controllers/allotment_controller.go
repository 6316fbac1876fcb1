package controllers

import (
	"strconv"

	"pentouz/config"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllotments lists all room-type allotments with their channels
func GetAllotments(c *gin.Context) {
	var allotments []models.Allotment
	err := config.DB.Preload("RoomType").Preload("Channels", func(db *gorm.DB) *gorm.DB {
		return db.Order("priority")
	}).Find(&allotments).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, allotments, len(allotments))
}

// GetAllotmentByRoomType returns one allotment keyed by room type
func GetAllotmentByRoomType(c *gin.Context) {
	roomTypeID := c.Param("roomTypeId")

	var allotment models.Allotment
	err := config.DB.Preload("RoomType").Preload("Channels").
		Where("room_type_id = ?", roomTypeID).First(&allotment).Error
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, allotment)
}

// UpsertAllotment godoc
// @Summary Create or replace the channel allotment of a room type
// @Tags allotment
// @Accept json
// @Produce json
// @Param body body dto.UpsertAllotmentRequest true "allotment"
// @Success 200 {object} response.Response
// @Router /allotments [put]
func UpsertAllotment(c *gin.Context) {
	var req dto.UpsertAllotmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid allotment payload")
		return
	}

	allotment, err := services.UpsertAllotment(config.DB, req)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			switch appErr.Code {
			case errors.ErrCodeDBNotFound:
				response.NotFound(c)
			case errors.ErrCodeOverAllocated, errors.ErrCodeChannelConflict:
				response.Conflict(c)
			default:
				response.ValidationError(c, appErr.Message)
			}
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, allotment)
}

// GetChannelRates computes per-channel sell and net rates for a room type
func GetChannelRates(c *gin.Context) {
	roomTypeID, err := strconv.Atoi(c.Param("roomTypeId"))
	if err != nil {
		response.BadRequest(c, "Invalid room type id")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, roomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var allotment models.Allotment
	err = config.DB.Preload("Channels").Where("room_type_id = ?", roomTypeID).First(&allotment).Error
	if err != nil {
		response.NotFound(c)
		return
	}

	baseRate := roomType.BaseRate
	if rateStr := c.Query("baseRate"); rateStr != "" {
		if rate, err := strconv.ParseFloat(rateStr, 64); err == nil && rate > 0 {
			baseRate = rate
		}
	}

	rates := services.ChannelRates(&allotment, baseRate)
	response.SuccessWithTotal(c, rates, len(rates))
}
