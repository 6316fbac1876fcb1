package controllers

import (
	"strconv"

	"pentouz/config"
	"pentouz/models"
	"pentouz/response"
	"pentouz/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetHotelSettings returns the hotel profile singleton
func GetHotelSettings(c *gin.Context) {
	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Success(c, models.HotelSetting{})
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, setting)
}

// UpdateHotelSettings updates the hotel profile; created on first save
func UpdateHotelSettings(c *gin.Context) {
	var req models.HotelSetting
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid settings payload")
		return
	}

	if req.StateCode != "" && !validator.IsValidStateCode(req.StateCode) {
		response.BadRequest(c, "State code is invalid")
		return
	}

	var setting models.HotelSetting
	if err := config.DB.First(&setting).Error; err != nil {
		setting = req
		setting.ID = 0
		if err := config.DB.Create(&setting).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, setting)
		return
	}

	if req.Name != "" {
		setting.Name = req.Name
	}
	if req.Address != "" {
		setting.Address = req.Address
	}
	if req.Phone != "" {
		setting.Phone = req.Phone
	}
	if req.Email != "" {
		setting.Email = req.Email
	}
	if req.Website != "" {
		setting.Website = req.Website
	}
	if req.Logo != "" {
		setting.Logo = req.Logo
	}
	if req.StateCode != "" {
		setting.StateCode = req.StateCode
	}
	if req.CheckInTime != "" {
		setting.CheckInTime = req.CheckInTime
	}
	if req.CheckOutTime != "" {
		setting.CheckOutTime = req.CheckOutTime
	}

	if err := config.DB.Save(&setting).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, setting)
}

// GetNotifications lists console notifications for the signed-in user
func GetNotifications(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var notifications []models.Notification
	err := config.DB.Where("user_id = ?", userID).
		Order("created_at desc").Limit(limit).Find(&notifications).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, notifications, len(notifications))
}
