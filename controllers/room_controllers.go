package controllers

import (
	"strconv"

	"pentouz/config"
	"pentouz/constants"
	"pentouz/dto"
	"pentouz/models"
	"pentouz/response"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// GetRoomTypes lists room types
func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Order("name").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, roomTypes, len(roomTypes))
}

// CreateRoomType registers a room type
func CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid room type payload")
		return
	}

	if req.BaseRate <= 0 {
		response.BadRequest(c, "Base rate must be positive")
		return
	}

	var count int64
	config.DB.Model(&models.RoomType{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		response.Conflict(c)
		return
	}

	roomType := models.RoomType{
		Name:       req.Name,
		BaseRate:   req.BaseRate,
		Occupancy:  req.Occupancy,
		TotalUnits: req.TotalUnits,
		Amenities:  datatypes.JSON(req.Amenities),
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, roomType)
}

// GetRooms lists rooms, filterable by floor, status and room type
func GetRooms(c *gin.Context) {
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

	tx := config.DB.Model(&models.Room{})
	if floor := c.Query("floor"); floor != "" {
		tx = tx.Where("floor = ?", floor)
	}
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}
	if roomTypeID := c.Query("roomTypeId"); roomTypeID != "" {
		tx = tx.Where("room_type_id = ?", roomTypeID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := tx.Preload("RoomType").Order("room_number").Offset(page * limit).Limit(limit).Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, rooms, page, limit, int(total))
}

// CreateRoom registers a room
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid room payload")
		return
	}

	var roomType models.RoomType
	if err := config.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	var count int64
	config.DB.Model(&models.Room{}).Where("room_number = ?", req.RoomNumber).Count(&count)
	if count > 0 {
		response.Conflict(c)
		return
	}

	room := models.Room{
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		RoomTypeID: req.RoomTypeID,
		Status:     constants.RoomStatusAvailable,
		Photos:     datatypes.JSON(req.Photos),
		Notes:      req.Notes,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}

// ChangeRoomStatus updates the operational status of a room
func ChangeRoomStatus(c *gin.Context) {
	var req dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	room.Status = req.Status
	if err := room.ValidateStatus(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, room)
}
