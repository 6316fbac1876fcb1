package dto

import "encoding/json"

type CreateRoomTypeRequest struct {
	Name       string          `json:"name" binding:"required"`
	BaseRate   float64         `json:"baseRate" binding:"required"`
	Occupancy  int             `json:"occupancy"`
	TotalUnits int             `json:"totalUnits"`
	Amenities  json.RawMessage `json:"amenities"`
}

type CreateRoomRequest struct {
	RoomNumber string          `json:"roomNumber" binding:"required"`
	Floor      int             `json:"floor"`
	RoomTypeID uint            `json:"roomTypeId" binding:"required"`
	Photos     json.RawMessage `json:"photos"`
	Notes      string          `json:"notes"`
}

type ChangeRoomStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status" binding:"required"`
}
