package models

import "time"

// HotelSetting is the singleton hotel profile. StateCode feeds the GST
// place-of-supply check.
type HotelSetting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:255" json:"name"`
	Address      string    `gorm:"type:text" json:"address"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Email        string    `gorm:"size:150" json:"email"`
	Website      string    `gorm:"size:255" json:"website"`
	Logo         string    `gorm:"size:255" json:"logo"`
	StateCode    string    `gorm:"size:2" json:"stateCode"`
	CheckInTime  string    `gorm:"size:5;default:'14:00'" json:"checkInTime"`
	CheckOutTime string    `gorm:"size:5;default:'11:00'" json:"checkOutTime"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
