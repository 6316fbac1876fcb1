package models

import "time"

// AttendanceRecord is one staff check-in/check-out pair for a working day.
type AttendanceRecord struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	UserID   uint       `json:"userId" gorm:"index"`
	Date     string     `json:"date"` // 2006-01-02
	CheckIn  time.Time  `json:"checkIn"`
	CheckOut *time.Time `json:"checkOut,omitempty"`
}
