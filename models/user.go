package models

import (
	"time"

	"github.com/lib/pq"
)

type User struct {
	ID             uint               `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time          `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time          `gorm:"autoUpdateTime" json:"updatedAt"`
	Name           string             `gorm:"default:New User" json:"name"`
	Email          string             `gorm:"unique" json:"email"`
	Password       string             `json:"password"`
	IsVerified     bool               `gorm:"default:false" json:"is_verified"`
	Code           string             `json:"code"`
	CodeCreatedAt  time.Time          `gorm:"autoCreateTime" json:"codeCreatedAt"`
	PhoneNumber    string             `gorm:"unique;type:varchar(11);not null" json:"phoneNumber"`
	Avatar         string             `json:"avatar"`
	Role           int                `gorm:"default:3" json:"role"`
	Status         int                `gorm:"default:1" json:"status"`
	Gender         int                `json:"gender"`
	DateOfBirth    string             `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	Department     string             `json:"department"`
	AssignedFloors pq.Int64Array      `json:"assignedFloors" gorm:"type:integer[]"`
	Attendance     []AttendanceRecord `json:"attendance,omitempty" gorm:"foreignKey:UserID"`
}
