package dto

type UserResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Avatar      string  `json:"avatar"`
	Role        int     `json:"role"`
	Status      int     `json:"status"`
	Department  string  `json:"department"`
	Floors      []int64 `json:"floors,omitempty"`
}

type CreateStaffRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=6"`
	PhoneNumber string  `json:"phoneNumber" binding:"required"`
	Role        int     `json:"role"`
	Department  string  `json:"department"`
	Floors      []int64 `json:"floors"`
}

type UpdateStaffRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        string  `json:"name"`
	PhoneNumber string  `json:"phoneNumber"`
	Avatar      string  `json:"avatar"`
	Department  string  `json:"department"`
	Floors      []int64 `json:"floors"`
}

type ChangeStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

type ChangeRoleRequest struct {
	ID   uint `json:"id" binding:"required"`
	Role int  `json:"role" binding:"required"`
}

type AttendanceRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

type StaffLoadResponse struct {
	UserID    uint   `json:"userId"`
	Name      string `json:"name"`
	OpenTasks int    `json:"openTasks"`
}
