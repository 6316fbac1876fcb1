package controllers

import (
	"log"
	"strconv"
	"time"

	"pentouz/config"
	"pentouz/constants"
	"pentouz/dto"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"
	"pentouz/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var staffCacheKey = "staff:all"

// StaffController carries the database and cache handles.
type StaffController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewStaffController(db *gorm.DB, redisCli *redis.Client) *StaffController {
	return &StaffController{DB: db, Redis: redisCli}
}

// GetStaff godoc
// @Summary List staff accounts with filters
// @Tags staff
// @Produce json
// @Param role query int false "role filter"
// @Param department query string false "department filter"
// @Success 200 {object} response.Response
// @Router /staff [get]
func (ctl *StaffController) GetStaff(c *gin.Context) {
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

	tx := ctl.DB.Model(&models.User{})
	if name := c.Query("name"); name != "" {
		tx = tx.Where("name ILIKE ? OR email ILIKE ?", "%"+name+"%", "%"+name+"%")
	}
	if role := c.Query("role"); role != "" {
		tx = tx.Where("role = ?", role)
	}
	if department := c.Query("department"); department != "" {
		tx = tx.Where("department = ?", department)
	}
	if status := c.Query("status"); status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := tx.Order("name").Offset(page * limit).Limit(limit).Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		userResponses = append(userResponses, toUserResponse(&users[i]))
	}

	response.SuccessWithPagination(c, userResponses, page, limit, int(total))
}

// CreateStaff registers a staff account; admins create staff pre-verified
func (ctl *StaffController) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid staff payload")
		return
	}

	role := req.Role
	if role == 0 {
		role = constants.RoleStaff
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		PhoneNumber:    req.PhoneNumber,
		Role:           role,
		Status:         constants.StatusActive,
		IsVerified:     true,
		Department:     req.Department,
		AssignedFloors: pq.Int64Array(req.Floors),
	}

	if err := validator.ValidateStaff(&user); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	user.Password = hashed

	var count int64
	ctl.DB.Model(&models.User{}).Where("email = ? OR phone_number = ?", req.Email, req.PhoneNumber).Count(&count)
	if count > 0 {
		response.Conflict(c)
		return
	}

	if err := ctl.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	go services.SendStaffWelcomeEmail(user.Email, user.PhoneNumber, req.Password)

	ctl.invalidateCache()

	response.Success(c, toUserResponse(&user))
}

// GetStaffByID returns one staff account with recent attendance
func (ctl *StaffController) GetStaffByID(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	err := ctl.DB.Preload("Attendance", func(db *gorm.DB) *gorm.DB {
		return db.Order("date desc").Limit(30)
	}).First(&user, id).Error
	if err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, user)
}

// UpdateStaff edits profile fields of a staff account
func (ctl *StaffController) UpdateStaff(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid staff payload")
		return
	}

	var user models.User
	if err := ctl.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.Department != "" {
		user.Department = req.Department
	}
	if req.Floors != nil {
		user.AssignedFloors = pq.Int64Array(req.Floors)
	}

	if err := ctl.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateCache()

	response.Success(c, toUserResponse(&user))
}

// ChangeStaffStatus activates or deactivates an account
func (ctl *StaffController) ChangeStaffStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if req.Status != constants.StatusInactive && req.Status != constants.StatusActive {
		response.BadRequest(c, "Status is invalid")
		return
	}

	var user models.User
	if err := ctl.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Status = req.Status
	if err := ctl.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateCache()

	response.Success(c, toUserResponse(&user))
}

// ChangeStaffRole promotes or demotes an account
func (ctl *StaffController) ChangeStaffRole(c *gin.Context) {
	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if req.Role < constants.RoleAdmin || req.Role > constants.RoleStaff {
		response.BadRequest(c, "Role is invalid")
		return
	}

	var user models.User
	if err := ctl.DB.First(&user, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Role = req.Role
	if err := ctl.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	ctl.invalidateCache()

	response.Success(c, toUserResponse(&user))
}

// CheckIn opens today's attendance record for a staff member
func (ctl *StaffController) CheckIn(c *gin.Context) {
	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var user models.User
	if err := ctl.DB.First(&user, req.UserID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if user.Status != constants.StatusActive {
		response.Forbidden(c)
		return
	}

	today := time.Now().Format("2006-01-02")

	var existing models.AttendanceRecord
	if err := ctl.DB.Where("user_id = ? AND date = ?", req.UserID, today).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	}

	record := models.AttendanceRecord{
		UserID:  req.UserID,
		Date:    today,
		CheckIn: time.Now(),
	}
	if err := ctl.DB.Create(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, record)
}

// CheckOut closes today's attendance record
func (ctl *StaffController) CheckOut(c *gin.Context) {
	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	today := time.Now().Format("2006-01-02")

	var record models.AttendanceRecord
	if err := ctl.DB.Where("user_id = ? AND date = ?", req.UserID, today).First(&record).Error; err != nil {
		response.NotFound(c)
		return
	}

	if record.CheckOut != nil {
		response.Conflict(c)
		return
	}

	now := time.Now()
	record.CheckOut = &now
	if err := ctl.DB.Save(&record).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, record)
}

// GetStaffLoad returns open housekeeping tasks per staff member
func (ctl *StaffController) GetStaffLoad(c *gin.Context) {
	rows, err := ctl.DB.Model(&models.HousekeepingTask{}).
		Select("users.id, users.name, count(housekeeping_tasks.id) as open_tasks").
		Joins("JOIN users ON users.id = housekeeping_tasks.assignee_id").
		Where("housekeeping_tasks.status IN ?", []string{constants.TaskStatusAssigned, constants.TaskStatusInProgress}).
		Group("users.id, users.name").
		Order("open_tasks desc").Rows()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer rows.Close()

	var loads []dto.StaffLoadResponse
	for rows.Next() {
		var load dto.StaffLoadResponse
		if err := rows.Scan(&load.UserID, &load.Name, &load.OpenTasks); err != nil {
			response.ServerError(c)
			return
		}
		loads = append(loads, load)
	}

	response.SuccessWithTotal(c, loads, len(loads))
}

func (ctl *StaffController) invalidateCache() {
	if ctl.Redis != nil {
		if err := services.DeleteFromRedis(config.Ctx, ctl.Redis, staffCacheKey); err != nil {
			log.Printf("Error invalidating staff cache: %v", err)
		}
	}
}
