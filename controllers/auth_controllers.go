package controllers

import (
	"strings"
	"time"

	"pentouz/config"
	"pentouz/constants"
	"pentouz/dto"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Staff sign-in with email/phone and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "credentials"
// @Success 200 {object} response.Response
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid login payload")
		return
	}

	var user models.User
	err := config.DB.Where("email = ? OR phone_number = ?", req.Identifier, req.Identifier).First(&user).Error
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user.Password, req.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	if user.Status != constants.StatusActive {
		response.Forbidden(c)
		return
	}

	if !user.IsVerified {
		response.BadRequest(c, "Account email is not verified")
		return
	}

	token, err := services.GenerateToken(&user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(&user),
	})
}

// Logout invalidates the session filter cache; the JWT itself simply expires.
func Logout(c *gin.Context) {
	if sessionId, exists := c.Get("sessionId"); exists {
		if key, ok := sessionId.(string); ok && config.RedisClient != nil {
			services.ClearLastFilters(config.Ctx, config.RedisClient, key)
		}
	}
	response.Success(c, nil)
}

// RegisterUser creates a staff account pending email verification
func RegisterUser(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid register payload")
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		response.Conflict(c)
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	code, err := services.GenerateVerificationCode()
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:          req.Name,
		Email:         req.Email,
		Password:      hashed,
		PhoneNumber:   req.PhoneNumber,
		Role:          constants.RoleStaff,
		Status:        constants.StatusActive,
		Code:          code,
		CodeCreatedAt: time.Now(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	go services.SendVerificationEmail(user.Email, code)

	response.Success(c, toUserResponse(&user))
}

// VerifyEmail confirms a staff account from the emailed token
func VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.BadRequest(c, "token is required")
		return
	}

	var user models.User
	if err := config.DB.Where("code = ?", token).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if time.Since(user.CodeCreatedAt) > 24*time.Hour {
		response.BadRequest(c, "Verification code has expired")
		return
	}

	user.IsVerified = true
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// ResendVerificationCode mails a fresh verification code
func ResendVerificationCode(c *gin.Context) {
	var req dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.IsVerified {
		response.BadRequest(c, "Account is already verified")
		return
	}

	code, err := services.GenerateVerificationCode()
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Code = code
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	go services.SendVerificationEmail(user.Email, code)

	response.Success(c, nil)
}

// ForgetPassword starts the password reset flow
func ForgetPassword(c *gin.Context) {
	var req dto.ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		// Do not reveal whether the email exists.
		response.Success(c, nil)
		return
	}

	code, err := services.GenerateVerificationCode()
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Code = code
	user.CodeCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	go services.SendResetCodeEmail(user.Email, code)

	response.Success(c, nil)
}

// VerifyCode checks a one-time code without consuming it
func VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND code = ?", req.Email, req.Code).First(&user).Error; err != nil {
		response.BadRequest(c, "Code is invalid")
		return
	}

	if time.Since(user.CodeCreatedAt) > 15*time.Minute {
		response.BadRequest(c, "Code has expired")
		return
	}

	response.Success(c, nil)
}

// ResetPassword sets a new password from a valid reset code
func ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND code = ?", req.Email, req.Code).First(&user).Error; err != nil {
		response.BadRequest(c, "Code is invalid")
		return
	}

	if time.Since(user.CodeCreatedAt) > 15*time.Minute {
		response.BadRequest(c, "Code has expired")
		return
	}

	hashed, err := services.HashPassword(req.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Password = hashed
	user.Code = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// AuthGoogle signs a staff member in with a Google ID token. The account must
// already exist; Google sign-in does not create staff accounts.
func AuthGoogle(c *gin.Context) {
	var req dto.GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	payload, err := services.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.NotFound(c)
			return
		}
		response.ServerError(c)
		return
	}

	if user.Status != constants.StatusActive {
		response.Forbidden(c)
		return
	}

	token, err := services.GenerateToken(&user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		User:        toUserResponse(&user),
	})
}

// GetProfile returns the account of the bearer token
func GetProfile(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	userID, err := services.GetIDFromToken(tokenString)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(&user))
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
		Department:  user.Department,
		Floors:      user.AssignedFloors,
	}
}
