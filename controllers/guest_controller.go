package controllers

import (
	"log"
	"net/url"
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
)

var guestsCacheKey = "guests:all"

// GetGuests godoc
// @Summary List guests with filters and pagination
// @Tags guests
// @Produce json
// @Param page query int false "page"
// @Param limit query int false "limit"
// @Param name query string false "name filter"
// @Param status query int false "status filter"
// @Success 200 {object} response.Response
// @Router /guests [get]
func GetGuests(c *gin.Context) {
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

	nameFilter := c.Query("name")
	cityFilter := c.Query("city")
	statusFilter := c.Query("status")
	corporateFilter := c.Query("corporate")

	tx := config.DB.Model(&models.Guest{})

	if nameFilter != "" {
		decodedName, err := url.QueryUnescape(nameFilter)
		if err != nil {
			response.ServerError(c)
			return
		}
		tx = tx.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?",
			"%"+decodedName+"%", "%"+decodedName+"%", "%"+decodedName+"%")
	}
	if cityFilter != "" {
		tx = tx.Where("city ILIKE ?", "%"+cityFilter+"%")
	}
	if statusFilter != "" {
		tx = tx.Where("status = ?", statusFilter)
	}
	if corporateFilter == "true" {
		tx = tx.Where("corporate_company_id IS NOT NULL")
	} else if corporateFilter == "false" {
		tx = tx.Where("corporate_company_id IS NULL")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var guests []models.Guest
	if err := tx.Order("created_at desc").Offset(page * limit).Limit(limit).Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Remember the filters for this session so the console can restore them.
	if sessionId, exists := c.Get("sessionId"); exists && config.RedisClient != nil {
		if key, ok := sessionId.(string); ok {
			filters := &dto.GuestSearchFilters{Name: nameFilter, City: cityFilter}
			if statusFilter != "" {
				if s, err := strconv.Atoi(statusFilter); err == nil {
					filters.Status = &s
				}
			}
			if err := services.SaveLastFilters(config.Ctx, config.RedisClient, key, filters); err != nil {
				log.Printf("Error saving last filters: %v", err)
			}
		}
	}

	guestResponses := make([]dto.GuestResponse, 0, len(guests))
	for i := range guests {
		guestResponses = append(guestResponses, toGuestResponse(&guests[i]))
	}

	response.SuccessWithPagination(c, guestResponses, page, limit, int(total))
}

// CreateGuest registers a new guest profile
func CreateGuest(c *gin.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid guest payload")
		return
	}

	guest := models.Guest{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Gender:        req.Gender,
		DateOfBirth:   req.DateOfBirth,
		Address:       req.Address,
		City:          req.City,
		IDProofType:   req.IDProofType,
		IDProofNumber: req.IDProofNumber,
		Notes:         req.Notes,
		Status:        constants.StatusActive,
	}

	if err := validator.ValidateGuest(&guest); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateGuestCache()

	response.Success(c, toGuestResponse(&guest))
}

// GetGuestByID returns one guest with the corporate company preloaded
func GetGuestByID(c *gin.Context) {
	id := c.Param("id")

	var guest models.Guest
	if err := config.DB.Preload("CorporateCompany").First(&guest, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, guest)
}

// UpdateGuest updates guest profile fields
func UpdateGuest(c *gin.Context) {
	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid guest payload")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		guest.Name = req.Name
	}
	if req.Email != "" {
		guest.Email = req.Email
	}
	if req.Phone != "" {
		guest.Phone = req.Phone
	}
	if req.Address != "" {
		guest.Address = req.Address
	}
	if req.City != "" {
		guest.City = req.City
	}
	if req.IDProofType != "" {
		guest.IDProofType = req.IDProofType
	}
	if req.IDProofNumber != "" {
		guest.IDProofNumber = req.IDProofNumber
	}
	if req.Notes != "" {
		guest.Notes = req.Notes
	}

	if err := validator.ValidateGuest(&guest); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateGuestCache()

	response.Success(c, toGuestResponse(&guest))
}

// ChangeGuestStatus activates, deactivates or blacklists a guest
func ChangeGuestStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	if req.Status < constants.StatusInactive || req.Status > constants.GuestBlacklisted {
		response.BadRequest(c, "Status is invalid")
		return
	}

	var guest models.Guest
	if err := config.DB.First(&guest, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	guest.Status = req.Status
	if err := config.DB.Save(&guest).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateGuestCache()

	response.Success(c, toGuestResponse(&guest))
}

// SearchGuests runs the fuzzy directory search over the cached guest list
func SearchGuests(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q is required")
		return
	}

	guests, err := loadGuestsCached()
	if err != nil {
		response.ServerError(c)
		return
	}

	scored := services.SearchGuests(query, guests)

	limit := 20
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	if len(scored) > limit {
		scored = scored[:limit]
	}

	response.SuccessWithTotal(c, scored, len(scored))
}

// loadGuestsCached serves the full guest list from Redis when possible.
func loadGuestsCached() ([]models.Guest, error) {
	var guests []models.Guest

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, guestsCacheKey, &guests); err == nil && len(guests) > 0 {
			return guests, nil
		}
	}

	if err := config.DB.Find(&guests).Error; err != nil {
		return nil, err
	}

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, guestsCacheKey, guests, 60*time.Minute); err != nil {
			log.Printf("Error caching guests: %v", err)
		}
	}

	return guests, nil
}

func invalidateGuestCache() {
	if config.RedisClient != nil {
		if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, guestsCacheKey); err != nil {
			log.Printf("Error invalidating guest cache: %v", err)
		}
	}
}

func toGuestResponse(guest *models.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		ID:                 guest.ID,
		Name:               guest.Name,
		Email:              guest.Email,
		Phone:              guest.Phone,
		City:               guest.City,
		Status:             guest.Status,
		StayCount:          guest.StayCount,
		Avatar:             guest.Avatar,
		CorporateCompanyID: guest.CorporateCompanyID,
		CorporateStatus:    guest.CorporateStatus,
	}
}
