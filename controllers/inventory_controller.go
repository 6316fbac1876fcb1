package controllers

import (
	"strconv"
	"time"

	"pentouz/config"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"

	"github.com/gin-gonic/gin"
)

// GetInventoryItems lists inventory items, filterable by category and name
func GetInventoryItems(c *gin.Context) {
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

	tx := config.DB.Model(&models.InventoryItem{})
	if category := c.Query("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}
	if name := c.Query("name"); name != "" {
		tx = tx.Where("name ILIKE ?", "%"+name+"%")
	}
	if c.Query("low") == "true" {
		tx = tx.Where("stock <= reorder_level")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var items []models.InventoryItem
	if err := tx.Order("category, name").Offset(page * limit).Limit(limit).Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, items, page, limit, int(total))
}

// CreateInventoryItem registers a stock item
func CreateInventoryItem(c *gin.Context) {
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid item payload")
		return
	}

	if req.Stock < 0 || req.ReorderLevel < 0 {
		response.BadRequest(c, "Stock and reorder level must not be negative")
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		Stock:        req.Stock,
		ReorderLevel: req.ReorderLevel,
		UnitCost:     req.UnitCost,
	}

	var count int64
	config.DB.Model(&models.InventoryItem{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		response.Conflict(c)
		return
	}

	if err := config.DB.Create(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

// UpdateInventoryItem edits item metadata; stock only moves through
// transactions.
func UpdateInventoryItem(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid item payload")
		return
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		item.Name = req.Name
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.ReorderLevel > 0 {
		item.ReorderLevel = req.ReorderLevel
	}
	if req.UnitCost > 0 {
		item.UnitCost = req.UnitCost
	}

	if err := config.DB.Save(&item).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

// MoveStock godoc
// @Summary Record a consumption, restock or adjustment
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body dto.StockMoveRequest true "move"
// @Success 200 {object} response.Response
// @Router /inventory/stock [post]
func MoveStock(c *gin.Context) {
	var req dto.StockMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid stock payload")
		return
	}

	actorID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	item, err := services.ApplyStockMove(config.DB, req, actorID.(uint))
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			if appErr.Code == errors.ErrCodeItemNotFound {
				response.NotFound(c)
				return
			}
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, item)
}

// GetStockTransactions lists the movement history of an item
func GetStockTransactions(c *gin.Context) {
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

	tx := config.DB.Model(&models.InventoryTransaction{})
	if itemID := c.Query("itemId"); itemID != "" {
		tx = tx.Where("item_id = ?", itemID)
	}
	if txnType := c.Query("type"); txnType != "" {
		tx = tx.Where("type = ?", txnType)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var txns []models.InventoryTransaction
	if err := tx.Preload("Item").Order("created_at desc").Offset(page * limit).Limit(limit).Find(&txns).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, txns, page, limit, int(total))
}

// GetLowStockItems lists items at or below reorder level
func GetLowStockItems(c *gin.Context) {
	items, err := services.LowStockItems(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, items, len(items))
}

// GetConsumptionSummary aggregates consumption per category over a range.
// Defaults to the last 30 days.
func GetConsumptionSummary(c *gin.Context) {
	to := c.Query("to")
	from := c.Query("from")
	if to == "" {
		to = time.Now().Format("2006-01-02")
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	}

	summaries, err := services.ConsumptionByCategory(config.DB, from, to)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, summaries, len(summaries))
}
