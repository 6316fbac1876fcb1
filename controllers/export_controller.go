package controllers

import (
	"net/http"

	"pentouz/config"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"

	"github.com/gin-gonic/gin"
)

// ExportGuests streams the guest directory as an XLSX attachment
func ExportGuests(c *gin.Context) {
	var guests []models.Guest
	tx := config.DB.Order("name")
	if c.Query("corporate") == "true" {
		tx = tx.Where("corporate_company_id IS NOT NULL")
	}
	if err := tx.Find(&guests).Error; err != nil {
		response.ServerError(c)
		return
	}

	f, err := services.ExportGuestsXLSX(guests)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName("guests")+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

// ExportInventory streams the inventory as an XLSX attachment
func ExportInventory(c *gin.Context) {
	var items []models.InventoryItem
	tx := config.DB.Order("category, name")
	if c.Query("low") == "true" {
		tx = tx.Where("stock <= reorder_level")
	}
	if err := tx.Find(&items).Error; err != nil {
		response.ServerError(c)
		return
	}

	f, err := services.ExportInventoryXLSX(items)
	if err != nil {
		response.ServerError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+services.ExportFileName("inventory")+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
