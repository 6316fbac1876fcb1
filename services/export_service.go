package services

import (
	"fmt"
	"time"

	"pentouz/models"

	"github.com/xuri/excelize/v2"
)

// ExportGuestsXLSX renders a guest list into an XLSX workbook.
func ExportGuestsXLSX(guests []models.Guest) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Guests"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Name", "Email", "Phone", "City", "Status", "Stays", "Corporate", "Created"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	statusLabels := map[int]string{0: "inactive", 1: "active", 2: "blacklisted"}

	for row, g := range guests {
		corporate := ""
		if g.IsCorporate() {
			corporate = fmt.Sprintf("company %d", *g.CorporateCompanyID)
		}
		values := []interface{}{
			g.ID, g.Name, g.Email, g.Phone, g.City,
			statusLabels[g.Status], g.StayCount, corporate,
			g.CreatedAt.Format("02/01/2006"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

// ExportInventoryXLSX renders the inventory into an XLSX workbook with a
// low-stock marker column.
func ExportInventoryXLSX(items []models.InventoryItem) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Inventory"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"ID", "Name", "Category", "Unit", "Stock", "Reorder Level", "Unit Cost", "Low Stock"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, item := range items {
		low := ""
		if item.LowStock() {
			low = "YES"
		}
		values := []interface{}{
			item.ID, item.Name, item.Category, item.Unit,
			item.Stock, item.ReorderLevel, item.UnitCost, low,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	return f, nil
}

// ExportFileName builds the attachment name for a report download.
func ExportFileName(prefix string) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, time.Now().Format("2006-01-02"))
}
