package services

import (
	"pentouz/constants"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"

	"gorm.io/gorm"
)

// NextStock applies a transaction to the current stock. Stock may never go
// negative.
func NextStock(current float64, txnType string, quantity float64) (float64, error) {
	switch txnType {
	case constants.TxnConsumption:
		if quantity <= 0 {
			return 0, errors.NewAppError(errors.ErrCodeInvalidAmount, "Consumption quantity must be positive", nil)
		}
		if quantity > current {
			return 0, errors.NewAppError(errors.ErrCodeInsufficientStock, "Not enough stock", nil)
		}
		return current - quantity, nil
	case constants.TxnRestock:
		if quantity <= 0 {
			return 0, errors.NewAppError(errors.ErrCodeInvalidAmount, "Restock quantity must be positive", nil)
		}
		return current + quantity, nil
	case constants.TxnAdjustment:
		next := current + quantity
		if next < 0 {
			return 0, errors.NewAppError(errors.ErrCodeInsufficientStock, "Adjustment would make stock negative", nil)
		}
		return next, nil
	}
	return 0, errors.NewAppError(errors.ErrCodeInvalidFormat, "Transaction type is invalid: "+txnType, nil)
}

// ApplyStockMove records an inventory transaction and updates the item stock
// atomically.
func ApplyStockMove(db *gorm.DB, req dto.StockMoveRequest, actorID uint) (*models.InventoryItem, error) {
	var item models.InventoryItem

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, req.ItemID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeItemNotFound, "Inventory item not found", err)
		}

		next, err := NextStock(item.Stock, req.Type, req.Quantity)
		if err != nil {
			return err
		}

		item.Stock = next
		if err := tx.Save(&item).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Cannot update stock", err)
		}

		txn := models.InventoryTransaction{
			ItemID:   item.ID,
			Type:     req.Type,
			Quantity: req.Quantity,
			ActorID:  actorID,
			Note:     req.Note,
		}
		if err := tx.Create(&txn).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Cannot record transaction", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// LowStockItems lists items at or below their reorder level.
func LowStockItems(db *gorm.DB) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := db.Where("stock <= reorder_level").Order("category, name").Find(&items).Error
	return items, err
}

// ConsumptionByCategory sums consumption quantity and cost per category over
// a date range (dates in 2006-01-02 form).
func ConsumptionByCategory(db *gorm.DB, from, to string) ([]dto.ConsumptionSummary, error) {
	var summaries []dto.ConsumptionSummary

	rows, err := db.Model(&models.InventoryTransaction{}).
		Select("inventory_items.category, SUM(inventory_transactions.quantity) as quantity, SUM(inventory_transactions.quantity * inventory_items.unit_cost) as cost").
		Joins("JOIN inventory_items ON inventory_items.id = inventory_transactions.item_id").
		Where("inventory_transactions.type = ? AND inventory_transactions.created_at::date >= ? AND inventory_transactions.created_at::date <= ?",
			constants.TxnConsumption, from, to).
		Group("inventory_items.category").
		Order("inventory_items.category").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s dto.ConsumptionSummary
		if err := rows.Scan(&s.Category, &s.Quantity, &s.Cost); err != nil {
			return nil, err
		}
		s.Quantity = Round2(s.Quantity)
		s.Cost = Round2(s.Cost)
		summaries = append(summaries, s)
	}

	return summaries, nil
}
