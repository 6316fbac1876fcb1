package dto

type CreateItemRequest struct {
	Name         string  `json:"name" binding:"required"`
	Category     string  `json:"category" binding:"required"`
	Unit         string  `json:"unit"`
	Stock        float64 `json:"stock"`
	ReorderLevel float64 `json:"reorderLevel"`
	UnitCost     float64 `json:"unitCost"`
}

type UpdateItemRequest struct {
	ID           uint    `json:"id" binding:"required"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Unit         string  `json:"unit"`
	ReorderLevel float64 `json:"reorderLevel"`
	UnitCost     float64 `json:"unitCost"`
}

type StockMoveRequest struct {
	ItemID   uint    `json:"itemId" binding:"required"`
	Type     string  `json:"type" binding:"required"` // consumption, restock, adjustment
	Quantity float64 `json:"quantity" binding:"required"`
	Note     string  `json:"note"`
}

type ConsumptionSummary struct {
	Category string  `json:"category"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}
