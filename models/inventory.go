package models

import (
	"time"
)

type InventoryItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null"`
	Category     string    `json:"category" gorm:"index"`
	Unit         string    `json:"unit"` // pcs, kg, litre
	Stock        float64   `json:"stock" gorm:"default:0"`
	ReorderLevel float64   `json:"reorderLevel" gorm:"default:0"`
	UnitCost     float64   `json:"unitCost"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// LowStock reports whether the item needs reordering.
func (i *InventoryItem) LowStock() bool {
	return i.Stock <= i.ReorderLevel
}

type InventoryTransaction struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ItemID    uint           `json:"itemId" gorm:"index"`
	Item      *InventoryItem `json:"item,omitempty" gorm:"foreignKey:ItemID"`
	Type      string         `json:"type"` // consumption, restock, adjustment
	Quantity  float64        `json:"quantity"`
	ActorID   uint           `json:"actorId"`
	Note      string         `json:"note"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
