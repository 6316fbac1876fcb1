package models

import (
	"time"
)

// GSTSlab maps a declared tariff band to a GST rate. MaxTariff 0 means open-ended.
type GSTSlab struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	MinTariff float64 `json:"minTariff"`
	MaxTariff float64 `json:"maxTariff"`
	Rate      float64 `json:"rate"` // percent
	Active    bool    `json:"active" gorm:"default:true"`
}

type TaxInvoice struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	InvoiceNo     string            `json:"invoiceNo" gorm:"unique;size:20"`
	CompanyID     uint              `json:"companyId"`
	Company       *CorporateCompany `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	TaxableValue  float64           `json:"taxableValue"`
	CGST          float64           `json:"cgst"`
	SGST          float64           `json:"sgst"`
	IGST          float64           `json:"igst"`
	Total         float64           `json:"total"`
	PlaceOfSupply string            `json:"placeOfSupply" gorm:"size:2"`
	Interstate    bool              `json:"interstate"`
	CreatedBy     uint              `json:"createdBy"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updatedAt"`
}
