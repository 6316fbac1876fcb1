package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type CorporateCompany struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Name           string    `json:"name" gorm:"not null;uniqueIndex" validate:"required"`
	GSTIN          string    `json:"gstin" gorm:"uniqueIndex;size:15" validate:"required,len=15"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	BillingAddress string    `json:"billingAddress"`
	StateCode      string    `json:"stateCode" gorm:"size:2"` // GST state code, 01-38
	CreditLimit    float64   `json:"creditLimit" gorm:"default:0"`
	CreditUsed     float64   `json:"creditUsed" gorm:"default:0"`
	PaymentTerms   int       `json:"paymentTerms" gorm:"default:30"` // days
	Status         int       `json:"status" gorm:"default:1"`
	Accounts       []Guest   `json:"accounts,omitempty" gorm:"foreignKey:CorporateCompanyID"`
}

// CreditAvailable is the remaining bookable credit for the company.
func (c *CorporateCompany) CreditAvailable() float64 {
	return c.CreditLimit - c.CreditUsed
}

// Validate checks struct tags plus the GSTIN/state consistency rule.
func (c *CorporateCompany) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if len(c.GSTIN) >= 2 && c.StateCode != "" && c.GSTIN[:2] != c.StateCode {
		return fmt.Errorf("GSTIN state prefix %s does not match state code %s", c.GSTIN[:2], c.StateCode)
	}
	return nil
}
