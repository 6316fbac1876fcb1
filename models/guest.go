package models

import (
	"time"
)

type Guest struct {
	ID                 uint       `json:"id" gorm:"primaryKey"`
	CreatedAt          time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name               string     `json:"name" gorm:"not null"`
	Email              string     `json:"email" gorm:"index"`
	Phone              string     `json:"phone" gorm:"index"`
	Gender             int        `json:"gender"`
	DateOfBirth        string     `json:"dateOfBirth"`
	Address            string     `json:"address"`
	City               string     `json:"city"`
	IDProofType        string     `json:"idProofType"` // passport, aadhaar, driving_license
	IDProofNumber      string     `json:"idProofNumber"`
	Avatar             string     `json:"avatar"`
	Status             int        `json:"status" gorm:"default:1"` // 0 inactive, 1 active, 2 blacklisted
	StayCount          int        `json:"stayCount" gorm:"default:0"`
	LastStayAt         *time.Time `json:"lastStayAt,omitempty"`
	Notes              string     `json:"notes"`
	CorporateCompanyID *uint      `json:"corporateCompanyId,omitempty" gorm:"index"`
	CorporateCompany   *CorporateCompany `json:"corporateCompany,omitempty" gorm:"foreignKey:CorporateCompanyID"`
	CorporateStatus    int        `json:"corporateStatus" gorm:"default:0"` // pending/approved/rejected, only meaningful for corporate accounts
	ApprovedBy         *uint      `json:"approvedBy,omitempty"`
	DecidedAt          *time.Time `json:"decidedAt,omitempty"`
	RejectReason       string     `json:"rejectReason,omitempty"`
}

// IsCorporate reports whether the guest belongs to a corporate company.
func (g *Guest) IsCorporate() bool {
	return g.CorporateCompanyID != nil
}
