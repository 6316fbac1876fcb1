package services

import (
	"time"

	"pentouz/constants"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/validator"

	"gorm.io/gorm"
)

// RegisterCorporateAccount links a guest to a company and puts the account
// into the pending approval state.
func RegisterCorporateAccount(db *gorm.DB, guestID, companyID uint) (*models.Guest, error) {
	var company models.CorporateCompany
	if err := db.First(&company, companyID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeCompanyNotFound, "Company not found", err)
	}

	var guest models.Guest
	if err := db.First(&guest, guestID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Guest not found", err)
	}

	if guest.Status == constants.GuestBlacklisted {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Blacklisted guests cannot register as corporate accounts", nil)
	}

	guest.CorporateCompanyID = &companyID
	guest.CorporateStatus = constants.CorporateStatusPending
	guest.ApprovedBy = nil
	guest.DecidedAt = nil
	guest.RejectReason = ""

	if err := db.Save(&guest).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot register corporate account", err)
	}
	return &guest, nil
}

// DecideCorporateAccount approves or rejects a pending corporate account.
// Only pending accounts can be decided; rejecting requires a reason.
func DecideCorporateAccount(db *gorm.DB, req dto.DecideCorporateAccountRequest, deciderID uint) (*models.Guest, error) {
	var guest models.Guest
	if err := db.First(&guest, req.GuestID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Guest not found", err)
	}

	if !guest.IsCorporate() || guest.CorporateStatus != constants.CorporateStatusPending {
		return nil, errors.NewAppError(errors.ErrCodeInvalidStatus, "Account is not pending approval", nil)
	}

	now := time.Now()
	guest.ApprovedBy = &deciderID
	guest.DecidedAt = &now

	if req.Approve {
		guest.CorporateStatus = constants.CorporateStatusApproved
	} else {
		if req.Reason == "" {
			return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Reject reason must not be empty", nil)
		}
		guest.CorporateStatus = constants.CorporateStatusRejected
		guest.RejectReason = req.Reason
	}

	if err := db.Save(&guest).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot update account", err)
	}
	return &guest, nil
}

// CanCharge reports whether a charge fits into the company's remaining credit.
func CanCharge(company *models.CorporateCompany, amount float64) bool {
	if amount <= 0 {
		return false
	}
	return amount <= company.CreditAvailable()
}

// ChargeCompanyCredit consumes company credit inside a transaction.
func ChargeCompanyCredit(db *gorm.DB, companyID uint, amount float64) (*models.CorporateCompany, error) {
	var company models.CorporateCompany

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&company, companyID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeCompanyNotFound, "Company not found", err)
		}

		if !CanCharge(&company, amount) {
			return errors.NewAppError(errors.ErrCodeCreditExceeded, "Charge exceeds the available credit", nil)
		}

		company.CreditUsed = Round2(company.CreditUsed + amount)
		return tx.Save(&company).Error
	})
	if err != nil {
		return nil, err
	}

	return &company, nil
}

// ReleaseCompanyCredit gives settled credit back to the company.
func ReleaseCompanyCredit(db *gorm.DB, companyID uint, amount float64) error {
	if amount <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Amount must be positive", nil)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var company models.CorporateCompany
		if err := tx.First(&company, companyID).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeCompanyNotFound, "Company not found", err)
		}

		company.CreditUsed = Round2(company.CreditUsed - amount)
		if company.CreditUsed < 0 {
			company.CreditUsed = 0
		}
		return tx.Save(&company).Error
	})
}

// CreateCompany validates and persists a corporate company.
func CreateCompany(db *gorm.DB, req dto.CreateCompanyRequest) (*models.CorporateCompany, error) {
	company := models.CorporateCompany{
		Name:           req.Name,
		GSTIN:          req.GSTIN,
		Email:          req.Email,
		Phone:          req.Phone,
		BillingAddress: req.BillingAddress,
		StateCode:      req.StateCode,
		CreditLimit:    req.CreditLimit,
		PaymentTerms:   req.PaymentTerms,
		Status:         constants.StatusActive,
	}
	if company.PaymentTerms == 0 {
		company.PaymentTerms = 30
	}

	if err := validator.ValidateCompany(&company); err != nil {
		return nil, err
	}

	var count int64
	db.Model(&models.CorporateCompany{}).Where("gstin = ?", company.GSTIN).Count(&count)
	if count > 0 {
		return nil, errors.NewAppError(errors.ErrCodeCompanyExists, "A company with this GSTIN already exists", nil)
	}

	if err := db.Create(&company).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot create company", err)
	}
	return &company, nil
}
