package services

import (
	"pentouz/dto"
	"pentouz/models"
	"pentouz/services/logger"
	"pentouz/services/notification"

	"gorm.io/gorm"
)

// BillingFacade runs the corporate charge flow end to end: GST calculation,
// credit check, invoice, realtime event.
type BillingFacade struct {
	db       *gorm.DB
	logger   logger.Logger
	notifier notification.Service
}

// NewBillingFacade creates a new BillingFacade
func NewBillingFacade(db *gorm.DB, log logger.Logger, notifier notification.Service) *BillingFacade {
	return &BillingFacade{
		db:       db,
		logger:   log,
		notifier: notifier,
	}
}

// ChargeCorporateStay calculates GST for the stay, consumes company credit
// for the grand total and raises a numbered tax invoice.
func (f *BillingFacade) ChargeCorporateStay(req dto.GSTCalcRequest, actorID uint) (*models.TaxInvoice, dto.GSTCalcResponse, error) {
	calc, err := CalculateCorporateGST(f.db, req)
	if err != nil {
		return nil, calc, err
	}

	if _, err := ChargeCompanyCredit(f.db, req.CompanyID, calc.Total); err != nil {
		return nil, calc, err
	}

	invoice, err := RaiseTaxInvoice(f.db, req.CompanyID, calc, actorID)
	if err != nil {
		// Put the credit back, the charge did not go through.
		if relErr := ReleaseCompanyCredit(f.db, req.CompanyID, calc.Total); relErr != nil {
			f.logger.Error("failed to release credit after invoice error: %v", relErr)
		}
		return nil, calc, err
	}

	if f.notifier != nil {
		msg := notification.NewEventBuilder("corporate.invoiced").
			WithPayload(map[string]interface{}{
				"companyId": req.CompanyID,
				"invoiceNo": invoice.InvoiceNo,
				"total":     invoice.Total,
			}).Build()
		if err := f.notifier.SendMessage(msg); err != nil {
			f.logger.Error("failed to broadcast invoice event: %v", err)
		}
	}

	return invoice, calc, nil
}
