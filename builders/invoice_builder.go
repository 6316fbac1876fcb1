package builders

import (
	"fmt"
	"time"

	"pentouz/models"
)

// InvoiceBuilder assembles a tax invoice step by step
type InvoiceBuilder struct {
	invoice *models.TaxInvoice
}

// NewInvoiceBuilder creates a new InvoiceBuilder
func NewInvoiceBuilder() *InvoiceBuilder {
	return &InvoiceBuilder{
		invoice: &models.TaxInvoice{},
	}
}

// WithCompany sets the billed company
func (b *InvoiceBuilder) WithCompany(companyID uint) *InvoiceBuilder {
	b.invoice.CompanyID = companyID
	return b
}

// WithTaxableValue sets the taxable value
func (b *InvoiceBuilder) WithTaxableValue(value float64) *InvoiceBuilder {
	b.invoice.TaxableValue = value
	return b
}

// WithIntrastate sets CGST/SGST amounts for an intrastate supply
func (b *InvoiceBuilder) WithIntrastate(cgst, sgst float64) *InvoiceBuilder {
	b.invoice.CGST = cgst
	b.invoice.SGST = sgst
	b.invoice.IGST = 0
	b.invoice.Interstate = false
	return b
}

// WithInterstate sets the IGST amount for an interstate supply
func (b *InvoiceBuilder) WithInterstate(igst float64) *InvoiceBuilder {
	b.invoice.IGST = igst
	b.invoice.CGST = 0
	b.invoice.SGST = 0
	b.invoice.Interstate = true
	return b
}

// WithPlaceOfSupply sets the place-of-supply state code
func (b *InvoiceBuilder) WithPlaceOfSupply(stateCode string) *InvoiceBuilder {
	b.invoice.PlaceOfSupply = stateCode
	return b
}

// WithCreator sets the staff member who raised the invoice
func (b *InvoiceBuilder) WithCreator(userID uint) *InvoiceBuilder {
	b.invoice.CreatedBy = userID
	return b
}

// WithSequence stamps the invoice number for the given financial year
func (b *InvoiceBuilder) WithSequence(at time.Time, seq int64) *InvoiceBuilder {
	b.invoice.InvoiceNo = fmt.Sprintf("INV/%s/%05d", FinancialYear(at), seq)
	return b
}

// Build computes the total and returns the invoice
func (b *InvoiceBuilder) Build() *models.TaxInvoice {
	b.invoice.Total = b.invoice.TaxableValue + b.invoice.CGST + b.invoice.SGST + b.invoice.IGST
	return b.invoice
}

// FinancialYear formats the Indian financial year (Apr-Mar) label, e.g. 24-25.
func FinancialYear(at time.Time) string {
	year := at.Year()
	if at.Month() < time.April {
		year--
	}
	return fmt.Sprintf("%02d-%02d", year%100, (year+1)%100)
}
