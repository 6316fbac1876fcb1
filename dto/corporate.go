package dto

type CreateCompanyRequest struct {
	Name           string  `json:"name" binding:"required"`
	GSTIN          string  `json:"gstin" binding:"required"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	BillingAddress string  `json:"billingAddress"`
	StateCode      string  `json:"stateCode" binding:"required"`
	CreditLimit    float64 `json:"creditLimit"`
	PaymentTerms   int     `json:"paymentTerms"`
}

type UpdateCompanyRequest struct {
	ID             uint    `json:"id" binding:"required"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	BillingAddress string  `json:"billingAddress"`
	CreditLimit    float64 `json:"creditLimit"`
	PaymentTerms   int     `json:"paymentTerms"`
}

type RegisterCorporateAccountRequest struct {
	GuestID   uint `json:"guestId" binding:"required"`
	CompanyID uint `json:"companyId" binding:"required"`
}

type DecideCorporateAccountRequest struct {
	GuestID uint   `json:"guestId" binding:"required"`
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

type CompanyResponse struct {
	ID              uint    `json:"id"`
	Name            string  `json:"name"`
	GSTIN           string  `json:"gstin"`
	StateCode       string  `json:"stateCode"`
	CreditLimit     float64 `json:"creditLimit"`
	CreditUsed      float64 `json:"creditUsed"`
	CreditAvailable float64 `json:"creditAvailable"`
	PaymentTerms    int     `json:"paymentTerms"`
	Status          int     `json:"status"`
	PendingAccounts int     `json:"pendingAccounts"`
}

// GSTCalcRequest is the input of POST /corporate/gst/calculate.
type GSTCalcRequest struct {
	CompanyID uint    `json:"companyId" binding:"required"`
	Tariff    float64 `json:"tariff" binding:"required"` // declared tariff per room night
	Nights    int     `json:"nights" binding:"required"`
	Rooms     int     `json:"rooms" binding:"required"`
	Discount  float64 `json:"discount"`
}

type GSTCalcResponse struct {
	TaxableValue  float64 `json:"taxableValue"`
	Rate          float64 `json:"rate"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
	TotalTax      float64 `json:"totalTax"`
	Total         float64 `json:"total"`
	Interstate    bool    `json:"interstate"`
	PlaceOfSupply string  `json:"placeOfSupply"`
}
