package types

// InvoiceCompanyResponse is the company block embedded in invoice responses
type InvoiceCompanyResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	GSTIN string `json:"gstin"`
	State string `json:"state"`
}
