package dto

type CreateGuestRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone" binding:"required"`
	Gender        int    `json:"gender"`
	DateOfBirth   string `json:"dateOfBirth"`
	Address       string `json:"address"`
	City          string `json:"city"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`
	Notes         string `json:"notes"`
}

type UpdateGuestRequest struct {
	ID            uint   `json:"id" binding:"required"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`
	Notes         string `json:"notes"`
}

type GuestResponse struct {
	ID                 uint   `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	City               string `json:"city"`
	Status             int    `json:"status"`
	StayCount          int    `json:"stayCount"`
	Avatar             string `json:"avatar"`
	CorporateCompanyID *uint  `json:"corporateCompanyId,omitempty"`
	CorporateStatus    int    `json:"corporateStatus,omitempty"`
}

// GuestSearchFilters are the console's last-used guest list filters,
// remembered per session.
type GuestSearchFilters struct {
	Name      string `json:"name,omitempty"`
	City      string `json:"city,omitempty"`
	Status    *int   `json:"status,omitempty"`
	CompanyID *uint  `json:"companyId,omitempty"`
	Corporate *bool  `json:"corporate,omitempty"`
}

// ScoredGuest carries a fuzzy-search relevance score for ranking.
type ScoredGuest struct {
	Guest GuestResponse `json:"guest"`
	Score int           `json:"score"`
}
