package controllers

import (
	"strconv"

	"pentouz/config"
	"pentouz/constants"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/response"
	"pentouz/services"
	"pentouz/services/logger"
	"pentouz/services/notification"
	"pentouz/types"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// CorporateController carries the billing facade dependencies.
type CorporateController struct {
	facade *services.BillingFacade
}

func NewCorporateController(m *melody.Melody) *CorporateController {
	return &CorporateController{
		facade: services.NewBillingFacade(
			config.DB,
			logger.NewDefaultLogger(logger.InfoLevel),
			notification.NewMelodyService(m),
		),
	}
}

// GetCompanies lists corporate companies with pending-account counts
func GetCompanies(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.CorporateCompany{})
	if nameFilter := c.Query("name"); nameFilter != "" {
		tx = tx.Where("name ILIKE ?", "%"+nameFilter+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var companies []models.CorporateCompany
	if err := tx.Order("name").Offset(page * limit).Limit(limit).Find(&companies).Error; err != nil {
		response.ServerError(c)
		return
	}

	companyResponses := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		company := &companies[i]

		var pending int64
		config.DB.Model(&models.Guest{}).
			Where("corporate_company_id = ? AND corporate_status = ?", company.ID, constants.CorporateStatusPending).
			Count(&pending)

		companyResponses = append(companyResponses, dto.CompanyResponse{
			ID:              company.ID,
			Name:            company.Name,
			GSTIN:           company.GSTIN,
			StateCode:       company.StateCode,
			CreditLimit:     company.CreditLimit,
			CreditUsed:      company.CreditUsed,
			CreditAvailable: company.CreditAvailable(),
			PaymentTerms:    company.PaymentTerms,
			Status:          company.Status,
			PendingAccounts: int(pending),
		})
	}

	response.SuccessWithPagination(c, companyResponses, page, limit, int(total))
}

// CreateCompany registers a corporate company
func CreateCompany(c *gin.Context) {
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid company payload")
		return
	}

	company, err := services.CreateCompany(config.DB, req)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, company)
}

// GetCompanyDetail returns a company with its corporate accounts
func GetCompanyDetail(c *gin.Context) {
	id := c.Param("id")

	var company models.CorporateCompany
	if err := config.DB.Preload("Accounts").First(&company, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, company)
}

// UpdateCompany updates company billing fields
func UpdateCompany(c *gin.Context) {
	var req dto.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid company payload")
		return
	}

	var company models.CorporateCompany
	if err := config.DB.First(&company, req.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if req.Name != "" {
		company.Name = req.Name
	}
	if req.Email != "" {
		company.Email = req.Email
	}
	if req.Phone != "" {
		company.Phone = req.Phone
	}
	if req.BillingAddress != "" {
		company.BillingAddress = req.BillingAddress
	}
	if req.CreditLimit > 0 {
		company.CreditLimit = req.CreditLimit
	}
	if req.PaymentTerms > 0 {
		company.PaymentTerms = req.PaymentTerms
	}

	if err := config.DB.Save(&company).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, company)
}

// RegisterCorporateAccount links a guest to a company, pending approval
func RegisterCorporateAccount(c *gin.Context) {
	var req dto.RegisterCorporateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	guest, err := services.RegisterCorporateAccount(config.DB, req.GuestID, req.CompanyID)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	invalidateGuestCache()

	response.Success(c, guest)
}

// GetPendingCorporateAccounts lists accounts awaiting a decision
func GetPendingCorporateAccounts(c *gin.Context) {
	var guests []models.Guest
	err := config.DB.Preload("CorporateCompany").
		Where("corporate_company_id IS NOT NULL AND corporate_status = ?", constants.CorporateStatusPending).
		Order("updated_at").
		Find(&guests).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, guests, len(guests))
}

// DecideCorporateAccount approves or rejects a pending corporate account
func DecideCorporateAccount(c *gin.Context) {
	var req dto.DecideCorporateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	deciderID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	guest, err := services.DecideCorporateAccount(config.DB, req, deciderID.(uint))
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	invalidateGuestCache()

	response.Success(c, guest)
}

// CalculateGST godoc
// @Summary Calculate the GST breakup for a corporate stay
// @Tags corporate
// @Accept json
// @Produce json
// @Param body body dto.GSTCalcRequest true "stay"
// @Success 200 {object} response.Response
// @Router /corporate/gst/calculate [post]
func CalculateGST(c *gin.Context) {
	var req dto.GSTCalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid GST payload")
		return
	}

	calc, err := services.CalculateCorporateGST(config.DB, req)
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, calc)
}

// ChargeCorporateStay runs the full billing flow: GST, credit, invoice
func (ctl *CorporateController) ChargeCorporateStay(c *gin.Context) {
	var req dto.GSTCalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid charge payload")
		return
	}

	actorID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	invoice, calc, err := ctl.facade.ChargeCorporateStay(req, actorID.(uint))
	if err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"invoice": invoice,
		"gst":     calc,
	})
}

// GetInvoices lists tax invoices, optionally for one company
func GetInvoices(c *gin.Context) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	tx := config.DB.Model(&models.TaxInvoice{})
	if companyID := c.Query("companyId"); companyID != "" {
		tx = tx.Where("company_id = ?", companyID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var invoices []models.TaxInvoice
	if err := tx.Preload("Company").Order("created_at desc").Offset(page * limit).Limit(limit).Find(&invoices).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, invoices, page, limit, int(total))
}

// GetDetailInvoice returns one tax invoice with a trimmed company block
func GetDetailInvoice(c *gin.Context) {
	id := c.Param("id")

	var invoice models.TaxInvoice
	if err := config.DB.Preload("Company").First(&invoice, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var company types.InvoiceCompanyResponse
	if invoice.Company != nil {
		company = types.InvoiceCompanyResponse{
			ID:    invoice.Company.ID,
			Name:  invoice.Company.Name,
			GSTIN: invoice.Company.GSTIN,
			State: invoice.Company.StateCode,
		}
	}

	response.Success(c, gin.H{
		"invoice": invoice,
		"company": company,
	})
}
