package services

import (
	"fmt"
	"math"
	"os"
	"time"

	"pentouz/builders"
	"pentouz/config"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"

	"gorm.io/gorm"
)

const gstSlabsCacheKey = "gst:slabs"

// DefaultGSTSlabs are the seeded Indian hotel accommodation rates.
func DefaultGSTSlabs() []models.GSTSlab {
	return []models.GSTSlab{
		{MinTariff: 0, MaxTariff: 1000, Rate: 12, Active: true},
		{MinTariff: 1000, MaxTariff: 7500, Rate: 12, Active: true},
		{MinTariff: 7500, MaxTariff: 0, Rate: 18, Active: true},
	}
}

// RateForTariff picks the GST rate for a declared tariff per night.
// A slab with MaxTariff 0 is open-ended.
func RateForTariff(slabs []models.GSTSlab, tariff float64) (float64, error) {
	if tariff < 0 {
		return 0, errors.NewAppError(errors.ErrCodeInvalidTariff, "Tariff must not be negative", nil)
	}
	for _, slab := range slabs {
		if !slab.Active {
			continue
		}
		if tariff >= slab.MinTariff && (slab.MaxTariff == 0 || tariff <= slab.MaxTariff) {
			return slab.Rate, nil
		}
	}
	return 0, errors.NewAppError(errors.ErrCodeInvalidTariff, fmt.Sprintf("No GST slab covers tariff %.2f", tariff), nil)
}

// CalculateGST computes the tax breakup for a corporate stay. Intrastate
// supplies split the rate evenly into CGST and SGST; interstate supplies
// charge the full rate as IGST. Amounts are rounded to 2 decimals.
func CalculateGST(tariff float64, nights, rooms int, discount, rate float64, interstate bool) (dto.GSTCalcResponse, error) {
	var out dto.GSTCalcResponse

	if nights <= 0 {
		return out, errors.NewAppError(errors.ErrCodeValidation, "Nights must be greater than zero", nil)
	}
	if rooms <= 0 {
		return out, errors.NewAppError(errors.ErrCodeValidation, "Rooms must be greater than zero", nil)
	}
	if discount < 0 {
		return out, errors.NewAppError(errors.ErrCodeInvalidAmount, "Discount must not be negative", nil)
	}

	gross := tariff * float64(nights) * float64(rooms)
	if discount > gross {
		return out, errors.NewAppError(errors.ErrCodeInvalidAmount, "Discount must not exceed the gross amount", nil)
	}

	taxable := Round2(gross - discount)
	totalTax := Round2(taxable * rate / 100)

	out.TaxableValue = taxable
	out.Rate = rate
	out.Interstate = interstate

	if interstate {
		out.IGST = totalTax
	} else {
		half := Round2(taxable * rate / 200)
		out.CGST = half
		out.SGST = half
		totalTax = Round2(out.CGST + out.SGST)
	}

	out.TotalTax = totalTax
	out.Total = Round2(taxable + totalTax)
	return out, nil
}

// Round2 rounds to 2 decimals, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CalculateCorporateGST resolves slabs, hotel state and company state, then
// delegates to CalculateGST. Slabs are cached in Redis.
func CalculateCorporateGST(db *gorm.DB, req dto.GSTCalcRequest) (dto.GSTCalcResponse, error) {
	var out dto.GSTCalcResponse

	var company models.CorporateCompany
	if err := db.First(&company, req.CompanyID).Error; err != nil {
		return out, errors.NewAppError(errors.ErrCodeCompanyNotFound, "Company not found", err)
	}

	hotelState, err := HotelStateCode(db)
	if err != nil {
		return out, err
	}

	slabs, err := loadGSTSlabs(db)
	if err != nil {
		return out, err
	}

	rate, err := RateForTariff(slabs, req.Tariff)
	if err != nil {
		return out, err
	}

	interstate := company.StateCode != hotelState

	out, err = CalculateGST(req.Tariff, req.Nights, req.Rooms, req.Discount, rate, interstate)
	if err != nil {
		return out, err
	}

	// Accommodation is supplied at the hotel, so the place of supply is the
	// hotel state.
	out.PlaceOfSupply = hotelState
	return out, nil
}

// HotelStateCode reads the hotel's GST state from settings, falling back to
// the HOTEL_STATE_CODE environment variable.
func HotelStateCode(db *gorm.DB) (string, error) {
	var setting models.HotelSetting
	if err := db.First(&setting).Error; err == nil && setting.StateCode != "" {
		return setting.StateCode, nil
	}

	code := os.Getenv("HOTEL_STATE_CODE")
	if code == "" {
		return "", errors.NewAppError(errors.ErrCodeInvalidStateCode, "Hotel state code is not configured", nil)
	}
	return code, nil
}

func loadGSTSlabs(db *gorm.DB) ([]models.GSTSlab, error) {
	var slabs []models.GSTSlab

	if config.RedisClient != nil {
		if err := GetFromRedis(config.Ctx, config.RedisClient, gstSlabsCacheKey, &slabs); err == nil && len(slabs) > 0 {
			return slabs, nil
		}
	}

	if err := db.Where("active = ?", true).Order("min_tariff asc").Find(&slabs).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot load GST slabs", err)
	}

	if len(slabs) == 0 {
		slabs = DefaultGSTSlabs()
	}

	if config.RedisClient != nil {
		SetToRedis(config.Ctx, config.RedisClient, gstSlabsCacheKey, slabs, 60*time.Minute)
	}

	return slabs, nil
}

// RaiseTaxInvoice persists a GST invoice for a calculated charge, numbered
// sequentially within the Indian financial year.
func RaiseTaxInvoice(db *gorm.DB, companyID uint, calc dto.GSTCalcResponse, createdBy uint) (*models.TaxInvoice, error) {
	now := time.Now()

	var seq int64
	fyPrefix := fmt.Sprintf("INV/%s/", builders.FinancialYear(now))
	if err := db.Model(&models.TaxInvoice{}).Where("invoice_no LIKE ?", fyPrefix+"%").Count(&seq).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot number invoice", err)
	}

	builder := builders.NewInvoiceBuilder().
		WithCompany(companyID).
		WithTaxableValue(calc.TaxableValue).
		WithPlaceOfSupply(calc.PlaceOfSupply).
		WithCreator(createdBy).
		WithSequence(now, seq+1)

	if calc.Interstate {
		builder.WithInterstate(calc.IGST)
	} else {
		builder.WithIntrastate(calc.CGST, calc.SGST)
	}

	invoice := builder.Build()
	if err := db.Create(invoice).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot create invoice", err)
	}
	return invoice, nil
}
