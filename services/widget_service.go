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

// TrackWidgetEvent increments the matching counter of an active widget.
func TrackWidgetEvent(db *gorm.DB, key, event string) error {
	if err := validator.ValidateWidgetEvent(event); err != nil {
		return err
	}

	var widget models.Widget
	if err := db.Where("key = ?", key).First(&widget).Error; err != nil {
		return errors.NewAppError(errors.ErrCodeWidgetNotFound, "Widget not found", err)
	}

	if !widget.Active {
		return errors.NewAppError(errors.ErrCodeWidgetInactive, "Widget is inactive", nil)
	}

	column := map[string]string{
		constants.WidgetEventImpression: "impressions",
		constants.WidgetEventClick:      "clicks",
		constants.WidgetEventConversion: "conversions",
	}[event]

	return db.Model(&widget).Update(column, gorm.Expr(column+" + 1")).Error
}

// ComputeWidgetStats derives CTR and conversion rate from raw counters.
// Rates are 0 when the denominator is 0.
func ComputeWidgetStats(widget *models.Widget) dto.WidgetStatsResponse {
	stats := dto.WidgetStatsResponse{
		WidgetID:    widget.ID,
		Name:        widget.Name,
		Impressions: widget.Impressions,
		Clicks:      widget.Clicks,
		Conversions: widget.Conversions,
	}

	if widget.Impressions > 0 {
		stats.CTR = Round2(float64(widget.Clicks) / float64(widget.Impressions) * 100)
	}
	if widget.Clicks > 0 {
		stats.ConversionRate = Round2(float64(widget.Conversions) / float64(widget.Clicks) * 100)
	}

	return stats
}

// WidgetStatsRange sums the daily rollups of a widget over [from, to].
func WidgetStatsRange(db *gorm.DB, widgetID uint, from, to string) (dto.WidgetStatsResponse, error) {
	var widget models.Widget
	if err := db.First(&widget, widgetID).Error; err != nil {
		return dto.WidgetStatsResponse{}, errors.NewAppError(errors.ErrCodeWidgetNotFound, "Widget not found", err)
	}

	var sums struct {
		Impressions int64
		Clicks      int64
		Conversions int64
	}
	err := db.Model(&models.WidgetStat{}).
		Where("widget_id = ? AND date >= ? AND date <= ?", widgetID, from, to).
		Select("COALESCE(SUM(impressions),0) as impressions, COALESCE(SUM(clicks),0) as clicks, COALESCE(SUM(conversions),0) as conversions").
		Scan(&sums).Error
	if err != nil {
		return dto.WidgetStatsResponse{}, err
	}

	ranged := models.Widget{
		ID:          widget.ID,
		Name:        widget.Name,
		Impressions: sums.Impressions,
		Clicks:      sums.Clicks,
		Conversions: sums.Conversions,
	}
	return ComputeWidgetStats(&ranged), nil
}

// RollupWidgetStats writes yesterday's deltas into daily WidgetStat rows.
// The delta is the live counters minus everything already rolled up.
func RollupWidgetStats(db *gorm.DB, day time.Time) error {
	date := day.Format("2006-01-02")

	var widgets []models.Widget
	if err := db.Find(&widgets).Error; err != nil {
		return err
	}

	for _, w := range widgets {
		var sums struct {
			Impressions int64
			Clicks      int64
			Conversions int64
		}
		if err := db.Model(&models.WidgetStat{}).
			Where("widget_id = ?", w.ID).
			Select("COALESCE(SUM(impressions),0) as impressions, COALESCE(SUM(clicks),0) as clicks, COALESCE(SUM(conversions),0) as conversions").
			Scan(&sums).Error; err != nil {
			return err
		}

		stat := models.WidgetStat{
			WidgetID:    w.ID,
			Date:        date,
			Impressions: w.Impressions - sums.Impressions,
			Clicks:      w.Clicks - sums.Clicks,
			Conversions: w.Conversions - sums.Conversions,
		}

		if stat.Impressions == 0 && stat.Clicks == 0 && stat.Conversions == 0 {
			continue
		}

		if err := db.Where("widget_id = ? AND date = ?", w.ID, date).
			Assign(stat).FirstOrCreate(&models.WidgetStat{}).Error; err != nil {
			return err
		}
	}

	return nil
}
