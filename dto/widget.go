package dto

import "encoding/json"

type CreateWidgetRequest struct {
	Name       string          `json:"name" binding:"required"`
	TargetPage string          `json:"targetPage"`
	Theme      json.RawMessage `json:"theme"`
}

type UpdateWidgetRequest struct {
	ID         uint            `json:"id" binding:"required"`
	Name       string          `json:"name"`
	TargetPage string          `json:"targetPage"`
	Theme      json.RawMessage `json:"theme"`
	Active     *bool           `json:"active"`
}

// TrackEventRequest comes from the embedded snippet, unauthenticated.
type TrackEventRequest struct {
	Key   string `json:"key" binding:"required"`
	Event string `json:"event" binding:"required"`
}

type WidgetStatsResponse struct {
	WidgetID       uint    `json:"widgetId"`
	Name           string  `json:"name"`
	Impressions    int64   `json:"impressions"`
	Clicks         int64   `json:"clicks"`
	Conversions    int64   `json:"conversions"`
	CTR            float64 `json:"ctr"`
	ConversionRate float64 `json:"conversionRate"`
}
