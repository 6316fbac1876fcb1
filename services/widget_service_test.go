package services

import (
	"testing"

	"pentouz/models"
)

func TestComputeWidgetStats(t *testing.T) {
	widget := &models.Widget{
		ID:          1,
		Name:        "homepage",
		Impressions: 1000,
		Clicks:      50,
		Conversions: 5,
	}

	stats := ComputeWidgetStats(widget)

	if stats.CTR != 5 {
		t.Fatalf("ctr=%v, want 5", stats.CTR)
	}
	if stats.ConversionRate != 10 {
		t.Fatalf("conversionRate=%v, want 10", stats.ConversionRate)
	}
}

func TestComputeWidgetStatsZeroImpressions(t *testing.T) {
	widget := &models.Widget{ID: 1, Clicks: 0, Conversions: 0}

	stats := ComputeWidgetStats(widget)

	if stats.CTR != 0 {
		t.Fatalf("ctr=%v, want 0 with no impressions", stats.CTR)
	}
	if stats.ConversionRate != 0 {
		t.Fatalf("conversionRate=%v, want 0 with no clicks", stats.ConversionRate)
	}
}

func TestComputeWidgetStatsZeroClicks(t *testing.T) {
	widget := &models.Widget{ID: 1, Impressions: 200}

	stats := ComputeWidgetStats(widget)

	if stats.CTR != 0 {
		t.Fatalf("ctr=%v, want 0", stats.CTR)
	}
	if stats.ConversionRate != 0 {
		t.Fatalf("conversionRate=%v, want 0 with no clicks", stats.ConversionRate)
	}
}

func TestComputeWidgetStatsRounding(t *testing.T) {
	widget := &models.Widget{ID: 1, Impressions: 3, Clicks: 1, Conversions: 1}

	stats := ComputeWidgetStats(widget)

	if stats.CTR != 33.33 {
		t.Fatalf("ctr=%v, want 33.33", stats.CTR)
	}
	if stats.ConversionRate != 100 {
		t.Fatalf("conversionRate=%v, want 100", stats.ConversionRate)
	}
}
