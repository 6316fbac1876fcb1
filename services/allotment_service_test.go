package services

import (
	"testing"

	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
)

func TestBuildChannels(t *testing.T) {
	inputs := []dto.ChannelInput{
		{Name: "Direct", Kind: "direct", Allocated: 4, Priority: 1},
		{Name: "MakeMyTrip", Allocated: 3, Priority: 2, CommissionPct: 15, MarkupPct: 10},
		{Name: "Booking.com", Allocated: 3, Priority: 3, CommissionPct: 18},
	}

	channels, err := BuildChannels(inputs, 10)
	if err != nil {
		t.Fatalf("BuildChannels: %v", err)
	}

	if len(channels) != 3 {
		t.Fatalf("got %d channels, want 3", len(channels))
	}
	// Kind defaults to ota when omitted.
	if channels[1].Kind != "ota" {
		t.Fatalf("kind=%q, want ota", channels[1].Kind)
	}
}

func TestBuildChannelsOverAllocated(t *testing.T) {
	inputs := []dto.ChannelInput{
		{Name: "Direct", Kind: "direct", Allocated: 6},
		{Name: "MakeMyTrip", Allocated: 5},
	}

	_, err := BuildChannels(inputs, 10)
	if err == nil {
		t.Fatal("expected over-allocation error")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeOverAllocated {
		t.Fatalf("got %v, want %s", err, errors.ErrCodeOverAllocated)
	}
}

func TestBuildChannelsDuplicateName(t *testing.T) {
	inputs := []dto.ChannelInput{
		{Name: "MakeMyTrip", Allocated: 2},
		{Name: "MakeMyTrip", Allocated: 2},
	}

	_, err := BuildChannels(inputs, 10)
	if err == nil {
		t.Fatal("expected duplicate-name error")
	}
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Code != errors.ErrCodeChannelConflict {
		t.Fatalf("got %v, want %s", err, errors.ErrCodeChannelConflict)
	}
}

func TestBuildChannelsInvalidCommission(t *testing.T) {
	inputs := []dto.ChannelInput{
		{Name: "MakeMyTrip", Allocated: 2, CommissionPct: 120},
	}

	if _, err := BuildChannels(inputs, 10); err == nil {
		t.Fatal("expected commission validation error")
	}
}

func TestBuildChannelsEmpty(t *testing.T) {
	if _, err := BuildChannels(nil, 10); err == nil {
		t.Fatal("expected error for empty channel list")
	}
}

func TestChannelRates(t *testing.T) {
	allotment := &models.Allotment{
		Channels: []models.AllotmentChannel{
			{Name: "Direct", Kind: "direct", Allocated: 4, Priority: 1},
			{Name: "MakeMyTrip", Kind: "ota", Allocated: 3, Priority: 2, CommissionPct: 15, MarkupPct: 10},
		},
	}

	rates := ChannelRates(allotment, 4000)
	if len(rates) != 2 {
		t.Fatalf("got %d rates, want 2", len(rates))
	}

	if rates[0].SellRate != 4000 {
		t.Fatalf("direct sell=%v, want 4000", rates[0].SellRate)
	}
	if rates[0].NetRate != 4000 {
		t.Fatalf("direct net=%v, want 4000", rates[0].NetRate)
	}

	// 4000 * 1.10 = 4400 sell, minus 15% commission = 3740 net.
	if rates[1].SellRate != 4400 {
		t.Fatalf("ota sell=%v, want 4400", rates[1].SellRate)
	}
	if rates[1].NetRate != 3740 {
		t.Fatalf("ota net=%v, want 3740", rates[1].NetRate)
	}
}

func TestAllotmentAllocated(t *testing.T) {
	allotment := models.Allotment{
		TotalUnits: 10,
		Channels: []models.AllotmentChannel{
			{Allocated: 4},
			{Allocated: 3},
		},
	}

	if got := allotment.Allocated(); got != 7 {
		t.Fatalf("Allocated()=%d, want 7", got)
	}
}
