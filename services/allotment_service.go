package services

import (
	"time"

	"pentouz/constants"
	"pentouz/dto"
	"pentouz/errors"
	"pentouz/models"
	"pentouz/services/notification"
	"pentouz/validator"

	"gorm.io/gorm"
)

// BuildChannels validates channel input and converts it to models.
func BuildChannels(inputs []dto.ChannelInput, totalUnits int) ([]models.AllotmentChannel, error) {
	if len(inputs) == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "At least one channel is required", nil)
	}

	channels := make([]models.AllotmentChannel, 0, len(inputs))
	seen := make(map[string]bool)
	allocated := 0

	for _, in := range inputs {
		kind := in.Kind
		if kind == "" {
			kind = constants.ChannelOTA
		}

		ch := models.AllotmentChannel{
			Name:          in.Name,
			Kind:          kind,
			Allocated:     in.Allocated,
			Priority:      in.Priority,
			CommissionPct: in.CommissionPct,
			MarkupPct:     in.MarkupPct,
			StopSell:      in.StopSell,
		}

		if err := validator.ValidateChannel(&ch); err != nil {
			return nil, err
		}

		if seen[ch.Name] {
			return nil, errors.NewAppError(errors.ErrCodeChannelConflict, "Duplicate channel name: "+ch.Name, nil)
		}
		seen[ch.Name] = true

		allocated += ch.Allocated
		channels = append(channels, ch)
	}

	if allocated > totalUnits {
		return nil, errors.NewAppError(errors.ErrCodeOverAllocated, "Channel allocations exceed the room-type units", nil)
	}

	return channels, nil
}

// UpsertAllotment creates or replaces the allotment of a room type.
func UpsertAllotment(db *gorm.DB, req dto.UpsertAllotmentRequest) (*models.Allotment, error) {
	var roomType models.RoomType
	if err := db.First(&roomType, req.RoomTypeID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Room type not found", err)
	}

	totalUnits := req.TotalUnits
	if totalUnits == 0 {
		totalUnits = roomType.TotalUnits
	}

	channels, err := BuildChannels(req.Channels, totalUnits)
	if err != nil {
		return nil, err
	}

	releaseDays := req.ReleaseDays
	if releaseDays == 0 {
		releaseDays = 3
	}

	var allotment models.Allotment
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_type_id = ?", req.RoomTypeID).First(&allotment).Error; err == nil {
			if err := tx.Where("allotment_id = ?", allotment.ID).Delete(&models.AllotmentChannel{}).Error; err != nil {
				return err
			}
			allotment.TotalUnits = totalUnits
			allotment.ReleaseDays = releaseDays
			allotment.Channels = channels
			return tx.Save(&allotment).Error
		}

		allotment = models.Allotment{
			RoomTypeID:  req.RoomTypeID,
			TotalUnits:  totalUnits,
			ReleaseDays: releaseDays,
			Channels:    channels,
		}
		return tx.Create(&allotment).Error
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Cannot save allotment", err)
	}

	return &allotment, nil
}

// ChannelRates computes per-channel sell and net rates for the console.
func ChannelRates(allotment *models.Allotment, baseRate float64) []dto.ChannelRateResponse {
	rates := make([]dto.ChannelRateResponse, 0, len(allotment.Channels))
	for _, ch := range allotment.Channels {
		sell := Round2(ch.SellRate(baseRate))
		net := Round2(sell * (1 - ch.CommissionPct/100))
		rates = append(rates, dto.ChannelRateResponse{
			Channel:   ch.Name,
			SellRate:  sell,
			NetRate:   net,
			StopSell:  ch.StopSell,
			Allocated: ch.Allocated,
			Priority:  ch.Priority,
		})
	}
	return rates
}

// ReleaseDueAllotments moves unreleased OTA blocks back to the direct channel
// once inside the release window. Used by the nightly cron.
func ReleaseDueAllotments(db *gorm.DB, notifier notification.Service) (int, error) {
	var allotments []models.Allotment
	if err := db.Preload("Channels").Find(&allotments).Error; err != nil {
		return 0, err
	}

	released := 0
	now := time.Now()

	for i := range allotments {
		a := &allotments[i]

		var direct *models.AllotmentChannel
		for j := range a.Channels {
			if a.Channels[j].Kind == constants.ChannelDirect {
				direct = &a.Channels[j]
				break
			}
		}
		if direct == nil {
			continue
		}

		for j := range a.Channels {
			ch := &a.Channels[j]
			if ch.Kind != constants.ChannelOTA || ch.Allocated == 0 || ch.ReleasedAt != nil {
				continue
			}
			// Release window measured from the channel's last update.
			if now.Sub(ch.UpdatedAt) < time.Duration(a.ReleaseDays)*24*time.Hour {
				continue
			}

			moved := ch.Allocated
			direct.Allocated += moved
			ch.Allocated = 0
			ch.ReleasedAt = &now

			if err := db.Save(ch).Error; err != nil {
				return released, err
			}
			if err := db.Save(direct).Error; err != nil {
				return released, err
			}

			released += moved

			if notifier != nil {
				msg := notification.NewEventBuilder("allotment.released").
					WithPayload(map[string]interface{}{
						"roomTypeId": a.RoomTypeID,
						"channel":    ch.Name,
						"units":      moved,
					}).Build()
				notifier.SendMessage(msg)
			}
		}
	}

	return released, nil
}
