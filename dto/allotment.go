package dto

type ChannelInput struct {
	Name          string  `json:"name" binding:"required"`
	Kind          string  `json:"kind"`
	Allocated     int     `json:"allocated"`
	Priority      int     `json:"priority"`
	CommissionPct float64 `json:"commissionPct"`
	MarkupPct     float64 `json:"markupPct"`
	StopSell      bool    `json:"stopSell"`
}

type UpsertAllotmentRequest struct {
	RoomTypeID  uint           `json:"roomTypeId" binding:"required"`
	TotalUnits  int            `json:"totalUnits"`
	ReleaseDays int            `json:"releaseDays"`
	Channels    []ChannelInput `json:"channels" binding:"required"`
}

type ChannelRateResponse struct {
	Channel   string  `json:"channel"`
	SellRate  float64 `json:"sellRate"`
	NetRate   float64 `json:"netRate"` // after commission
	StopSell  bool    `json:"stopSell"`
	Allocated int     `json:"allocated"`
	Priority  int     `json:"priority"`
}
