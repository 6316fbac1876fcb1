package constants

// Staff roles
const (
	RoleAdmin   = 1
	RoleManager = 2
	RoleStaff   = 3
)

// Staff / guest status
const (
	StatusInactive   = 0
	StatusActive     = 1
	GuestBlacklisted = 2
)

// Corporate account status
const (
	CorporateStatusPending  = 0
	CorporateStatusApproved = 1
	CorporateStatusRejected = 2
)

// Housekeeping task status
const (
	TaskStatusPending    = "pending"
	TaskStatusAssigned   = "assigned"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// Housekeeping task types
const (
	TaskTypeCleaning    = "cleaning"
	TaskTypeMaintenance = "maintenance"
	TaskTypeInspection  = "inspection"
)

// Room status
const (
	RoomStatusAvailable    = 1
	RoomStatusOccupied     = 2
	RoomStatusMaintenance  = 3
	RoomStatusOutOfService = 4
)

// Inventory transaction types
const (
	TxnConsumption = "consumption"
	TxnRestock     = "restock"
	TxnAdjustment  = "adjustment"
)

// Widget event types
const (
	WidgetEventImpression = "impression"
	WidgetEventClick      = "click"
	WidgetEventConversion = "conversion"
)

// Allotment channel kinds
const (
	ChannelDirect = "direct"
	ChannelOTA    = "ota"
)

// Departments
const (
	DeptHousekeeping = "housekeeping"
	DeptFrontDesk    = "front_desk"
	DeptMaintenance  = "maintenance"
	DeptFnB          = "fnb"
)
