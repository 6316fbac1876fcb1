package services

import (
	"time"

	"pentouz/services/logger"
	"pentouz/services/notification"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// MaintenanceService runs the nightly housekeeping of the system itself:
// allotment releases, widget stat rollups and overdue-task escalation.
type MaintenanceService struct {
	db     *gorm.DB
	logger logger.Logger
}

type MaintenanceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewMaintenanceService(opts MaintenanceServiceOptions) *MaintenanceService {
	return &MaintenanceService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// RunNightly executes all scheduled maintenance steps. Each step is
// independent; one failing does not stop the others.
func (s *MaintenanceService) RunNightly(m *melody.Melody) error {
	notifier := notification.NewMelodyService(m)

	released, err := ReleaseDueAllotments(s.db, notifier)
	if err != nil {
		s.logger.Error("allotment release failed: %v", err)
	} else if released > 0 {
		s.logger.Info("released %d allotment units back to direct", released)
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	if err := RollupWidgetStats(s.db, yesterday); err != nil {
		s.logger.Error("widget stat rollup failed: %v", err)
	}

	escalated, err := EscalateOverdueTasks(s.db, notifier)
	if err != nil {
		s.logger.Error("task escalation failed: %v", err)
	} else if escalated > 0 {
		s.logger.Info("escalated %d overdue housekeeping tasks", escalated)
	}

	return nil
}

// MaintenanceAdapter exposes the service through the jobs package interface.
type MaintenanceAdapter struct {
	service *MaintenanceService
}

func NewMaintenanceAdapter(service *MaintenanceService) *MaintenanceAdapter {
	return &MaintenanceAdapter{service: service}
}

func (a *MaintenanceAdapter) RunNightly(m *melody.Melody) error {
	return a.service.RunNightly(m)
}
