package services

import "pentouz/constants"

// taskTransitions maps an action to the statuses it may be applied from.
var taskTransitions = map[string][]string{
	"assign":   {constants.TaskStatusPending, constants.TaskStatusAssigned},
	"start":    {constants.TaskStatusAssigned},
	"complete": {constants.TaskStatusInProgress},
	"cancel":   {constants.TaskStatusPending, constants.TaskStatusAssigned},
	"reopen":   {constants.TaskStatusCompleted, constants.TaskStatusCancelled},
}

// taskNextStatus maps an action to the resulting status.
var taskNextStatus = map[string]string{
	"assign":   constants.TaskStatusAssigned,
	"start":    constants.TaskStatusInProgress,
	"complete": constants.TaskStatusCompleted,
	"cancel":   constants.TaskStatusCancelled,
	"reopen":   constants.TaskStatusPending,
}

// ValidTaskTransition reports whether the action may be applied to a task
// currently in fromStatus.
func ValidTaskTransition(action, fromStatus string) bool {
	allowed, ok := taskTransitions[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}

// NextTaskStatus returns the status an action leads to, "" for unknown actions.
func NextTaskStatus(action string) string {
	return taskNextStatus[action]
}
