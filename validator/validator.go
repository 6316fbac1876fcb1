package validator

import (
	"pentouz/constants"
	"pentouz/errors"
	"pentouz/models"
	"regexp"
	"strconv"
	"time"
)

// ValidateGuest validates guest input
func ValidateGuest(guest *models.Guest) error {
	if guest.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest name must not be empty", nil)
	}

	if guest.Phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Guest phone must not be empty", nil)
	}

	if !isValidPhone(guest.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Guest phone is invalid", nil)
	}

	if guest.Email != "" && !isValidEmail(guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Guest email is invalid", nil)
	}

	if guest.Status < 0 || guest.Status > 2 {
		return errors.NewAppError(errors.ErrCodeInvalidStatus, "Guest status is invalid", nil)
	}

	return nil
}

// ValidateStaff validates a staff account
func ValidateStaff(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email must not be empty", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email is invalid", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Password must not be empty", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Password must have at least 6 characters", nil)
	}

	if user.PhoneNumber == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phone number must not be empty", nil)
	}

	if !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Phone number is invalid", nil)
	}

	if user.Role < constants.RoleAdmin || user.Role > constants.RoleStaff {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role is invalid", nil)
	}

	return nil
}

// ValidateCompany validates a corporate company including its GSTIN
func ValidateCompany(company *models.CorporateCompany) error {
	if company.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Company name must not be empty", nil)
	}

	if !IsValidGSTIN(company.GSTIN) {
		return errors.NewAppError(errors.ErrCodeInvalidGSTIN, "GSTIN is invalid: "+company.GSTIN, nil)
	}

	if !IsValidStateCode(company.StateCode) {
		return errors.NewAppError(errors.ErrCodeInvalidStateCode, "State code is invalid: "+company.StateCode, nil)
	}

	if company.GSTIN[:2] != company.StateCode {
		return errors.NewAppError(errors.ErrCodeInvalidGSTIN, "GSTIN state prefix does not match state code", nil)
	}

	if company.CreditLimit < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Credit limit must not be negative", nil)
	}

	return nil
}

// ValidateTask validates housekeeping task input
func ValidateTask(task *models.HousekeepingTask) error {
	if task.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Room must not be empty", nil)
	}

	switch task.Type {
	case constants.TaskTypeCleaning, constants.TaskTypeMaintenance, constants.TaskTypeInspection:
	default:
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Task type is invalid: "+task.Type, nil)
	}

	if task.Priority < 1 || task.Priority > 3 {
		return errors.NewAppError(errors.ErrCodeValidation, "Priority must be between 1 and 3", nil)
	}

	if task.DueAt != nil && task.DueAt.Before(time.Now()) {
		return errors.NewAppError(errors.ErrCodeValidation, "Due time must not be in the past", nil)
	}

	return nil
}

// ValidateChannel validates one allotment channel
func ValidateChannel(ch *models.AllotmentChannel) error {
	if ch.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Channel name must not be empty", nil)
	}

	if ch.Kind != constants.ChannelDirect && ch.Kind != constants.ChannelOTA {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Channel kind is invalid: "+ch.Kind, nil)
	}

	if ch.Allocated < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Allocated units must not be negative", nil)
	}

	if ch.CommissionPct < 0 || ch.CommissionPct > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Commission must be between 0 and 100", nil)
	}

	if ch.MarkupPct < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Markup must not be negative", nil)
	}

	return nil
}

// ValidateWidgetEvent validates a tracking event type
func ValidateWidgetEvent(event string) error {
	switch event {
	case constants.WidgetEventImpression, constants.WidgetEventClick, constants.WidgetEventConversion:
		return nil
	}
	return errors.NewAppError(errors.ErrCodeInvalidEvent, "Event type is invalid: "+event, nil)
}

// IsValidGSTIN checks the 15-character GSTIN format:
// 2-digit state code, 10-character PAN, entity digit, literal Z, check character.
func IsValidGSTIN(gstin string) bool {
	gstinRegex := regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	if !gstinRegex.MatchString(gstin) {
		return false
	}
	return IsValidStateCode(gstin[:2])
}

// IsValidStateCode checks a GST state code (01-38).
func IsValidStateCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 38
}

// isValidEmail checks a plausible email address
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone checks a 10-digit phone number
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10}$`)
	return phoneRegex.MatchString(phone)
}
