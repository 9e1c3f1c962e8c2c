package validators

import (
	"strings"

	dto "relief-coordination.com/relief-coordination/internal/data_models"
	apperrors "relief-coordination.com/relief-coordination/internal/errors"
	"relief-coordination.com/relief-coordination/pkg/constants"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if strings.TrimSpace(r.Title) == "" ||
		strings.TrimSpace(r.Description) == "" ||
		strings.TrimSpace(r.Location) == "" {
		return apperrors.ErrMissingFields
	}
	if r.Priority != "" && !constants.Priority(r.Priority).Valid() {
		return apperrors.ErrInvalidPriority
	}
	if r.MaxVolunteers < 0 {
		return apperrors.ErrInvalidMaxVolunteers
	}
	return nil
}

func ValidateTaskActionRequest(r *dto.TaskActionRequest) error {
	r.TaskID = strings.TrimSpace(r.TaskID)
	if r.TaskID == "" {
		return apperrors.ErrTaskIDRequired
	}
	return nil
}
