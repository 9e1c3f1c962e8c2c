package dto

import model "relief-coordination.com/relief-coordination/pkg/models"

type CreateTaskRequest struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	Priority          string   `json:"priority,omitempty"`
	RequiredSkills    []string `json:"requiredSkills,omitempty"`
	EstimatedDuration string   `json:"estimatedDuration,omitempty"`
	MaxVolunteers     int      `json:"maxVolunteers,omitempty"`
}

// TaskActionRequest is the body of the assign and complete endpoints.
type TaskActionRequest struct {
	TaskID string `json:"taskId"`
}

type TaskActionResponse struct {
	Message string               `json:"message"`
	Task    *model.VolunteerTask `json:"task"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
