package constants

type TaskStatus string

const (
	StatusOpen       TaskStatus = "open"
	StatusInProgress TaskStatus = "in_progress"
	StatusCompleted  TaskStatus = "completed"
	StatusCancelled  TaskStatus = "cancelled"
)

// Active reports whether a task in this status still counts towards live work.
func (s TaskStatus) Active() bool {
	return s != StatusCompleted && s != StatusCancelled
}

// AcceptsVolunteers reports whether volunteers may still join.
func (s TaskStatus) AcceptsVolunteers() bool {
	return s == StatusOpen || s == StatusInProgress
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

const (
	DefaultPriority          = PriorityMedium
	DefaultEstimatedDuration = "Not specified"
	DefaultMaxVolunteers     = 1

	// HoursPerVolunteer is the flat estimate credited per volunteer on a completed task.
	HoursPerVolunteer = 2
)
