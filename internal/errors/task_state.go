package errors

import "net/http"

var ErrTaskUnavailable = &Exception{
	Kind:       KindInvalidState,
	Message:    "This task is no longer available",
	StatusCode: http.StatusBadRequest,
}

var ErrAlreadyVolunteering = &Exception{
	Kind:       KindConflict,
	Message:    "You are already volunteering for this task",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskFull = &Exception{
	Kind:       KindConflict,
	Message:    "Maximum number of volunteers reached for this task",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskAlreadyCompleted = &Exception{
	Kind:       KindConflict,
	Message:    "This task is already completed",
	StatusCode: http.StatusBadRequest,
}
