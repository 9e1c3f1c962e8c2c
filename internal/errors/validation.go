package errors

import "net/http"

var ErrMissingFields = &Exception{
	Kind:       KindValidation,
	Message:    "Missing required fields",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidPriority = &Exception{
	Kind:       KindValidation,
	Message:    "priority must be one of low, medium, high, critical",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidMaxVolunteers = &Exception{
	Kind:       KindValidation,
	Message:    "maxVolunteers must be a positive integer",
	StatusCode: http.StatusBadRequest,
}

var ErrTaskIDRequired = &Exception{
	Kind:       KindValidation,
	Message:    "taskId is required",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidJSON = &Exception{
	Kind:       KindValidation,
	Message:    "invalid JSON payload",
	StatusCode: http.StatusBadRequest,
}
