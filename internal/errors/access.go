package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Kind:       KindUnauthorized,
	Message:    "missing or invalid bearer token",
	StatusCode: http.StatusUnauthorized,
}

var ErrAuthorityRequired = &Exception{
	Kind:       KindForbidden,
	Message:    "Only authorities can perform this action",
	StatusCode: http.StatusForbidden,
}

var ErrNotTaskParticipant = &Exception{
	Kind:       KindForbidden,
	Message:    "You are not authorized to complete this task",
	StatusCode: http.StatusForbidden,
}

var ErrRateLimited = &Exception{
	Kind:       KindRateLimited,
	Message:    "rate limit exceeded",
	StatusCode: http.StatusTooManyRequests,
}
