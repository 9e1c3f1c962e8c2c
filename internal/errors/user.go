package errors

import "net/http"

var ErrUserExists = &Exception{
	Kind:       KindConflict,
	Message:    "a user with this email already exists",
	StatusCode: http.StatusConflict,
}
