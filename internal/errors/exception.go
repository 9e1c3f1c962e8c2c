package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindInvalidState Kind = "invalid_state"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindUnauthorized Kind = "unauthorized"
	KindRateLimited  Kind = "rate_limited"
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// KindOf returns the kind of the first Exception in err's chain, or "" if none.
func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// MessageOf returns the client-facing message of the first Exception in
// err's chain, or "" if none.
func MessageOf(err error) string {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
