package errors

import "net/http"

var ErrOptimisticLock = &Exception{
	Kind:       KindConflict,
	Message:    "task was modified concurrently, please retry",
	StatusCode: http.StatusConflict,
}
