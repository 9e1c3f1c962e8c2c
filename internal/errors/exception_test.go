package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	require.Equal(t, http.StatusNotFound, StatusCode(ErrTaskNotFound))
	require.Equal(t, http.StatusBadRequest, StatusCode(fmt.Errorf("assign: %w", ErrTaskFull)))
	require.Equal(t, http.StatusForbidden, StatusCode(ErrNotTaskParticipant))
	require.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("disk on fire")))
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindConflict, KindOf(ErrAlreadyVolunteering))
	require.Equal(t, KindInvalidState, KindOf(fmt.Errorf("wrapped: %w", ErrTaskUnavailable)))
	require.Equal(t, Kind(""), KindOf(errors.New("plain")))
}

func TestMessageOf(t *testing.T) {
	require.Equal(t, "Task not found", MessageOf(fmt.Errorf("get task: %w", ErrTaskNotFound)))
	require.Empty(t, MessageOf(errors.New("disk on fire")))
}
