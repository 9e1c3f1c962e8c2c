package validators

import (
	"testing"

	"github.com/stretchr/testify/require"

	dto "relief-coordination.com/relief-coordination/internal/data_models"
	apperrors "relief-coordination.com/relief-coordination/internal/errors"
)

func TestValidateCreateTaskRequest(t *testing.T) {
	valid := dto.CreateTaskRequest{Title: "t", Description: "d", Location: "l"}
	require.NoError(t, ValidateCreateTaskRequest(&valid))

	withPriority := valid
	withPriority.Priority = "critical"
	require.NoError(t, ValidateCreateTaskRequest(&withPriority))

	missing := valid
	missing.Location = " "
	require.ErrorIs(t, ValidateCreateTaskRequest(&missing), apperrors.ErrMissingFields)

	badPriority := valid
	badPriority.Priority = "asap"
	require.ErrorIs(t, ValidateCreateTaskRequest(&badPriority), apperrors.ErrInvalidPriority)

	badCapacity := valid
	badCapacity.MaxVolunteers = -1
	require.ErrorIs(t, ValidateCreateTaskRequest(&badCapacity), apperrors.ErrInvalidMaxVolunteers)
}

func TestValidateTaskActionRequest(t *testing.T) {
	req := dto.TaskActionRequest{TaskID: "  abc "}
	require.NoError(t, ValidateTaskActionRequest(&req))
	require.Equal(t, "abc", req.TaskID)

	require.ErrorIs(t, ValidateTaskActionRequest(&dto.TaskActionRequest{}), apperrors.ErrTaskIDRequired)
}
