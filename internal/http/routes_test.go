package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"relief-coordination.com/relief-coordination/internal/auth"
	config "relief-coordination.com/relief-coordination/internal/configs"
	dto "relief-coordination.com/relief-coordination/internal/data_models"
	middleware "relief-coordination.com/relief-coordination/internal/http/middlewares"
	repository "relief-coordination.com/relief-coordination/internal/repositories"
	"relief-coordination.com/relief-coordination/internal/services"
	"relief-coordination.com/relief-coordination/pkg/constants"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

type apiFixture struct {
	router http.Handler
	tokens *auth.TokenManager
}

func newAPIFixture(t *testing.T, limiter middleware.Limiter) *apiFixture {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := config.NewDatabaseClient(dsn)
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	repo := repository.NewTaskRepository(db)
	logger := zap.NewNop()
	tokens := auth.NewTokenManager("integration-secret", time.Hour)

	handler := NewHandler(services.NewTaskService(repo, logger, 5), services.NewStatsService(repo))
	router := NewRouter(handler, RouterConfig{
		Verifier:     tokens,
		Limiter:      limiter,
		AllowOrigins: []string{"*"},
		Logger:       logger,
	})

	return &apiFixture{router: router, tokens: tokens}
}

func (f *apiFixture) token(t *testing.T, userID, role string) string {
	token, err := f.tokens.Issue(auth.Identity{UserID: userID, Role: role})
	require.NoError(t, err)
	return token
}

func TestAPI_DebrisScenario(t *testing.T) {
	f := newAPIFixture(t, nil)
	chief := f.token(t, "chief", constants.RoleAuthority)
	userA := f.token(t, "user-a", constants.RoleVolunteer)
	userB := f.token(t, "user-b", constants.RoleVolunteer)
	userC := f.token(t, "user-c", constants.RoleVolunteer)

	rec := doRequest(t, f.router, http.MethodPost, "/api/volunteers/tasks", chief,
		`{"title":"Clear debris","description":"Main road is blocked","location":"Sector 5","maxVolunteers":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var task model.VolunteerTask
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &task))
	require.Equal(t, constants.StatusOpen, task.Status)
	require.Equal(t, "chief", task.CreatedBy)

	action := fmt.Sprintf(`{"taskId":%q}`, task.ID)

	rec = doRequest(t, f.router, http.MethodPost, "/api/volunteers/assign", userA, action)
	require.Equal(t, http.StatusOK, rec.Code)
	var assigned dto.TaskActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assigned))
	require.Equal(t, constants.StatusInProgress, assigned.Task.Status)
	require.Equal(t, model.StringList{"user-a"}, assigned.Task.Volunteers)

	rec = doRequest(t, f.router, http.MethodPost, "/api/volunteers/assign", userB, action)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, f.router, http.MethodPost, "/api/volunteers/assign", userC, action)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Maximum number of volunteers reached for this task", decodeError(t, rec))

	rec = doRequest(t, f.router, http.MethodPost, "/api/volunteers/complete", userC, action)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, f.router, http.MethodPost, "/api/volunteers/complete", userA, action)
	require.Equal(t, http.StatusOK, rec.Code)
	var completed dto.TaskActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &completed))
	require.Equal(t, constants.StatusCompleted, completed.Task.Status)
	require.NotNil(t, completed.Task.CompletedAt)

	rec = doRequest(t, f.router, http.MethodPost, "/api/volunteers/complete", chief, action)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, f.router, http.MethodGet, "/api/volunteers/stats", userA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"activeVolunteers":0,"hoursContributed":4,"tasksCompleted":1,"activeLocations":0}`, rec.Body.String())

	rec = doRequest(t, f.router, http.MethodGet, "/api/volunteers/tasks", userB, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []model.PopulatedTask
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Len(t, listed[0].Volunteers, 2)
	require.Equal(t, "user-a", listed[0].Volunteers[0].ID)
}

func TestAPI_RateLimited(t *testing.T) {
	f := newAPIFixture(t, middleware.NewMemoryLimiter(2, time.Minute))

	for i := 0; i < 2; i++ {
		rec := doRequest(t, f.router, http.MethodGet, "/health", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doRequest(t, f.router, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "rate limit exceeded", decodeError(t, rec))
}

func TestAPI_TaskPayloadUsesUnderscoreID(t *testing.T) {
	f := newAPIFixture(t, nil)
	chief := f.token(t, "chief", constants.RoleAuthority)
	volunteer := f.token(t, "user-a", constants.RoleVolunteer)

	rec := doRequest(t, f.router, http.MethodPost, "/api/volunteers/tasks", chief,
		`{"title":"Water run","description":"Deliver bottled water","location":"Shelter 2"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Contains(t, created, "_id")
	require.NotContains(t, created, "id")

	rec = doRequest(t, f.router, http.MethodGet, "/api/volunteers/tasks", volunteer, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	require.Equal(t, created["_id"], listed[0]["_id"])
	require.NotContains(t, listed[0], "id")

	creator, ok := listed[0]["createdBy"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "chief", creator["_id"])
	require.NotContains(t, creator, "id")

	action := fmt.Sprintf(`{"taskId":%q}`, listed[0]["_id"])
	rec = doRequest(t, f.router, http.MethodPost, "/api/volunteers/assign", volunteer, action)
	require.Equal(t, http.StatusOK, rec.Code)

	var assigned map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assigned))
	task, ok := assigned["task"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, created["_id"], task["_id"])
	require.NotContains(t, task, "id")

	rec = doRequest(t, f.router, http.MethodGet, "/api/volunteers/tasks", volunteer, "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	volunteers, ok := listed[0]["volunteers"].([]any)
	require.True(t, ok)
	require.Len(t, volunteers, 1)
	entry, ok := volunteers[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "user-a", entry["_id"])
	require.NotContains(t, entry, "id")
}
