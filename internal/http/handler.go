package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"relief-coordination.com/relief-coordination/internal/auth"
	dto "relief-coordination.com/relief-coordination/internal/data_models"
	apperrors "relief-coordination.com/relief-coordination/internal/errors"
	"relief-coordination.com/relief-coordination/internal/http/validators"
	"relief-coordination.com/relief-coordination/internal/services"
	"relief-coordination.com/relief-coordination/pkg/constants"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

type TaskLifecycle interface {
	CreateTask(ctx context.Context, input services.CreateTaskInput, creator auth.Identity) (*model.VolunteerTask, error)
	AssignVolunteer(ctx context.Context, taskID string, actor auth.Identity) (*model.VolunteerTask, error)
	CompleteTask(ctx context.Context, taskID string, actor auth.Identity) (*model.VolunteerTask, error)
	GetTask(ctx context.Context, id string) (*model.VolunteerTask, error)
	ListTasks(ctx context.Context) ([]model.PopulatedTask, error)
}

type StatsProvider interface {
	Stats(ctx context.Context) (model.VolunteerStats, error)
}

type Handler struct {
	tasks TaskLifecycle
	stats StatsProvider
}

func NewHandler(tasks TaskLifecycle, stats StatsProvider) *Handler {
	return &Handler{
		tasks: tasks,
		stats: stats,
	}
}

func identity(c echo.Context) (auth.Identity, error) {
	id, ok := auth.FromContext(c.Request().Context())
	if !ok {
		return auth.Identity{}, apperrors.ErrUnauthorized
	}
	return id, nil
}

func (h *Handler) ListTasks(c echo.Context) error {
	tasks, err := h.tasks.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.tasks.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	creator, err := identity(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), services.CreateTaskInput{
		Title:             req.Title,
		Description:       req.Description,
		Location:          req.Location,
		Priority:          constants.Priority(req.Priority),
		RequiredSkills:    req.RequiredSkills,
		EstimatedDuration: req.EstimatedDuration,
		MaxVolunteers:     req.MaxVolunteers,
	}, creator)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) AssignVolunteer(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}

	var req dto.TaskActionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateTaskActionRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.AssignVolunteer(c.Request().Context(), req.TaskID, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskActionResponse{
		Message: "Successfully volunteered for task",
		Task:    task,
	})
}

func (h *Handler) CompleteTask(c echo.Context) error {
	actor, err := identity(c)
	if err != nil {
		return err
	}

	var req dto.TaskActionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.ErrInvalidJSON
	}
	if err := validators.ValidateTaskActionRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.CompleteTask(c.Request().Context(), req.TaskID, actor)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.TaskActionResponse{
		Message: "Task marked as completed",
		Task:    task,
	})
}

func (h *Handler) Stats(c echo.Context) error {
	stats, err := h.stats.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
