package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"relief-coordination.com/relief-coordination/internal/auth"
	apperrors "relief-coordination.com/relief-coordination/internal/errors"
	"relief-coordination.com/relief-coordination/pkg/constants"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

// TaskStore persists volunteer tasks. Update must only succeed when the
// stored version equals task.Version and must fail with
// apperrors.ErrOptimisticLock otherwise.
type TaskStore interface {
	CreateTask(ctx context.Context, task *model.VolunteerTask) error
	FindByID(ctx context.Context, id string) (*model.VolunteerTask, error)
	List(ctx context.Context) ([]model.VolunteerTask, error)
	ListPopulated(ctx context.Context) ([]model.PopulatedTask, error)
	Update(ctx context.Context, task *model.VolunteerTask) error
}

type CreateTaskInput struct {
	Title             string
	Description       string
	Location          string
	Priority          constants.Priority
	RequiredSkills    []string
	EstimatedDuration string
	MaxVolunteers     int
}

type TaskService struct {
	repo        TaskStore
	logger      *zap.Logger
	maxAttempts int
	now         func() time.Time
}

func NewTaskService(repo TaskStore, logger *zap.Logger, maxAttempts int) *TaskService {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &TaskService{
		repo:        repo,
		logger:      logger,
		maxAttempts: maxAttempts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput, creator auth.Identity) (*model.VolunteerTask, error) {
	task, err := s.newTask(input, creator)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		s.logger.Error("failed to create task", zap.String("title", task.Title), zap.Error(err))
		return nil, err
	}

	s.logger.Info("task created",
		zap.String("task_id", task.ID),
		zap.String("created_by", task.CreatedBy),
		zap.Int("max_volunteers", task.MaxVolunteers),
	)
	return task, nil
}

func (s *TaskService) newTask(input CreateTaskInput, creator auth.Identity) (*model.VolunteerTask, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	location := strings.TrimSpace(input.Location)
	if title == "" || description == "" || location == "" {
		return nil, apperrors.ErrMissingFields
	}

	priority := input.Priority
	if priority == "" {
		priority = constants.DefaultPriority
	}
	if !priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}

	maxVolunteers := input.MaxVolunteers
	if maxVolunteers == 0 {
		maxVolunteers = constants.DefaultMaxVolunteers
	}
	if maxVolunteers < 0 {
		return nil, apperrors.ErrInvalidMaxVolunteers
	}

	duration := strings.TrimSpace(input.EstimatedDuration)
	if duration == "" {
		duration = constants.DefaultEstimatedDuration
	}

	skills := model.StringList{}
	seen := make(map[string]struct{}, len(input.RequiredSkills))
	for _, skill := range input.RequiredSkills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		skills = append(skills, skill)
	}

	return &model.VolunteerTask{
		ID:                uuid.NewString(),
		Title:             title,
		Description:       description,
		Location:          location,
		Priority:          priority,
		RequiredSkills:    skills,
		EstimatedDuration: duration,
		MaxVolunteers:     maxVolunteers,
		CreatedBy:         creator.UserID,
		Volunteers:        model.StringList{},
		Status:            constants.StatusOpen,
		Version:           1,
		CreatedAt:         s.now(),
	}, nil
}

func (s *TaskService) AssignVolunteer(ctx context.Context, taskID string, actor auth.Identity) (*model.VolunteerTask, error) {
	task, err := s.mutate(ctx, taskID, func(task *model.VolunteerTask) error {
		if !task.Status.AcceptsVolunteers() {
			return apperrors.ErrTaskUnavailable
		}
		if task.HasVolunteer(actor.UserID) {
			return apperrors.ErrAlreadyVolunteering
		}
		if task.Full() {
			return apperrors.ErrTaskFull
		}

		task.Volunteers = append(task.Volunteers, actor.UserID)
		if task.Status == constants.StatusOpen {
			task.Status = constants.StatusInProgress
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("volunteer assigned",
		zap.String("task_id", task.ID),
		zap.String("user_id", actor.UserID),
		zap.Int("volunteers", len(task.Volunteers)),
	)
	return task, nil
}

func (s *TaskService) CompleteTask(ctx context.Context, taskID string, actor auth.Identity) (*model.VolunteerTask, error) {
	task, err := s.mutate(ctx, taskID, func(task *model.VolunteerTask) error {
		if !task.HasVolunteer(actor.UserID) && !actor.IsAuthority() {
			return apperrors.ErrNotTaskParticipant
		}
		if task.Status == constants.StatusCompleted {
			return apperrors.ErrTaskAlreadyCompleted
		}
		if task.Status == constants.StatusCancelled {
			return apperrors.ErrTaskUnavailable
		}

		completedAt := s.now()
		task.Status = constants.StatusCompleted
		task.CompletedAt = &completedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("task completed",
		zap.String("task_id", task.ID),
		zap.String("completed_by", actor.UserID),
		zap.Bool("authority", actor.IsAuthority()),
	)
	return task, nil
}

// mutate runs read, apply, conditional write against a single task. A version
// conflict means another writer got in between; the whole cycle is repeated
// from a fresh read so apply always validates the state being overwritten.
func (s *TaskService) mutate(
	ctx context.Context,
	taskID string,
	apply func(task *model.VolunteerTask) error,
) (*model.VolunteerTask, error) {
	for attempt := 1; ; attempt++ {
		task, err := s.repo.FindByID(ctx, taskID)
		if err != nil {
			return nil, err
		}

		if err := apply(task); err != nil {
			return nil, err
		}

		err = s.repo.Update(ctx, task)
		if err == nil {
			return task, nil
		}

		if !errors.Is(err, apperrors.ErrOptimisticLock) {
			s.logger.Error("failed to update task", zap.String("task_id", taskID), zap.Error(err))
			return nil, err
		}

		s.logger.Debug("optimistic lock conflict",
			zap.String("task_id", taskID),
			zap.Int("attempt", attempt),
		)
		if attempt >= s.maxAttempts {
			s.logger.Warn("giving up after repeated version conflicts",
				zap.String("task_id", taskID),
				zap.Int("attempts", attempt),
			)
			return nil, err
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.VolunteerTask, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.PopulatedTask, error) {
	return s.repo.ListPopulated(ctx)
}
