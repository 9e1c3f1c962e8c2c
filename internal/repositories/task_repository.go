package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "relief-coordination.com/relief-coordination/internal/errors"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, task *model.VolunteerTask) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.VolunteerTask, error) {
	var task model.VolunteerTask
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.VolunteerTask, error) {
	var tasks []model.VolunteerTask
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListPopulated(ctx context.Context) ([]model.PopulatedTask, error) {
	tasks, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	users, err := r.FindUsersByIDs(ctx, model.ReferencedUserIDs(tasks))
	if err != nil {
		return nil, err
	}

	return model.Populate(tasks, users), nil
}

// Update writes task only if the stored version still equals task.Version.
func (r *TaskRepository) Update(ctx context.Context, task *model.VolunteerTask) error {
	res := r.db.WithContext(ctx).Model(&model.VolunteerTask{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":              task.Title,
			"description":        task.Description,
			"location":           task.Location,
			"priority":           task.Priority,
			"required_skills":    task.RequiredSkills,
			"estimated_duration": task.EstimatedDuration,
			"max_volunteers":     task.MaxVolunteers,
			"volunteers":         task.Volunteers,
			"status":             task.Status,
			"completed_at":       task.CompletedAt,
			"version":            gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	task.Version++
	return nil
}
