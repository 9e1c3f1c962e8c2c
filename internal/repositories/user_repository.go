package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "relief-coordination.com/relief-coordination/internal/errors"
	model "relief-coordination.com/relief-coordination/pkg/models"
)

func (r *TaskRepository) CreateUser(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrUserExists
	}
	return err
}

func (r *TaskRepository) FindUsersByIDs(ctx context.Context, ids []string) (map[string]model.User, error) {
	users := make(map[string]model.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var rows []model.User
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	for _, u := range rows {
		users[u.ID] = u
	}
	return users, nil
}
