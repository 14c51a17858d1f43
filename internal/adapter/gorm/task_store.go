package gorm

import (
	"context"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// QueryUserTasks implements port.TaskStore.
func (s *Store) QueryUserTasks(ctx context.Context, ownerID model.UserID) ([]model.Task, error) {
	var tasks []*Task

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		err := db.Where("owner_id = ?", string(ownerID)).
			Order("created_at ASC").
			Order("id ASC").
			Find(&tasks).Error
		if err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrappedTasks := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		wrapped, err := wrapTask(t)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		wrappedTasks = append(wrappedTasks, wrapped)
	}

	return wrappedTasks, nil
}

// GetUserTask implements port.TaskStore.
func (s *Store) GetUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (model.Task, error) {
	var task Task

	err := s.withRetry(ctx, false, func(ctx context.Context, db *gorm.DB) error {
		if err := findUserTask(db, ownerID, taskID, &task); err != nil {
			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	wrapped, err := wrapTask(&task)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return wrapped, nil
}

// CreateTask implements port.TaskStore.
func (s *Store) CreateTask(ctx context.Context, task model.OwnedTask) error {
	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		gormTask := fromTask(task)

		if err := db.Omit("Owner").Create(gormTask).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return errors.WithStack(port.ErrAlreadyExists)
			}

			return errors.WithStack(err)
		}

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// UpdateUserTask implements port.TaskStore.
func (s *Store) UpdateUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, patch model.TaskPatch) (model.Task, error) {
	var updated model.Task

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		return db.Transaction(func(tx *gorm.DB) error {
			var task Task

			if err := findUserTask(tx, ownerID, taskID, &task); err != nil {
				return errors.WithStack(err)
			}

			current, err := wrapTask(&task)
			if err != nil {
				return errors.WithStack(err)
			}

			patched := model.NewOwnedTask(current.OwnerID(), patch.Apply(current))

			if patch.IsEmpty() {
				updated = patched
				return nil
			}

			changes := map[string]any{}

			if patch.Title != nil {
				changes["title"] = patched.Title()
			}

			if patch.DueDate.IsSet() {
				changes["due_date"] = fromDate(patched.DueDate())
			}

			if patch.Completed != nil {
				changes["completed"] = patched.Completed()
			}

			result := tx.Model(&Task{}).
				Where("id = ? AND owner_id = ?", string(taskID), string(ownerID)).
				Updates(changes)
			if result.Error != nil {
				return errors.WithStack(result.Error)
			}

			if result.RowsAffected == 0 {
				return errors.WithStack(port.ErrNotFound)
			}

			updated = patched

			return nil
		})
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return updated, nil
}

// DeleteUserTask implements port.TaskStore.
func (s *Store) DeleteUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (bool, error) {
	var deleted bool

	err := s.withRetry(ctx, true, func(ctx context.Context, db *gorm.DB) error {
		result := db.Delete(&Task{}, "id = ? AND owner_id = ?", string(taskID), string(ownerID))
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}

		deleted = result.RowsAffected > 0

		return nil
	}, sqlite3.LOCKED, sqlite3.BUSY)
	if err != nil {
		return false, errors.WithStack(err)
	}

	return deleted, nil
}

func findUserTask(db *gorm.DB, ownerID model.UserID, taskID model.TaskID, task *Task) error {
	if err := db.First(task, "id = ? AND owner_id = ?", string(taskID), string(ownerID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.WithStack(port.ErrNotFound)
		}

		return errors.WithStack(err)
	}

	return nil
}

var _ port.Store = &Store{}
