package port

import (
	"context"

	"github.com/bornholm/mustdo/internal/core/model"
)

// TaskStore persists tasks. Every operation is scoped to the owning user:
// a task owned by someone else behaves as if it did not exist.
type TaskStore interface {
	// QueryUserTasks returns all the tasks owned by the given user, ordered by creation date
	QueryUserTasks(ctx context.Context, ownerID model.UserID) ([]model.Task, error)

	// GetUserTask returns a task owned by the given user, or ErrNotFound
	GetUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (model.Task, error)

	// CreateTask persists a new task, or returns ErrAlreadyExists if its identifier is already used
	CreateTask(ctx context.Context, task model.OwnedTask) error

	// UpdateUserTask applies the patch to a task owned by the given user and returns
	// the updated task, or ErrNotFound
	UpdateUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, patch model.TaskPatch) (model.Task, error)

	// DeleteUserTask deletes a task owned by the given user and reports whether a task was removed
	DeleteUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (bool, error)
}
