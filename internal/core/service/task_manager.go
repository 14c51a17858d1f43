package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/mustdo/internal/core/agenda"
	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/metrics"
	"github.com/pkg/errors"
)

const (
	messageTitleRequired = "Title is required"
	maxTitleLength       = 500
)

type TaskManagerOptions struct {
	Clock func() time.Time
}

type TaskManagerOptionFunc func(opts *TaskManagerOptions)

func WithTaskManagerClock(clock func() time.Time) TaskManagerOptionFunc {
	return func(opts *TaskManagerOptions) {
		opts.Clock = clock
	}
}

func NewTaskManagerOptions(funcs ...TaskManagerOptionFunc) *TaskManagerOptions {
	opts := &TaskManagerOptions{
		Clock: time.Now,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// TaskManager exposes the owner scoped task operations.
type TaskManager struct {
	store port.TaskStore
	now   func() time.Time
}

type CreateTaskRequest struct {
	// Optional, generated when empty
	ID        model.TaskID
	Title     string
	DueDate   *model.Date
	Completed bool
}

func (m *TaskManager) ListTasks(ctx context.Context, ownerID model.UserID) ([]model.Task, error) {
	tasks, err := m.store.QueryUserTasks(ctx, ownerID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return tasks, nil
}

func (m *TaskManager) GetTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (model.Task, error) {
	task, err := m.store.GetUserTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return task, nil
}

func (m *TaskManager) CreateTask(ctx context.Context, ownerID model.UserID, req CreateTaskRequest) (model.Task, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	taskID := model.TaskID(strings.TrimSpace(string(req.ID)))
	if taskID == "" {
		taskID = model.NewTaskID()
	}

	task := model.NewOwnedTask(ownerID, model.NewTask(taskID, title, req.DueDate, req.Completed, m.now().UTC()))

	ctx = slogx.WithAttrs(ctx, slog.String("taskID", string(taskID)))

	if err := m.store.CreateTask(ctx, task); err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "task created")

	metrics.TotalTaskOperations.WithLabelValues(metrics.OperationCreate).Inc()
	if task.Completed() {
		metrics.TotalCompletedTasks.Inc()
	}

	return task, nil
}

func (m *TaskManager) UpdateTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, patch model.TaskPatch) (model.Task, error) {
	if patch.Title != nil {
		title, err := validateTitle(*patch.Title)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		patch.Title = &title
	}

	ctx = slogx.WithAttrs(ctx, slog.String("taskID", string(taskID)))

	task, err := m.store.UpdateUserTask(ctx, ownerID, taskID, patch)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "task updated")

	metrics.TotalTaskOperations.WithLabelValues(metrics.OperationUpdate).Inc()
	if patch.Completed != nil && *patch.Completed {
		metrics.TotalCompletedTasks.Inc()
	}

	return task, nil
}

// DeleteTask reports whether a task was removed.
func (m *TaskManager) DeleteTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (bool, error) {
	deleted, err := m.store.DeleteUserTask(ctx, ownerID, taskID)
	if err != nil {
		return false, errors.WithStack(err)
	}

	if deleted {
		metrics.TotalTaskOperations.WithLabelValues(metrics.OperationDelete).Inc()
	}

	return deleted, nil
}

type TaskOverview struct {
	agenda.Overview[model.Task]
	Now time.Time
}

// Overview partitions the owner's tasks between must-do and other tasks,
// classified in the given location.
func (m *TaskManager) Overview(ctx context.Context, ownerID model.UserID, loc *time.Location) (*TaskOverview, error) {
	tasks, err := m.store.QueryUserTasks(ctx, ownerID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if loc == nil {
		loc = time.Local
	}

	now := m.now().In(loc)

	return &TaskOverview{
		Overview: agenda.Partition(tasks, now),
		Now:      now,
	}, nil
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return "", errors.WithStack(port.NewValidationError(messageTitleRequired))
	}

	if len([]rune(title)) > maxTitleLength {
		return "", errors.WithStack(port.NewValidationError("Title must be at most 500 characters long"))
	}

	return title, nil
}

func NewTaskManager(store port.TaskStore, funcs ...TaskManagerOptionFunc) *TaskManager {
	opts := NewTaskManagerOptions(funcs...)

	return &TaskManager{
		store: store,
		now:   opts.Clock,
	}
}
