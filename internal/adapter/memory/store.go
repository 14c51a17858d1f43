package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/pkg/errors"
)

type userEntry struct {
	user         model.User
	passwordHash string
}

// Store is a volatile implementation of port.TaskStore and port.UserStore.
type Store struct {
	mutex sync.RWMutex

	users     map[model.UserID]*userEntry
	usernames map[string]model.UserID

	tasks     map[model.TaskID]model.OwnedTask
	taskOrder []model.TaskID
}

// CreateUser implements [port.UserStore].
func (s *Store) CreateUser(ctx context.Context, user model.User, passwordHash string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.usernames[user.Username()]; exists {
		return errors.WithStack(port.ErrDuplicateUsername)
	}

	if _, exists := s.users[user.ID()]; exists {
		return errors.WithStack(port.ErrAlreadyExists)
	}

	s.users[user.ID()] = &userEntry{
		user:         model.NewUser(user.ID(), user.Username(), user.CreatedAt()),
		passwordHash: passwordHash,
	}
	s.usernames[user.Username()] = user.ID()

	return nil
}

// FindUserByUsername implements [port.UserStore].
func (s *Store) FindUserByUsername(ctx context.Context, username string) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	userID, exists := s.usernames[username]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return s.users[userID].user, nil
}

// GetUserByID implements [port.UserStore].
func (s *Store) GetUserByID(ctx context.Context, userID model.UserID) (model.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.users[userID]
	if !exists {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return entry.user, nil
}

// GetUserPasswordHash implements [port.UserStore].
func (s *Store) GetUserPasswordHash(ctx context.Context, userID model.UserID) (string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	entry, exists := s.users[userID]
	if !exists {
		return "", errors.WithStack(port.ErrNotFound)
	}

	return entry.passwordHash, nil
}

// QueryUserTasks implements [port.TaskStore].
func (s *Store) QueryUserTasks(ctx context.Context, ownerID model.UserID) ([]model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	tasks := make([]model.Task, 0)
	for _, id := range s.taskOrder {
		task := s.tasks[id]
		if task.OwnerID() != ownerID {
			continue
		}

		tasks = append(tasks, model.CopyTask(task))
	}

	return tasks, nil
}

// GetUserTask implements [port.TaskStore].
func (s *Store) GetUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (model.Task, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	task, err := s.getUserTask(ownerID, taskID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return model.CopyTask(task), nil
}

// CreateTask implements [port.TaskStore].
func (s *Store) CreateTask(ctx context.Context, task model.OwnedTask) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.users[task.OwnerID()]; !exists {
		return errors.Wrapf(port.ErrNotFound, "unknown owner '%s'", task.OwnerID())
	}

	if _, exists := s.tasks[task.ID()]; exists {
		return errors.WithStack(port.ErrAlreadyExists)
	}

	s.tasks[task.ID()] = model.NewOwnedTask(task.OwnerID(), task)
	s.taskOrder = append(s.taskOrder, task.ID())

	return nil
}

// UpdateUserTask implements [port.TaskStore].
func (s *Store) UpdateUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID, patch model.TaskPatch) (model.Task, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	task, err := s.getUserTask(ownerID, taskID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	updated := model.NewOwnedTask(ownerID, patch.Apply(task))
	s.tasks[taskID] = updated

	return model.CopyTask(updated), nil
}

// DeleteUserTask implements [port.TaskStore].
func (s *Store) DeleteUserTask(ctx context.Context, ownerID model.UserID, taskID model.TaskID) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, err := s.getUserTask(ownerID, taskID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return false, nil
		}

		return false, errors.WithStack(err)
	}

	delete(s.tasks, taskID)
	s.taskOrder = slices.DeleteFunc(s.taskOrder, func(id model.TaskID) bool {
		return id == taskID
	})

	return true, nil
}

func (s *Store) getUserTask(ownerID model.UserID, taskID model.TaskID) (model.OwnedTask, error) {
	task, exists := s.tasks[taskID]
	if !exists || task.OwnerID() != ownerID {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return task, nil
}

func NewStore() *Store {
	return &Store{
		users:     map[model.UserID]*userEntry{},
		usernames: map[string]model.UserID{},
		tasks:     map[model.TaskID]model.OwnedTask{},
		taskOrder: make([]model.TaskID, 0),
	}
}

var _ port.Store = &Store{}
