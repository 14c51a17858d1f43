package testsuite

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestStore(t *testing.T, factory func(t *testing.T) (port.Store, error)) {
	type testCase struct {
		Name string
		Run  func(t *testing.T, ctx context.Context, store port.Store) error
	}

	var testCases []testCase = []testCase{
		{
			Name: "CreateAndFindUser",
			Run: func(t *testing.T, ctx context.Context, store port.Store) error {
				user, err := createUser(ctx, store, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				found, err := store.FindUserByUsername(ctx, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := user.ID(), found.ID(); e != g {
					t.Errorf("found.ID(): expected %v, got %v", e, g)
				}

				hash, err := store.GetUserPasswordHash(ctx, user.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "hash-alice", hash; e != g {
					t.Errorf("hash: expected %v, got %v", e, g)
				}

				if _, err := store.FindUserByUsername(ctx, "bob"); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("FindUserByUsername(bob): expected port.ErrNotFound, got %+v", err)
				}

				if _, err := store.GetUserByID(ctx, model.NewUserID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetUserByID(unknown): expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "DuplicateUsername",
			Run: func(t *testing.T, ctx context.Context, store port.Store) error {
				if _, err := createUser(ctx, store, "alice"); err != nil {
					return errors.WithStack(err)
				}

				_, err := createUser(ctx, store, "alice")
				if !errors.Is(err, port.ErrDuplicateUsername) {
					t.Errorf("createUser(alice): expected port.ErrDuplicateUsername, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "TaskLifecycle",
			Run: func(t *testing.T, ctx context.Context, store port.Store) error {
				owner, err := createUser(ctx, store, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				dueDate := model.NewDate(2024, time.June, 12)
				task := model.NewOwnedTask(owner.ID(), model.NewTask(model.NewTaskID(), "Buy milk", &dueDate, false, time.Now().UTC()))

				if err := store.CreateTask(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				if err := store.CreateTask(ctx, task); !errors.Is(err, port.ErrAlreadyExists) {
					t.Errorf("CreateTask(duplicate): expected port.ErrAlreadyExists, got %+v", err)
				}

				tasks, err := store.QueryUserTasks(ctx, owner.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				t.Logf("tasks: %s", spew.Sdump(tasks))

				if e, g := 1, len(tasks); e != g {
					t.Fatalf("len(tasks): expected %v, got %v", e, g)
				}

				if tasks[0].DueDate() == nil || *tasks[0].DueDate() != dueDate {
					t.Errorf("tasks[0].DueDate(): expected %v, got %v", dueDate, tasks[0].DueDate())
				}

				updated, err := store.UpdateUserTask(ctx, owner.ID(), task.ID(), model.PatchCompleted(true))
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := true, updated.Completed(); e != g {
					t.Errorf("updated.Completed(): expected %v, got %v", e, g)
				}

				if e, g := "Buy milk", updated.Title(); e != g {
					t.Errorf("updated.Title(): expected %v, got %v", e, g)
				}

				cleared, err := store.UpdateUserTask(ctx, owner.ID(), task.ID(), model.PatchDueDate(nil))
				if err != nil {
					return errors.WithStack(err)
				}

				if cleared.DueDate() != nil {
					t.Errorf("cleared.DueDate(): expected nil, got %v", cleared.DueDate())
				}

				if e, g := true, cleared.Completed(); e != g {
					t.Errorf("cleared.Completed(): expected %v, got %v", e, g)
				}

				deleted, err := store.DeleteUserTask(ctx, owner.ID(), task.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if !deleted {
					t.Errorf("deleted: expected true, got false")
				}

				deleted, err = store.DeleteUserTask(ctx, owner.ID(), task.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if deleted {
					t.Errorf("deleted twice: expected false, got true")
				}

				if _, err := store.GetUserTask(ctx, owner.ID(), task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetUserTask(deleted): expected port.ErrNotFound, got %+v", err)
				}

				return nil
			},
		},
		{
			Name: "OwnerScoping",
			Run: func(t *testing.T, ctx context.Context, store port.Store) error {
				alice, err := createUser(ctx, store, "alice")
				if err != nil {
					return errors.WithStack(err)
				}

				bob, err := createUser(ctx, store, "bob")
				if err != nil {
					return errors.WithStack(err)
				}

				task := model.NewOwnedTask(alice.ID(), model.NewTask(model.NewTaskID(), "Secret", nil, false, time.Now().UTC()))
				if err := store.CreateTask(ctx, task); err != nil {
					return errors.WithStack(err)
				}

				tasks, err := store.QueryUserTasks(ctx, bob.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := 0, len(tasks); e != g {
					t.Errorf("len(bob tasks): expected %v, got %v", e, g)
				}

				if _, err := store.GetUserTask(ctx, bob.ID(), task.ID()); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("GetUserTask(bob): expected port.ErrNotFound, got %+v", err)
				}

				if _, err := store.UpdateUserTask(ctx, bob.ID(), task.ID(), model.PatchTitle("Mine")); !errors.Is(err, port.ErrNotFound) {
					t.Errorf("UpdateUserTask(bob): expected port.ErrNotFound, got %+v", err)
				}

				deleted, err := store.DeleteUserTask(ctx, bob.ID(), task.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if deleted {
					t.Errorf("DeleteUserTask(bob): expected false, got true")
				}

				kept, err := store.GetUserTask(ctx, alice.ID(), task.ID())
				if err != nil {
					return errors.WithStack(err)
				}

				if e, g := "Secret", kept.Title(); e != g {
					t.Errorf("kept.Title(): expected %v, got %v", e, g)
				}

				return nil
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			store, err := factory(t)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			ctx := context.Background()

			if err := tc.Run(t, ctx, store); err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}
		})
	}
}

func createUser(ctx context.Context, store port.UserStore, username string) (model.User, error) {
	user := model.NewUser(model.NewUserID(), username, time.Now().UTC())

	if err := store.CreateUser(ctx, user, "hash-"+username); err != nil {
		return nil, errors.WithStack(err)
	}

	return user, nil
}
