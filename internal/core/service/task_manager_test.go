package service

import (
	"context"
	"testing"
	"time"

	"github.com/bornholm/mustdo/internal/adapter/memory"
	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestTaskManager(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	now := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	manager := NewTaskManager(store, WithTaskManagerClock(func() time.Time { return now }))

	owner := model.NewUser(model.NewUserID(), "alice", now)
	if err := store.CreateUser(ctx, owner, "hash"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := manager.CreateTask(ctx, owner.ID(), CreateTaskRequest{Title: "   "}); !port.IsValidationError(err) {
		t.Errorf("CreateTask(blank title): expected validation error, got %+v", err)
	}

	dueDates := map[string]*model.Date{
		"overdue":  datePtr(model.NewDate(2024, time.June, 9)),
		"today":    datePtr(model.NewDate(2024, time.June, 10)),
		"tomorrow": datePtr(model.NewDate(2024, time.June, 11)),
		"later":    datePtr(model.NewDate(2024, time.June, 12)),
		"undated":  nil,
	}

	for _, title := range []string{"later", "undated", "tomorrow", "overdue", "today"} {
		task, err := manager.CreateTask(ctx, owner.ID(), CreateTaskRequest{Title: "  " + title + " ", DueDate: dueDates[title]})
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := title, task.Title(); e != g {
			t.Errorf("task.Title(): expected %v, got %v", e, g)
		}

		if task.ID() == "" {
			t.Errorf("task.ID() should have been generated")
		}
	}

	overview, err := manager.Overview(ctx, owner.ID(), time.UTC)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Logf("overview: %s", spew.Sdump(overview))

	assertTitles(t, "overview.MustDo", []string{"overdue", "today", "tomorrow"}, overview.MustDo)
	assertTitles(t, "overview.All", []string{"later", "undated"}, overview.All)

	overdue := overview.MustDo[0]

	completed, err := manager.UpdateTask(ctx, owner.ID(), overdue.ID(), model.PatchCompleted(true))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !completed.Completed() {
		t.Errorf("completed.Completed(): expected true, got false")
	}

	overview, err = manager.Overview(ctx, owner.ID(), time.UTC)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	assertTitles(t, "overview.MustDo after completion", []string{"today", "tomorrow", "overdue"}, overview.MustDo)

	if _, err := manager.UpdateTask(ctx, owner.ID(), overdue.ID(), model.PatchTitle(" ")); !port.IsValidationError(err) {
		t.Errorf("UpdateTask(blank title): expected validation error, got %+v", err)
	}

	if _, err := manager.UpdateTask(ctx, owner.ID(), "unknown", model.PatchCompleted(true)); !errors.Is(err, port.ErrNotFound) {
		t.Errorf("UpdateTask(unknown): expected port.ErrNotFound, got %+v", err)
	}

	deleted, err := manager.DeleteTask(ctx, owner.ID(), overdue.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !deleted {
		t.Errorf("deleted: expected true, got false")
	}

	tasks, err := manager.ListTasks(ctx, owner.ID())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 4, len(tasks); e != g {
		t.Errorf("len(tasks): expected %v, got %v", e, g)
	}
}

func TestTaskManagerKeepsClientID(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	manager := NewTaskManager(store)

	owner := model.NewUser(model.NewUserID(), "alice", time.Now())
	if err := store.CreateUser(ctx, owner, "hash"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	task, err := manager.CreateTask(ctx, owner.ID(), CreateTaskRequest{ID: "client-id", Title: "Buy milk"})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.TaskID("client-id"), task.ID(); e != g {
		t.Errorf("task.ID(): expected %v, got %v", e, g)
	}

	if _, err := manager.CreateTask(ctx, owner.ID(), CreateTaskRequest{ID: "client-id", Title: "Again"}); !errors.Is(err, port.ErrAlreadyExists) {
		t.Errorf("CreateTask(duplicate id): expected port.ErrAlreadyExists, got %+v", err)
	}
}

func datePtr(d model.Date) *model.Date {
	return &d
}

func assertTitles(t *testing.T, name string, expected []string, tasks []model.Task) {
	t.Helper()

	if e, g := len(expected), len(tasks); e != g {
		t.Fatalf("len(%s): expected %v, got %v", name, e, g)
	}

	for i, title := range expected {
		if e, g := title, tasks[i].Title(); e != g {
			t.Errorf("%s[%d].Title(): expected %v, got %v", name, i, e, g)
		}
	}
}
