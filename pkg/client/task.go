package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/http/handler/api"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func (c *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var res []api.Task
	if err := c.jsonRequest(ctx, http.MethodGet, "/tasks", nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	tasks := make([]model.Task, 0, len(res))
	for _, t := range res {
		tasks = append(tasks, fromTask(t))
	}

	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, taskID model.TaskID) (model.Task, error) {
	var res api.Task
	if err := c.jsonRequest(ctx, http.MethodGet, taskEndpoint(taskID), nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return fromTask(res), nil
}

// CreateTask creates a task with a client generated identifier.
func (c *Client) CreateTask(ctx context.Context, title string, dueDate *model.Date) (model.Task, error) {
	req := map[string]any{
		"id":        uuid.NewString(),
		"title":     title,
		"dueDate":   dueDate,
		"completed": false,
	}

	var res api.Task
	if err := c.jsonRequest(ctx, http.MethodPost, "/tasks", req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return fromTask(res), nil
}

// UpdateTask sends only the fields set in the patch.
func (c *Client) UpdateTask(ctx context.Context, taskID model.TaskID, patch model.TaskPatch) (model.Task, error) {
	req := map[string]any{}

	if patch.Title != nil {
		req["title"] = *patch.Title
	}

	if dueDate, ok := patch.DueDate.Get(); ok {
		req["dueDate"] = dueDate
	}

	if patch.Completed != nil {
		req["completed"] = *patch.Completed
	}

	var res api.Task
	if err := c.jsonRequest(ctx, http.MethodPatch, taskEndpoint(taskID), req, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return fromTask(res), nil
}

func (c *Client) DeleteTask(ctx context.Context, taskID model.TaskID) error {
	if err := c.jsonRequest(ctx, http.MethodDelete, taskEndpoint(taskID), nil, nil); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

type OverviewTask struct {
	model.Task
	Label string
}

type Overview struct {
	Now    time.Time
	MustDo []OverviewTask
	All    []OverviewTask
}

// Overview returns the tasks partitioned by the server in the given time zone.
func (c *Client) Overview(ctx context.Context, loc *time.Location) (*Overview, error) {
	endpoint := "/tasks/overview"
	if loc != nil && loc.String() != "Local" {
		endpoint += "?" + url.Values{"tz": []string{loc.String()}}.Encode()
	}

	var res api.OverviewResponse
	if err := c.jsonRequest(ctx, http.MethodGet, endpoint, nil, &res); err != nil {
		return nil, errors.WithStack(err)
	}

	return &Overview{
		Now:    res.Now,
		MustDo: fromOverviewTasks(res.MustDo),
		All:    fromOverviewTasks(res.All),
	}, nil
}

func taskEndpoint(taskID model.TaskID) string {
	return fmt.Sprintf("/tasks/%s", url.PathEscape(string(taskID)))
}

func fromTask(t api.Task) model.Task {
	return model.NewTask(t.ID, t.Title, t.DueDate, t.Completed, t.CreatedAt)
}

func fromOverviewTasks(tasks []api.OverviewTask) []OverviewTask {
	res := make([]OverviewTask, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, OverviewTask{
			Task:  fromTask(t.Task),
			Label: t.Label,
		})
	}
	return res
}
