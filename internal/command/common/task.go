package common

import (
	"context"
	"strings"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/pkg/client"
	"github.com/pkg/errors"
)

// ResolveTask finds the task identified by ref, either its full identifier
// or a unique prefix of it.
func ResolveTask(ctx context.Context, c *client.Client, ref string) (model.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.WithStack(port.NewValidationError("Task identifier is required"))
	}

	tasks, err := c.ListTasks(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return matchTask(tasks, ref)
}

func matchTask(tasks []model.Task, ref string) (model.Task, error) {
	var match model.Task

	for _, t := range tasks {
		id := string(t.ID())

		if id == ref {
			return t, nil
		}

		if !strings.HasPrefix(id, ref) {
			continue
		}

		if match != nil {
			return nil, errors.Wrapf(ErrAmbiguousReference, "'%s'", ref)
		}

		match = t
	}

	if match == nil {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	return match, nil
}

// ParseDueDate parses an optional YYYY-MM-DD due date.
func ParseDueDate(raw string) (*model.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	date, err := model.ParseDate(raw)
	if err != nil {
		return nil, errors.WithStack(port.NewValidationError("Due date must be a valid date (YYYY-MM-DD)"))
	}

	return &date, nil
}
