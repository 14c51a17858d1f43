package gorm

import (
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/pkg/errors"
)

type Task struct {
	ID string `gorm:"primaryKey;autoIncrement:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Owner   *User
	OwnerID string `gorm:"index"`

	Title     string
	DueDate   *string
	Completed bool
}

type wrappedTask struct {
	t       *Task
	dueDate *model.Date
}

// ID implements model.Task.
func (w *wrappedTask) ID() model.TaskID {
	return model.TaskID(w.t.ID)
}

// Title implements model.Task.
func (w *wrappedTask) Title() string {
	return w.t.Title
}

// DueDate implements model.Task.
func (w *wrappedTask) DueDate() *model.Date {
	if w.dueDate == nil {
		return nil
	}

	dueDate := *w.dueDate

	return &dueDate
}

// Completed implements model.Task.
func (w *wrappedTask) Completed() bool {
	return w.t.Completed
}

// CreatedAt implements model.Task.
func (w *wrappedTask) CreatedAt() time.Time {
	return w.t.CreatedAt
}

// OwnerID implements model.OwnedTask.
func (w *wrappedTask) OwnerID() model.UserID {
	return model.UserID(w.t.OwnerID)
}

var _ model.OwnedTask = &wrappedTask{}

func wrapTask(t *Task) (*wrappedTask, error) {
	wrapped := &wrappedTask{t: t}

	if t.DueDate != nil {
		dueDate, err := model.ParseDate(*t.DueDate)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse due date of task '%s'", t.ID)
		}

		wrapped.dueDate = &dueDate
	}

	return wrapped, nil
}

func fromTask(t model.OwnedTask) *Task {
	return &Task{
		ID:        string(t.ID()),
		CreatedAt: t.CreatedAt(),
		OwnerID:   string(t.OwnerID()),
		Title:     t.Title(),
		DueDate:   fromDate(t.DueDate()),
		Completed: t.Completed(),
	}
}

func fromDate(d *model.Date) *string {
	if d == nil {
		return nil
	}

	raw := d.String()

	return &raw
}
