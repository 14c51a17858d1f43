package model

import (
	"time"

	"github.com/rs/xid"
)

type TaskID string

func NewTaskID() TaskID {
	return TaskID(xid.New().String())
}

type Task interface {
	WithID[TaskID]
	WithCreation

	Title() string
	DueDate() *Date
	Completed() bool
}

type OwnedTask interface {
	Task
	WithOwner
}

type BaseTask struct {
	id        TaskID
	title     string
	dueDate   *Date
	completed bool
	createdAt time.Time
}

// ID implements Task.
func (t *BaseTask) ID() TaskID {
	return t.id
}

// Title implements Task.
func (t *BaseTask) Title() string {
	return t.title
}

// DueDate implements Task.
func (t *BaseTask) DueDate() *Date {
	if t.dueDate == nil {
		return nil
	}

	dueDate := *t.dueDate

	return &dueDate
}

// Completed implements Task.
func (t *BaseTask) Completed() bool {
	return t.completed
}

// CreatedAt implements Task.
func (t *BaseTask) CreatedAt() time.Time {
	return t.createdAt
}

func (t *BaseTask) SetTitle(title string) {
	t.title = title
}

func (t *BaseTask) SetDueDate(dueDate *Date) {
	if dueDate == nil {
		t.dueDate = nil
		return
	}

	value := *dueDate
	t.dueDate = &value
}

func (t *BaseTask) SetCompleted(completed bool) {
	t.completed = completed
}

var _ Task = &BaseTask{}

func NewTask(id TaskID, title string, dueDate *Date, completed bool, createdAt time.Time) *BaseTask {
	task := &BaseTask{
		id:        id,
		title:     title,
		completed: completed,
		createdAt: createdAt,
	}

	task.SetDueDate(dueDate)

	return task
}

func CopyTask(t Task) *BaseTask {
	return NewTask(t.ID(), t.Title(), t.DueDate(), t.Completed(), t.CreatedAt())
}

type BaseOwnedTask struct {
	*BaseTask
	ownerID UserID
}

// OwnerID implements OwnedTask.
func (t *BaseOwnedTask) OwnerID() UserID {
	return t.ownerID
}

var _ OwnedTask = &BaseOwnedTask{}

func NewOwnedTask(ownerID UserID, task Task) *BaseOwnedTask {
	return &BaseOwnedTask{
		BaseTask: CopyTask(task),
		ownerID:  ownerID,
	}
}
