package api

import (
	"net/http"
	"time"

	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/core/port"
	"github.com/bornholm/mustdo/internal/core/service"
	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/pkg/errors"
)

const (
	messageFetchFailed  = "Failed to fetch tasks"
	messageCreateFailed = "Failed to create task"
	messageUpdateFailed = "Failed to update task"
	messageDeleteFailed = "Failed to delete task"
	messageTaskNotFound = "Task not found"
	messageTaskConflict = "A task with this id already exists"
	messageTaskDeleted  = "Task deleted successfully"
)

type Task struct {
	ID        model.TaskID `json:"id"`
	Title     string       `json:"title"`
	DueDate   *model.Date  `json:"dueDate"`
	Completed bool         `json:"completed"`
	CreatedAt time.Time    `json:"createdAt"`
}

func toTask(t model.Task) Task {
	return Task{
		ID:        t.ID(),
		Title:     t.Title(),
		DueDate:   t.DueDate(),
		Completed: t.Completed(),
		CreatedAt: t.CreatedAt(),
	}
}

func toTasks(tasks []model.Task) []Task {
	res := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, toTask(t))
	}
	return res
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.taskManager.ListTasks(ctx, getContextUserID(ctx))
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err), messageFetchFailed)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, toTasks(tasks))
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	task, err := h.taskManager.GetTask(ctx, getContextUserID(ctx), taskID)
	if err != nil {
		handleTaskError(w, r, err, messageFetchFailed)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, toTask(task))
}

type CreateTaskRequest struct {
	ID        model.TaskID `json:"id"`
	Title     string       `json:"title"`
	DueDate   *string      `json:"dueDate"`
	Completed bool         `json:"completed"`
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateTaskRequest
	if err := common.ReadJSON(w, r, &req); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	task, err := h.taskManager.CreateTask(ctx, getContextUserID(ctx), service.CreateTaskRequest{
		ID:        req.ID,
		Title:     req.Title,
		DueDate:   dueDate,
		Completed: req.Completed,
	})
	if err != nil {
		handleTaskError(w, r, err, messageCreateFailed)
		return
	}

	common.WriteJSON(w, r, http.StatusCreated, toTask(task))
}

type UpdateTaskRequest struct {
	Title     *string                 `json:"title"`
	DueDate   model.Optional[*string] `json:"dueDate"`
	Completed *bool                   `json:"completed"`
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	var req UpdateTaskRequest
	if err := common.ReadJSON(w, r, &req); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	patch := model.TaskPatch{
		Title:     req.Title,
		Completed: req.Completed,
	}

	if raw, ok := req.DueDate.Get(); ok {
		dueDate, err := parseDueDate(raw)
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		patch.DueDate = model.Some(dueDate)
	}

	task, err := h.taskManager.UpdateTask(ctx, getContextUserID(ctx), taskID, patch)
	if err != nil {
		handleTaskError(w, r, err, messageUpdateFailed)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, toTask(task))
}

type DeleteTaskResponse struct {
	Message string `json:"message"`
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	taskID := model.TaskID(r.PathValue("taskID"))

	deleted, err := h.taskManager.DeleteTask(ctx, getContextUserID(ctx), taskID)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err), messageDeleteFailed)
		return
	}

	if !deleted {
		handleTaskError(w, r, errors.WithStack(port.ErrNotFound), messageDeleteFailed)
		return
	}

	common.WriteJSON(w, r, http.StatusOK, DeleteTaskResponse{Message: messageTaskDeleted})
}

func handleTaskError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		err = common.NewError(err.Error(), common.CodeNotFound, messageTaskNotFound, http.StatusNotFound)
	case errors.Is(err, port.ErrAlreadyExists):
		err = common.NewError(err.Error(), common.CodeConflict, messageTaskConflict, http.StatusConflict)
	}

	common.HandleError(w, r, errors.WithStack(err), fallbackMessage)
}
