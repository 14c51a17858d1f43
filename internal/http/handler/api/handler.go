package api

import (
	"net/http"

	"github.com/bornholm/mustdo/internal/core/service"
	"github.com/bornholm/mustdo/internal/http/middleware/authz"
)

type Handler struct {
	taskManager *service.TaskManager
	mux         *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(taskManager *service.TaskManager) *Handler {
	h := &Handler{
		taskManager: taskManager,
		mux:         &http.ServeMux{},
	}

	assertUser := authz.Middleware(nil, authz.IsAuthenticated)

	h.mux.Handle("GET /tasks", assertUser(http.HandlerFunc(h.handleListTasks)))
	h.mux.Handle("POST /tasks", assertUser(http.HandlerFunc(h.handleCreateTask)))
	h.mux.Handle("GET /tasks/overview", assertUser(http.HandlerFunc(h.handleOverview)))
	h.mux.Handle("GET /tasks/{taskID}", assertUser(http.HandlerFunc(h.handleGetTask)))
	h.mux.Handle("PUT /tasks/{taskID}", assertUser(http.HandlerFunc(h.handleUpdateTask)))
	h.mux.Handle("PATCH /tasks/{taskID}", assertUser(http.HandlerFunc(h.handleUpdateTask)))
	h.mux.Handle("DELETE /tasks/{taskID}", assertUser(http.HandlerFunc(h.handleDeleteTask)))

	return h
}

var _ http.Handler = &Handler{}
