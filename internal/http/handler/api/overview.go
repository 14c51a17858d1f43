package api

import (
	"net/http"
	"time"

	"github.com/bornholm/mustdo/internal/core/agenda"
	"github.com/bornholm/mustdo/internal/core/model"
	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/pkg/errors"
)

type OverviewResponse struct {
	Now    time.Time      `json:"now"`
	MustDo []OverviewTask `json:"mustDo"`
	All    []OverviewTask `json:"all"`
}

type OverviewTask struct {
	Task
	Label string `json:"label,omitempty"`
}

func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	loc, err := getQueryLocation(r.URL.Query(), "tz", time.Local)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	overview, err := h.taskManager.Overview(ctx, getContextUserID(ctx), loc)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err), messageFetchFailed)
		return
	}

	res := OverviewResponse{
		Now:    overview.Now,
		MustDo: toOverviewTasks(overview.MustDo, overview.Now),
		All:    toOverviewTasks(overview.All, overview.Now),
	}

	common.WriteJSON(w, r, http.StatusOK, res)
}

func toOverviewTasks(tasks []model.Task, now time.Time) []OverviewTask {
	res := make([]OverviewTask, 0, len(tasks))
	for _, t := range tasks {
		item := OverviewTask{Task: toTask(t)}

		if dueDate := t.DueDate(); dueDate != nil {
			item.Label = agenda.LabelOf(*dueDate, now).String()
		}

		res = append(res, item)
	}
	return res
}
