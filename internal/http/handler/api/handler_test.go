package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bornholm/mustdo/internal/adapter/jwt"
	"github.com/bornholm/mustdo/internal/adapter/memory"
	"github.com/bornholm/mustdo/internal/core/service"
	"github.com/bornholm/mustdo/internal/crypto"
	"github.com/bornholm/mustdo/internal/http/handler/common"
	"github.com/bornholm/mustdo/internal/http/middleware/authn/token"
	"github.com/bornholm/mustdo/internal/http/middleware/bridge"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	_ "time/tzdata"
)

type testEnv struct {
	handler http.Handler
	auth    *service.AuthManager
}

func newTestEnv(now time.Time) *testEnv {
	store := memory.NewStore()
	auth := service.NewAuthManager(store, jwt.NewIssuer([]byte("test")), crypto.NewBcryptHasher(bcrypt.MinCost))
	tasks := service.NewTaskManager(store, service.WithTaskManagerClock(func() time.Time { return now }))

	authnHandler := token.NewHandler(auth)
	api := NewHandler(tasks)

	return &testEnv{
		handler: authnHandler.Middleware()(bridge.Middleware(store)(api)),
		auth:    auth,
	}
}

func (e *testEnv) login(t *testing.T, username string) string {
	session, err := e.auth.Register(context.Background(), username, "secret")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return session.Token
}

func (e *testEnv) do(t *testing.T, token string, method string, path string, body any, out any) int {
	var payload bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			payload.WriteString(raw)
		} else if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	req := httptest.NewRequest(method, path, &payload)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res := httptest.NewRecorder()
	e.handler.ServeHTTP(res, req)

	t.Logf("%s %s -> %d %s", method, path, res.Code, res.Body.String())

	if out != nil {
		if err := json.Unmarshal(res.Body.Bytes(), out); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	return res.Code
}

func TestTaskLifecycle(t *testing.T) {
	env := newTestEnv(time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC))
	alice := env.login(t, "alice")

	var created Task
	status := env.do(t, alice, http.MethodPost, "/tasks", `{"id":"task-1","title":"  Buy milk ","dueDate":"2024-06-11"}`, &created)
	if e, g := http.StatusCreated, status; e != g {
		t.Fatalf("create: expected status %v, got %v", e, g)
	}

	if e, g := "Buy milk", created.Title; e != g {
		t.Errorf("created.Title: expected %v, got %v", e, g)
	}

	if created.DueDate == nil || created.DueDate.String() != "2024-06-11" {
		t.Errorf("created.DueDate: expected 2024-06-11, got %v", created.DueDate)
	}

	var errRes common.ErrorResponse

	status = env.do(t, alice, http.MethodPost, "/tasks", `{"id":"task-1","title":"Again"}`, &errRes)
	if e, g := http.StatusConflict, status; e != g {
		t.Errorf("duplicate create: expected status %v, got %v", e, g)
	}

	status = env.do(t, alice, http.MethodPost, "/tasks", `{"title":"   "}`, &errRes)
	if e, g := http.StatusBadRequest, status; e != g {
		t.Errorf("empty title: expected status %v, got %v", e, g)
	}

	if e, g := "Title is required", errRes.Error; e != g {
		t.Errorf("errRes.Error: expected %v, got %v", e, g)
	}

	status = env.do(t, alice, http.MethodPost, "/tasks", `{"title":"Bad date","dueDate":"tomorrow"}`, &errRes)
	if e, g := http.StatusBadRequest, status; e != g {
		t.Errorf("invalid due date: expected status %v, got %v", e, g)
	}

	var generated Task
	status = env.do(t, alice, http.MethodPost, "/tasks", `{"title":"Someday","dueDate":null}`, &generated)
	if e, g := http.StatusCreated, status; e != g {
		t.Fatalf("create without id: expected status %v, got %v", e, g)
	}

	if generated.ID == "" {
		t.Errorf("generated.ID: expected generated identifier")
	}

	var updated Task
	status = env.do(t, alice, http.MethodPatch, "/tasks/task-1", `{"completed":true}`, &updated)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("patch: expected status %v, got %v", e, g)
	}

	if !updated.Completed || updated.Title != "Buy milk" || updated.DueDate == nil {
		t.Errorf("patch: unexpected task %s", spew.Sdump(updated))
	}

	status = env.do(t, alice, http.MethodPut, "/tasks/task-1", `{"dueDate":null}`, &updated)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("put: expected status %v, got %v", e, g)
	}

	if updated.DueDate != nil || !updated.Completed {
		t.Errorf("put: unexpected task %s", spew.Sdump(updated))
	}

	var tasks []Task
	status = env.do(t, alice, http.MethodGet, "/tasks", nil, &tasks)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("list: expected status %v, got %v", e, g)
	}

	if e, g := 2, len(tasks); e != g {
		t.Errorf("len(tasks): expected %v, got %v", e, g)
	}

	var deleted DeleteTaskResponse
	status = env.do(t, alice, http.MethodDelete, "/tasks/task-1", nil, &deleted)
	if e, g := http.StatusOK, status; e != g {
		t.Fatalf("delete: expected status %v, got %v", e, g)
	}

	if e, g := "Task deleted successfully", deleted.Message; e != g {
		t.Errorf("deleted.Message: expected %v, got %v", e, g)
	}

	status = env.do(t, alice, http.MethodDelete, "/tasks/task-1", nil, &errRes)
	if e, g := http.StatusNotFound, status; e != g {
		t.Errorf("delete again: expected status %v, got %v", e, g)
	}

	if e, g := "Task not found", errRes.Error; e != g {
		t.Errorf("errRes.Error: expected %v, got %v", e, g)
	}
}

func TestOwnerScoping(t *testing.T) {
	env := newTestEnv(time.Now())
	alice := env.login(t, "alice")
	bob := env.login(t, "bob")

	if e, g := http.StatusCreated, env.do(t, alice, http.MethodPost, "/tasks", `{"id":"secret","title":"Secret"}`, nil); e != g {
		t.Fatalf("create: expected status %v, got %v", e, g)
	}

	var errRes common.ErrorResponse

	if e, g := http.StatusNotFound, env.do(t, bob, http.MethodGet, "/tasks/secret", nil, &errRes); e != g {
		t.Errorf("get: expected status %v, got %v", e, g)
	}

	if e, g := http.StatusNotFound, env.do(t, bob, http.MethodPatch, "/tasks/secret", `{"title":"Mine"}`, &errRes); e != g {
		t.Errorf("patch: expected status %v, got %v", e, g)
	}

	if e, g := http.StatusNotFound, env.do(t, bob, http.MethodDelete, "/tasks/secret", nil, &errRes); e != g {
		t.Errorf("delete: expected status %v, got %v", e, g)
	}

	var tasks []Task
	if e, g := http.StatusOK, env.do(t, bob, http.MethodGet, "/tasks", nil, &tasks); e != g {
		t.Fatalf("list: expected status %v, got %v", e, g)
	}

	if e, g := 0, len(tasks); e != g {
		t.Errorf("len(tasks): expected %v, got %v", e, g)
	}

	if e, g := http.StatusUnauthorized, env.do(t, "", http.MethodGet, "/tasks", nil, &errRes); e != g {
		t.Errorf("anonymous: expected status %v, got %v", e, g)
	}

	if e, g := common.CodeUnauthorized, errRes.Code; e != g {
		t.Errorf("errRes.Code: expected %v, got %v", e, g)
	}
}

func TestOverview(t *testing.T) {
	// 23:30 UTC on June 9th is already June 10th in Paris
	env := newTestEnv(time.Date(2024, time.June, 9, 23, 30, 0, 0, time.UTC))
	alice := env.login(t, "alice")

	payloads := []string{
		`{"id":"A","title":"A","dueDate":"2024-06-09"}`,
		`{"id":"B","title":"B","dueDate":"2024-06-10"}`,
		`{"id":"C","title":"C","dueDate":"2024-06-11"}`,
		`{"id":"D","title":"D","dueDate":"2024-06-12"}`,
		`{"id":"E","title":"E"}`,
		`{"id":"F","title":"F","dueDate":"2024-06-08","completed":true}`,
	}

	for _, p := range payloads {
		if e, g := http.StatusCreated, env.do(t, alice, http.MethodPost, "/tasks", p, nil); e != g {
			t.Fatalf("create %s: expected status %v, got %v", p, e, g)
		}
	}

	var overview OverviewResponse
	if e, g := http.StatusOK, env.do(t, alice, http.MethodGet, "/tasks/overview?tz=Europe/Paris", nil, &overview); e != g {
		t.Fatalf("overview: expected status %v, got %v", e, g)
	}

	type item struct {
		ID    string
		Label string
	}

	toItems := func(tasks []OverviewTask) []item {
		items := make([]item, 0, len(tasks))
		for _, t := range tasks {
			items = append(items, item{string(t.ID), t.Label})
		}
		return items
	}

	expectedMustDo := []item{{"A", "Overdue"}, {"B", "Today"}, {"C", "Tomorrow"}, {"F", "Overdue"}}
	expectedAll := []item{{"D", "Jun 12, 2024"}, {"E", ""}}

	if e, g := spew.Sdump(expectedMustDo), spew.Sdump(toItems(overview.MustDo)); e != g {
		t.Errorf("overview.MustDo: expected %s, got %s", e, g)
	}

	if e, g := spew.Sdump(expectedAll), spew.Sdump(toItems(overview.All)); e != g {
		t.Errorf("overview.All: expected %s, got %s", e, g)
	}

	var errRes common.ErrorResponse
	if e, g := http.StatusBadRequest, env.do(t, alice, http.MethodGet, "/tasks/overview?tz=Mars/Olympus", nil, &errRes); e != g {
		t.Errorf("unknown tz: expected status %v, got %v", e, g)
	}
}
