package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestServerMounts(t *testing.T) {
	echo := func(name string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, "%s:%s", name, r.URL.Path)
		})
	}

	server := NewServer(
		WithMount("/api/auth/", echo("auth")),
		WithMount("/api/", echo("api")),
		WithMount("/healthz", echo("health")),
	)

	handler := server.Handler()

	type testCase struct {
		Path     string
		Expected string
	}

	testCases := []testCase{
		{Path: "/api/auth/login", Expected: "auth:/login"},
		{Path: "/api/tasks", Expected: "api:/tasks"},
		{Path: "/api/tasks/overview", Expected: "api:/tasks/overview"},
		{Path: "/healthz", Expected: "health:/healthz"},
	}

	for _, tc := range testCases {
		t.Run(tc.Path, func(t *testing.T) {
			res := httptest.NewRecorder()
			handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, tc.Path, nil))

			if e, g := tc.Expected, res.Body.String(); e != g {
				t.Errorf("body: expected %v, got %v", e, g)
			}
		})
	}

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}
}

func TestServerCORS(t *testing.T) {
	server := NewServer(
		WithCORSAllowedOrigins("http://localhost:3000"),
		WithMount("/api/", http.NotFoundHandler()),
	)

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")

	res := httptest.NewRecorder()
	server.Handler().ServeHTTP(res, req)

	if e, g := "http://localhost:3000", res.Header().Get("Access-Control-Allow-Origin"); e != g {
		t.Errorf("Access-Control-Allow-Origin: expected %v, got %v", e, g)
	}
}

func TestServerGracefulShutdown(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	server := NewServer(
		WithShutdownTimeout(time.Second),
		WithMount("/ping", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "pong")
		})),
	)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, listener)
	}()

	res, err := http.Get("http://" + listener.Addr().String() + "/ping")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	body, err := io.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "pong", string(body); e != g {
		t.Errorf("body: expected %v, got %v", e, g)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
