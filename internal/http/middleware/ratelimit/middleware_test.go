package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware(
		WithTrustHeaders(true),
		WithRate(time.Hour, 2),
		WithCache(10, time.Minute),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.Header.Set("X-Forwarded-For", remoteAddr)

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		return res
	}

	for i := 0; i < 2; i++ {
		res := do("10.0.0.1")
		if e, g := http.StatusOK, res.Code; e != g {
			t.Fatalf("request #%d: expected status %v, got %v", i, e, g)
		}

		if e, g := strconv.Itoa(1-i), res.Header().Get("X-RateLimit-Remaining"); e != g {
			t.Errorf("request #%d: X-RateLimit-Remaining: expected %v, got %v", i, e, g)
		}
	}

	res := do("10.0.0.1")
	if e, g := http.StatusTooManyRequests, res.Code; e != g {
		t.Fatalf("third request: expected status %v, got %v", e, g)
	}

	if res.Header().Get("Retry-After") == "" {
		t.Errorf("expected Retry-After header to be set")
	}

	if !strings.Contains(res.Body.String(), `"code": "rate_limited"`) {
		t.Errorf("body: expected rate_limited code, got %s", res.Body.String())
	}

	if e, g := http.StatusOK, do("10.0.0.2").Code; e != g {
		t.Errorf("other client: expected status %v, got %v", e, g)
	}
}

func TestClientKey(t *testing.T) {
	type testCase struct {
		Name         string
		TrustHeaders bool
		Header       http.Header
		Expected     string
	}

	testCases := []testCase{
		{Name: "RemoteAddr", Header: http.Header{"X-Forwarded-For": []string{"10.0.0.1"}}, Expected: "192.0.2.1"},
		{Name: "ForwardedFor", TrustHeaders: true, Header: http.Header{"X-Forwarded-For": []string{"10.0.0.1, 10.0.0.2"}}, Expected: "10.0.0.1"},
		{Name: "RealIP", TrustHeaders: true, Header: http.Header{"X-Real-Ip": []string{"10.0.0.3"}}, Expected: "10.0.0.3"},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header = tc.Header

			if e, g := tc.Expected, clientKey(req, tc.TrustHeaders); e != g {
				t.Errorf("clientKey(): expected %v, got %v", e, g)
			}
		})
	}
}
