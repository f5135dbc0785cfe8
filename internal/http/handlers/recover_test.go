package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-playoffs-service/internal/domain/standings"
	"github.com/preston-bernstein/nba-playoffs-service/internal/testutil"
)

func TestRecoverWritesJSONError(t *testing.T) {
	svc := &stubService{standingsFn: func(int) []standings.Standing { panic("boom") }}
	logger, buf := testutil.NewBufferLogger()
	h := NewHandler(svc, testInfo, logger)

	rr := testutil.Serve(h.Recover(http.HandlerFunc(h.Standings)), http.MethodGet, "/standings", nil)

	body := testutil.AssertError(t, rr, http.StatusInternalServerError)
	if body.Error != "internal server error" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
	if !strings.Contains(buf.String(), "handler panic") {
		t.Fatalf("expected panic to be logged, got %s", buf.String())
	}
}

func TestRecoverPassesThrough(t *testing.T) {
	h := NewHandler(&stubService{}, testInfo, nil)
	rr := testutil.Serve(h.Recover(http.HandlerFunc(h.Health)), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRecoverRepanicsAbort(t *testing.T) {
	h := NewHandler(&stubService{}, testInfo, nil)
	abort := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic(http.ErrAbortHandler) })

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	testutil.Serve(h.Recover(abort), http.MethodGet, "/", nil)
}
