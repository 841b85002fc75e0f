package routing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/km-arc/go-strictdate/routing"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func do(t *testing.T, router *routing.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ── HTTP verbs ────────────────────────────────────────────────────────────────

func TestRouter_Get(t *testing.T) {
	r := routing.New()
	r.Get("/timestamps", okHandler)

	rr := do(t, r, http.MethodGet, "/timestamps")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /timestamps: got %d want 200", rr.Code)
	}
}

func TestRouter_Post(t *testing.T) {
	r := routing.New()
	r.Post("/timestamps/validate", okHandler)

	rr := do(t, r, http.MethodPost, "/timestamps/validate")
	if rr.Code != http.StatusOK {
		t.Errorf("POST /timestamps/validate: got %d want 200", rr.Code)
	}
}

func TestRouter_Any(t *testing.T) {
	r := routing.New()
	r.Any("/ping", okHandler)

	for _, method := range []string{"GET", "POST", "PUT", "PATCH", "DELETE"} {
		rr := do(t, r, method, "/ping")
		if rr.Code != http.StatusOK {
			t.Errorf("ANY %s /ping: got %d want 200", method, rr.Code)
		}
	}
}

// ── 404 for unregistered routes ──────────────────────────────────────────────

func TestRouter_NotFound(t *testing.T) {
	r := routing.New()
	rr := do(t, r, http.MethodGet, "/not-registered")
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

// ── Route params ─────────────────────────────────────────────────────────────

func TestRouter_Param(t *testing.T) {
	r := routing.New()
	r.Get("/timestamps/{value}", func(w http.ResponseWriter, req *http.Request) {
		value := routing.Param(req, "value")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(value))
	})

	rr := do(t, r, http.MethodGet, "/timestamps/2025-11-02T10:20:30Z")
	if rr.Code != http.StatusOK {
		t.Fatalf("got %d want 200", rr.Code)
	}
	if rr.Body.String() != "2025-11-02T10:20:30Z" {
		t.Errorf("got body %q want the raw timestamp", rr.Body.String())
	}
}

// ── Prefix / Group ───────────────────────────────────────────────────────────

func TestRouter_Prefix(t *testing.T) {
	r := routing.New()
	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Get("/timestamps", okHandler)
	})

	rr := do(t, r, http.MethodGet, "/api/v1/timestamps")
	if rr.Code != http.StatusOK {
		t.Errorf("GET /api/v1/timestamps: got %d want 200", rr.Code)
	}

	// Root must 404
	rr2 := do(t, r, http.MethodGet, "/timestamps")
	if rr2.Code != http.StatusNotFound {
		t.Errorf("GET /timestamps: expected 404, got %d", rr2.Code)
	}
}

func TestRouter_Group_Middleware(t *testing.T) {
	called := false
	mw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	r := routing.New()
	r.Group(func(g *routing.Router) {
		g.Middleware(mw)
		g.Get("/guarded", okHandler)
	})

	do(t, r, http.MethodGet, "/guarded")
	if !called {
		t.Error("expected middleware to be called")
	}
}
