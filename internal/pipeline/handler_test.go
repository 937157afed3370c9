package pipeline_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atelier-studio/atelier/internal/generation"
	"github.com/atelier-studio/atelier/internal/pipeline"
)

func setupMux(h *pipeline.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func newTestHandler(gen *fakeGenerator, store *fakeStore) *pipeline.Handler {
	return pipeline.NewRunner(gen, store, testLogger(), "en").Handler()
}

func TestHandlerSocial(t *testing.T) {
	t.Run("returns created result", func(t *testing.T) {
		gen := &fakeGenerator{output: socialOutput}
		store := &fakeStore{}
		mux := setupMux(newTestHandler(gen, store))

		body, _ := json.Marshal(socialBrief())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/generate/social", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
		}

		var result pipeline.Result
		if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if result.Content == nil || result.Content.Social == nil {
			t.Error("response should carry validated content")
		}
		if result.Project == nil {
			t.Error("response should carry the persisted project")
		}
	})

	t.Run("invalid json returns 400", func(t *testing.T) {
		mux := setupMux(newTestHandler(&fakeGenerator{}, &fakeStore{}))

		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/generate/social", bytes.NewReader([]byte("not json")))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("upstream failure returns 502", func(t *testing.T) {
		gen := &fakeGenerator{err: &generation.UpstreamError{Status: 500, Body: "boom"}}
		mux := setupMux(newTestHandler(gen, &fakeStore{}))

		body, _ := json.Marshal(socialBrief())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/generate/social", bytes.NewReader(body))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", rec.Code)
		}
	})

	t.Run("unusable output returns 502", func(t *testing.T) {
		gen := &fakeGenerator{output: "not structured output"}
		mux := setupMux(newTestHandler(gen, &fakeStore{}))

		body, _ := json.Marshal(socialBrief())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/generate/social", bytes.NewReader(body))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadGateway {
			t.Errorf("status = %d, want 502", rec.Code)
		}
	})

	t.Run("missing credential returns 500", func(t *testing.T) {
		gen := &fakeGenerator{err: generation.ErrMissingCredential}
		mux := setupMux(newTestHandler(gen, &fakeStore{}))

		body, _ := json.Marshal(socialBrief())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/generate/social", bytes.NewReader(body))
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
	})
}

func TestHandlerRoutes(t *testing.T) {
	h := newTestHandler(&fakeGenerator{}, &fakeStore{})
	group := h.Routes()

	if group.Prefix != "/generate" {
		t.Errorf("prefix = %q, want /generate", group.Prefix)
	}

	want := []struct {
		method  string
		pattern string
	}{
		{"POST", "/social"},
		{"POST", "/scripts"},
		{"POST", "/branding"},
	}

	if len(group.Routes) != len(want) {
		t.Fatalf("route count = %d, want %d", len(group.Routes), len(want))
	}

	for i, w := range want {
		r := group.Routes[i]
		if r.Method != w.method || r.Pattern != w.pattern {
			t.Errorf("route[%d] = %s %s, want %s %s", i, r.Method, r.Pattern, w.method, w.pattern)
		}
	}
}
