package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kapu/hf-wrapped-go/internal/domain"
	"github.com/kapu/hf-wrapped-go/pkg/errors"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	result *domain.WrappedResult
	err    error
	inputs []domain.GenerateInput
}

func (f *fakeGenerator) Generate(ctx context.Context, input domain.GenerateInput) (*domain.WrappedResult, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func postWrapped(t *testing.T, generator WrappedGenerator, limiter *RateLimiter, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(generator, limiter, zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/wrapped", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleResult() *domain.WrappedResult {
	return &domain.WrappedResult{
		Profile: domain.Profile{Handle: "acme", SubjectType: domain.SubjectTypeUser},
		Year:    2025,
		Source:  domain.ResultSourceLive,
	}
}

func TestGenerateWrappedHandlerSuccess(t *testing.T) {
	gen := &fakeGenerator{result: sampleResult()}

	rec := postWrapped(t, gen, nil, `{"handle":"acme","year":2025}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var res domain.WrappedResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("response is not a wrapped result: %v", err)
	}
	if res.Profile.Handle != "acme" || res.Year != 2025 {
		t.Fatalf("unexpected payload: %+v", res)
	}
	if len(gen.inputs) != 1 || gen.inputs[0].Handle != "acme" {
		t.Fatalf("unexpected generator input: %+v", gen.inputs)
	}
}

func TestGenerateWrappedHandlerInvalidJSON(t *testing.T) {
	gen := &fakeGenerator{result: sampleResult()}

	rec := postWrapped(t, gen, nil, `{"handle":`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(gen.inputs) != 0 {
		t.Fatal("generator must not run on malformed input")
	}
}

func TestGenerateWrappedHandlerValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"handle too short", `{"handle":"x"}`},
		{"handle too long", `{"handle":"` + strings.Repeat("a", 81) + `"}`},
		{"year out of range", `{"handle":"acme","year":1999}`},
		{"bad subject type", `{"handle":"acme","subjectType":"group"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &fakeGenerator{result: sampleResult()}
			rec := postWrapped(t, gen, nil, tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if len(gen.inputs) != 0 {
				t.Fatal("generator must not run on invalid input")
			}
		})
	}
}

func TestGenerateWrappedHandlerNotFound(t *testing.T) {
	gen := &fakeGenerator{err: errors.NewNotFoundError("ghost", []string{"ghost"}, nil)}

	rec := postWrapped(t, gen, nil, `{"handle":"ghost"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ghost") {
		t.Fatalf("expected error body to name the handle, got %s", rec.Body.String())
	}
}

func TestGenerateWrappedHandlerRefreshClosed(t *testing.T) {
	gen := &fakeGenerator{err: errors.NewRefreshClosedError(2025)}

	rec := postWrapped(t, gen, nil, `{"handle":"acme","allowRefresh":true}`)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestGenerateWrappedHandlerInternalError(t *testing.T) {
	gen := &fakeGenerator{err: errors.NewAPIError("hub request failed: 500", http.StatusInternalServerError, nil)}

	rec := postWrapped(t, gen, nil, `{"handle":"acme"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGenerateWrappedHandlerRateLimited(t *testing.T) {
	gen := &fakeGenerator{result: sampleResult()}
	limiter := NewRateLimiter(time.Minute, 1)

	first := postWrapped(t, gen, limiter, `{"handle":"acme"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}

	second := postWrapped(t, gen, limiter, `{"handle":"acme"}`)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", second.Code)
	}
	if len(gen.inputs) != 1 {
		t.Fatal("limited request must not reach the generator")
	}
}

func TestHealthz(t *testing.T) {
	router := NewRouter(&fakeGenerator{result: sampleResult()}, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
