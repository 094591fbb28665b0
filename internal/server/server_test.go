package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type reportResponse struct {
	Parts   map[string]float64 `json:"parts"`
	Diagram struct {
		Title     string `json:"title"`
		Retro     bool   `json:"retro"`
		Currency  string `json:"currency"`
		TotalText string `json:"totalText"`
		Steps     []struct {
			Label     string `json:"label"`
			DeltaText string `json:"deltaText"`
		} `json:"steps"`
	} `json:"diagram"`
	Warnings []string `json:"warnings"`
}

func newTestHandler(maxBodySize int64) http.Handler {
	return NewHandler(zap.NewNop(), Options{
		MaxBodySize: maxBodySize,
		Version:     "1.2.3",
		Currency:    "€",
		Locale:      "en",
	})
}

func post(t *testing.T, handler http.Handler, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeReport(t *testing.T, rr *httptest.ResponseRecorder) reportResponse {
	t.Helper()
	var resp reportResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestHandleProgressiveSuccess(t *testing.T) {
	rr := post(t, newTestHandler(0), "/api/progressive", `{
		"qty": "100", "invoice": "1000", "dTrade": 10, "dSpecial": "5", "dQty": "2",
		"fakPack": "20", "fakFre": 30, "skonto": "3", "ownFreight": "15", "ownIns": "5", "ownOther": ""
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON content type, got %q", ct)
	}

	resp := decodeReport(t, rr)
	if resp.Parts["epTotal"] != 881.26 {
		t.Fatalf("expected epTotal 881.26, got %v", resp.Parts["epTotal"])
	}
	if resp.Parts["epUnit"] != 8.8126 {
		t.Fatalf("expected epUnit 8.8126, got %v", resp.Parts["epUnit"])
	}
	if resp.Diagram.Title != "Progressive calculation" || resp.Diagram.Retro {
		t.Fatalf("unexpected diagram header %+v", resp.Diagram)
	}
	if resp.Diagram.TotalText != "€ 881.26" {
		t.Fatalf("expected formatted total, got %q", resp.Diagram.TotalText)
	}
	if len(resp.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", resp.Warnings)
	}
}

func TestHandleRetrogradeSuccess(t *testing.T) {
	rr := post(t, newTestHandler(0), "/api/retrograde", `{
		"qty": 100, "epUnit": "8,8126", "own": "20", "skonto": "3",
		"fakPack": "20", "fakFre": "30", "dTrade": "10", "dSpecial": "5", "dQty": "2",
		"currency": "$"
	}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	resp := decodeReport(t, rr)
	if resp.Parts["invoice"] != 1000 {
		t.Fatalf("expected invoice 1000, got %v", resp.Parts["invoice"])
	}
	if resp.Parts["epTotal"] != 881.26 {
		t.Fatalf("expected epTotal derived from unit target, got %v", resp.Parts["epTotal"])
	}
	if !resp.Diagram.Retro || resp.Diagram.Currency != "$" {
		t.Fatalf("unexpected diagram header %+v", resp.Diagram)
	}
	if resp.Diagram.TotalText != "$ 1,000.00" {
		t.Fatalf("expected formatted invoice, got %q", resp.Diagram.TotalText)
	}
}

func TestHandleDegenerateBody(t *testing.T) {
	handler := newTestHandler(0)

	for _, body := range []string{"", "null", "{}", `{"qty": "abc", "invoice": "NaN"}`} {
		rr := post(t, handler, "/api/progressive", body)
		if rr.Code != http.StatusOK {
			t.Fatalf("body %q: expected status 200, got %d: %s", body, rr.Code, rr.Body.String())
		}
		resp := decodeReport(t, rr)
		for name, v := range resp.Parts {
			if v != 0 {
				t.Fatalf("body %q: expected %s = 0, got %v", body, name, v)
			}
		}
		if len(resp.Diagram.Steps) != 0 {
			t.Fatalf("body %q: expected no steps, got %d", body, len(resp.Diagram.Steps))
		}
	}
}

func TestHandleRetrogradeWarnsOnFullDiscount(t *testing.T) {
	rr := post(t, newTestHandler(0), "/api/retrograde", `{"qty": 1, "epTotal": 100, "dTrade": 100}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}

	resp := decodeReport(t, rr)
	if resp.Parts["invoice"] != 0 {
		t.Fatalf("expected invoice 0 for a 100%% discount, got %v", resp.Parts["invoice"])
	}
	if len(resp.Warnings) != 1 || !strings.Contains(resp.Warnings[0], "trade discount") {
		t.Fatalf("expected trade discount warning, got %v", resp.Warnings)
	}
}

func TestHandleInvalidJSON(t *testing.T) {
	for _, body := range []string{"{", "[1, 2]", `"text"`} {
		rr := post(t, newTestHandler(0), "/api/progressive", body)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected status 400, got %d", body, rr.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode error response: %v", err)
		}
		if !strings.Contains(resp["error"], "failed to decode fields") {
			t.Fatalf("expected decode error message, got %q", resp["error"])
		}
	}
}

func TestHandleBodyTooLarge(t *testing.T) {
	body := `{"invoice": "` + strings.Repeat("1", 256) + `"}`
	rr := post(t, newTestHandler(64), "/api/progressive", body)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected status 413, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if !strings.Contains(resp["error"], "exceeds limit") {
		t.Fatalf("expected body limit error message, got %q", resp["error"])
	}
}

func TestHandleMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(0)

	for _, path := range []string{"/api/progressive", "/api/retrograde"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected status 405, got %d", path, rr.Code)
		}
	}
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rr := httptest.NewRecorder()
	newTestHandler(0).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["version"] != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %q", resp["version"])
	}

	rr = httptest.NewRecorder()
	NewHandler(nil, Options{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	if !bytes.Contains(rr.Body.Bytes(), []byte(`"dev"`)) {
		t.Fatalf("expected dev version fallback, got %s", rr.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestHandler(0).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("unexpected health response %d %q", rr.Code, rr.Body.String())
	}
}

func TestServeStopsOnContextCancel(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	cfg.Address = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, zap.NewNop(), cfg, "test")
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
}
