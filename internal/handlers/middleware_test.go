package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fgeck/pihub/internal/models"
)

func TestIdentityGate_MissingHeaderForbidden(t *testing.T) {
	cfg := defaultConfig()
	cfg.Identity.Required = true
	wolSvc := &mockWOL{result: sentResult("AA:BB:CC:DD:EE:FF")}
	r := newTestRouter(cfg, &mockCEC{}, wolSvc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wol", bytes.NewBufferString(`{"mac": "AA:BB:CC:DD:EE:FF"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.OK || resp.Error != "forbidden" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if wolSvc.calls != 0 {
		t.Fatalf("wake should not run when forbidden, calls=%d", wolSvc.calls)
	}
}

func TestIdentityGate_HeaderPresent(t *testing.T) {
	cfg := defaultConfig()
	cfg.Identity.Required = true
	wolSvc := &mockWOL{result: sentResult("AA:BB:CC:DD:EE:FF")}
	r := newTestRouter(cfg, &mockCEC{}, wolSvc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wol", bytes.NewBufferString(`{"mac": "AA:BB:CC:DD:EE:FF"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Tailscale-User-Login", "alex@example.com")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if wolSvc.calls != 1 {
		t.Fatalf("expected one wake, got %d", wolSvc.calls)
	}
}

func TestIdentityGate_BlankHeaderForbidden(t *testing.T) {
	cfg := defaultConfig()
	cfg.Identity.Required = true
	r := newTestRouter(cfg, &mockCEC{}, &mockWOL{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wol", bytes.NewBufferString(`{"mac": "AA:BB:CC:DD:EE:FF"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Tailscale-User-Login", "   ")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestIdentityGate_DisabledByDefault(t *testing.T) {
	wolSvc := &mockWOL{result: sentResult("AA:BB:CC:DD:EE:FF")}
	r := newTestRouter(defaultConfig(), &mockCEC{}, wolSvc, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/wol", bytes.NewBufferString(`{"mac": "AA:BB:CC:DD:EE:FF"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if wolSvc.calls != 1 {
		t.Fatalf("expected one wake, got %d", wolSvc.calls)
	}
}

// GET /wol stays open even when the gate is on: only wakes mutate state.
func TestIdentityGate_HealthUnaffected(t *testing.T) {
	cfg := models.HubConfig{
		WOLEnabled: true,
		Identity:   models.IdentityConfig{Required: true, Header: "Tailscale-User-Login"},
	}
	r := newTestRouter(cfg, &mockCEC{}, &mockWOL{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/wol", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}
