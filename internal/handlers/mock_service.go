package handlers

import (
	"context"
	"io"

	"github.com/fgeck/pihub/internal/config"
	"github.com/fgeck/pihub/internal/models"
	"github.com/fgeck/pihub/internal/services/history"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ---- Service Mocks ----

type mockCEC struct {
	sendResult  *models.CECResult
	powerResult *models.PowerResult

	sendCalls   int
	lastCommand string
	onCalls     int
	offCalls    int
	powerCalls  int
}

func (m *mockCEC) Send(ctx context.Context, command string) (*models.CECResult, error) {
	m.sendCalls++
	m.lastCommand = command
	return m.sendResult, nil
}

func (m *mockCEC) TurnOn(ctx context.Context) (*models.CECResult, error) {
	m.onCalls++
	return m.sendResult, nil
}

func (m *mockCEC) TurnOff(ctx context.Context) (*models.CECResult, error) {
	m.offCalls++
	return m.sendResult, nil
}

func (m *mockCEC) QueryPower(ctx context.Context) (*models.PowerResult, error) {
	m.powerCalls++
	return m.powerResult, nil
}

type mockWOL struct {
	result *models.WakeResult

	calls   int
	lastMAC string
}

func (m *mockWOL) Wake(ctx context.Context, mac string) (*models.WakeResult, error) {
	m.calls++
	m.lastMAC = mac
	return m.result, nil
}

// ---- Shared Test Helpers ----

func okCEC() *models.CECResult {
	return &models.CECResult{Output: "done"}
}

func testRegistry(targets map[string]models.Target) *config.Registry {
	return config.NewRegistry(targets)
}

func defaultConfig() models.HubConfig {
	return models.HubConfig{
		TVEnabled:  true,
		WOLEnabled: true,
		Identity:   models.IdentityConfig{Header: "Tailscale-User-Login"},
	}
}

func newTestRouter(cfg models.HubConfig, cecSvc *mockCEC, wolSvc *mockWOL, reg *config.Registry) *gin.Engine {
	return newTestHandler(cfg, cecSvc, wolSvc, reg).InitRoutes()
}

func newTestHandler(cfg models.HubConfig, cecSvc *mockCEC, wolSvc *mockWOL, reg *config.Registry) *Handler {
	gin.SetMode(gin.TestMode)
	if reg == nil {
		reg = testRegistry(nil)
	}
	return NewHandler(cfg, cecSvc, wolSvc, history.New(), reg, zerolog.New(io.Discard))
}
