package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats-web/internal/config"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
)

func testConfig() config.Config {
	return config.Config{
		AppEnv:          config.EnvDev,
		ServiceName:     "football-stats-web-test",
		HTTPAddr:        ":0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		StatsAPIBaseURL: "http://127.0.0.1:1",
		StatsAPITimeout: time.Second,
		SessionTTL:      time.Minute,
		FetchWorkers:    2,
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := testConfig()
	cfg.HTTPAddr = ""

	if _, err := New(cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestNew_ServesHomeAndHealth(t *testing.T) {
	a, err := New(testConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	defer a.Close()

	for _, path := range []string{"/", "/healthz"} {
		rec := httptest.NewRecorder()
		a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected status 200, got %d", path, rec.Code)
		}
	}
}
