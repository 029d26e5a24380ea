package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const testYAML = `
app:
  port: 3000
  gin_mode: test
  hydration_fallback: 250ms

backend:
  auth_base_url: ""
  requests_base_url: ""
  timeout: 10s

redis:
  addr: localhost:6379

session:
  secret: ""
  issuer: hemolink-web
  ttl: 168h
  cookie_name: hemolink_session

google:
  client_id: ""
  client_secret: ""
  redirect_url: http://localhost:3000/auth/google/callback

casbin:
  model_path: config/casbin_model.conf
  policy_path: config/casbin_policy.csv
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(testYAML), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BACKEND_APP_URL", "http://backend.local")
	t.Setenv("BACKEND_APP_URL1", "http://requests.local")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("GOOGLE_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_CLIENT_SECRET", "client-secret")
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	path := writeTestConfig(t)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.AuthBaseURL != "http://backend.local" {
		t.Errorf("unexpected auth base %q", cfg.AuthBaseURL)
	}
	if cfg.RequestsBaseURL != "http://requests.local" {
		t.Errorf("unexpected requests base %q", cfg.RequestsBaseURL)
	}
	if cfg.SessionTTL != 168*time.Hour {
		t.Errorf("unexpected session TTL %v", cfg.SessionTTL)
	}
	if cfg.HydrationFallback != 250*time.Millisecond {
		t.Errorf("unexpected hydration fallback %v", cfg.HydrationFallback)
	}
	if cfg.BackendTimeout != 10*time.Second {
		t.Errorf("unexpected backend timeout %v", cfg.BackendTimeout)
	}
	if cfg.CookieName != "hemolink_session" {
		t.Errorf("unexpected cookie name %q", cfg.CookieName)
	}
}

func TestLoadFrom_FailsFastOnMissingSecret(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "")
	path := writeTestConfig(t)

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected failure for missing session secret")
	}
	if !strings.Contains(err.Error(), "SESSION_SECRET") {
		t.Errorf("error should name the missing variable, got %v", err)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected failure for a missing config file")
	}
}

func TestLoadFrom_BadDuration(t *testing.T) {
	setRequiredEnv(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	bad := strings.Replace(testYAML, "timeout: 10s", "timeout: soon", 1)
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected failure for an unparseable duration")
	}
}
