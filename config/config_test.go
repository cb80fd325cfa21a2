package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"DATA_GO_KR_API_KEY", "HTTP_TIMEOUT_SEC", "SERVER_ADDR", "TREND_CONCURRENCY"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q; want :8080", cfg.Server.Addr)
	}
	if cfg.HTTPTimeout() != 15*time.Second {
		t.Errorf("HTTPTimeout() = %v; want 15s", cfg.HTTPTimeout())
	}
	if cfg.Trend.Concurrency != 3 {
		t.Errorf("Trend.Concurrency = %d; want 3", cfg.Trend.Concurrency)
	}
}

func TestLoadFileEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
keys:
  data_go_kr: from-file
  odcloud_service_key: svc
upstream:
  timeout_sec: 30
trend:
  concurrency: 5
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATA_GO_KR_API_KEY", "from-env")
	t.Setenv("HTTP_TIMEOUT_SEC", "")
	t.Setenv("TREND_CONCURRENCY", "not-a-number")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	creds := cfg.Credentials()
	if creds.DataGoKrKey != "from-env" {
		t.Errorf("DataGoKrKey = %q; want from-env", creds.DataGoKrKey)
	}
	if creds.OdcloudServiceKey != "svc" {
		t.Errorf("OdcloudServiceKey = %q; want svc", creds.OdcloudServiceKey)
	}
	if cfg.HTTPTimeout() != 30*time.Second {
		t.Errorf("HTTPTimeout() = %v; want 30s", cfg.HTTPTimeout())
	}
	if cfg.Trend.Concurrency != 5 {
		t.Errorf("Trend.Concurrency = %d; want 5 (invalid env ignored)", cfg.Trend.Concurrency)
	}
	if cfg.Upstream.DataGoKrBaseURL != "https://apis.data.go.kr" {
		t.Errorf("default base URL lost: %q", cfg.Upstream.DataGoKrBaseURL)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
