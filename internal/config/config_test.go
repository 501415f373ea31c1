package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-bookingform/internal/logging"
	"github.com/goliatone/go-bookingform/pkg/storage"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Log:     logging.Config{Level: "info", Format: "console", OutputPath: "stderr"},
		Storage: storage.Config{Backend: storage.BackendFile, Redis: storage.RedisOptions{Addr: "localhost:6379", Prefix: "bookingform:"}},
		Server:  ServerConfig{Addr: ":8080", BasePath: "/"},

		PayloadCheck: true,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bookingform.yaml")
	body := `
log:
  level: debug
storage:
  backend: redis
  redis:
    addr: cache:6379
    db: 3
catalog:
  path: ./products.yaml
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("BOOKINGFORM_STORAGE_REDIS_DB", "5")
	t.Setenv("BOOKINGFORM_SERVER_ADDR", "127.0.0.1:9000")

	cfg, err := Load(Options{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Catalog.Path != "./products.yaml" {
		t.Fatalf("expected file values, got %#v", cfg)
	}
	if cfg.Storage.Backend != storage.BackendRedis || cfg.Storage.Redis.Addr != "cache:6379" {
		t.Fatalf("expected redis storage, got %#v", cfg.Storage)
	}
	if cfg.Storage.Redis.DB != 5 || cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("expected env overrides, got %#v", cfg)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	const key = "BOOKINGFORM_CATALOG_PATH"
	if _, set := os.LookupEnv(key); set {
		t.Skipf("%s already set", key)
	}
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte(key+"=/srv/catalog.yaml\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(Options{EnvFile: envFile})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != "/srv/catalog.yaml" {
		t.Fatalf("expected env file value, got %q", cfg.Catalog.Path)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected missing explicit file to fail")
	}
	if _, err := Load(Options{EnvFile: filepath.Join(t.TempDir(), "missing.env")}); err != nil {
		t.Fatalf("expected missing env file to be ignored, got %v", err)
	}

	t.Setenv("BOOKINGFORM_STORAGE_BACKEND", "s3")
	if _, err := Load(Options{}); err == nil {
		t.Fatalf("expected unknown backend to fail")
	}
}
