package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
database:
  driver: sqlite
  sqlite_path: data/test.db
storage:
  type: minio
`)
	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != "9090" || cfg.Database.Driver != "sqlite" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Import.BatchSize != 1000 || !cfg.Import.ArchivePayloads {
		t.Fatalf("import defaults not applied: %+v", cfg.Import)
	}
	if cfg.RateLimit.MaxRequests != 6000 || cfg.RateLimit.WindowMinutes != 1 {
		t.Fatalf("rate limit defaults not applied: %+v", cfg.RateLimit)
	}
	if cfg.Path != dir {
		t.Fatalf("path = %q, want %q", cfg.Path, dir)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, "database:\n  driver: mysql\nstorage:\n  type: minio\n")
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Fatalf("driver = %q, want env override", cfg.Database.Driver)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := map[string]string{
		"driver":     "database:\n  driver: oracle\nstorage:\n  type: minio\n",
		"batch size": "import:\n  batch_size: 0\nstorage:\n  type: minio\n",
		"rate limit": "rate_limit:\n  max_requests: -1\nstorage:\n  type: minio\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, content)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
