package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir runs the test from an empty directory so no stray .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	return dir
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want json", cfg.LogFormat)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if cfg.MaxDocumentBytes != 64*1024*1024 {
		t.Errorf("MaxDocumentBytes = %d, want 64 MB", cfg.MaxDocumentBytes)
	}
	if cfg.HasObjectStore() {
		t.Error("expected no object store by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	chdir(t)
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("WORKERS", "16")
	t.Setenv("S3_ENDPOINT", "minio.local:9000")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")
	t.Setenv("S3_USE_SSL", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Workers != 16 {
		t.Errorf("Workers = %d, want 16", cfg.Workers)
	}
	if !cfg.HasObjectStore() {
		t.Fatal("expected object store to be configured")
	}
	oc := cfg.ObjectStore()
	if oc.Endpoint != "minio.local:9000" || oc.AccessKey != "key" || oc.SecretKey != "secret" {
		t.Errorf("ObjectStore() = %+v", oc)
	}
	if oc.UseSSL {
		t.Error("expected UseSSL=false")
	}
	if oc.Region != "us-east-1" {
		t.Errorf("Region = %q, want us-east-1", oc.Region)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	clearEnv(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_FORMAT=console\nWORKERS=2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogFormat != "console" {
		t.Errorf("LogFormat = %q, want console from .env", cfg.LogFormat)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, the environment must win over .env", cfg.Workers)
	}
}

func validConfig() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "json",
		Workers:          4,
		MaxDocumentBytes: 1 << 20,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, `LOG_LEVEL must be one of trace, debug, info, warn, error, got "loud"`},
		{"bad format", func(c *Config) { c.LogFormat = "xml" }, "LOG_FORMAT must be one of json, console"},
		{"no workers", func(c *Config) { c.Workers = 0 }, "WORKERS must be at least 1"},
		{"too many workers", func(c *Config) { c.Workers = 1000 }, "WORKERS must be at most 256"},
		{"tiny documents", func(c *Config) { c.MaxDocumentBytes = 10 }, "MAX_DOCUMENT_BYTES must be at least 1024"},
		{"endpoint without port", func(c *Config) {
			c.S3Endpoint = "minio"
			c.S3AccessKey = "k"
			c.S3SecretKey = "s"
		}, "S3_ENDPOINT must be host:port"},
		{"endpoint without keys", func(c *Config) { c.S3Endpoint = "minio:9000" }, "S3_ACCESS_KEY is required when S3_ENDPOINT is set"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	c := validConfig()
	c.Workers = 0
	c.LogFormat = "xml"
	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"WORKERS", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}
