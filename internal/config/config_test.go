package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SAWMILL_ENDPOINT", "SAWMILL_API_KEY", "SAWMILL_TIMEOUT",
		"SAWMILL_STORE_PATH", "SAWMILL_LOG_VIEW", "SAWMILL_MESSAGE_FIELDS",
		"SAWMILL_LOG_SOURCES", "SAWMILL_PERSIST",
		"SAWMILL_LOG_LEVEL", "SAWMILL_LOCALE", "SAWMILL_VERSION",
	} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.API.Endpoint != "http://localhost:5601" {
		t.Fatalf("unexpected default endpoint: %q", cfg.API.Endpoint)
	}
	if cfg.API.APIKey != "" {
		t.Fatalf("expected empty APIKey, got %q", cfg.API.APIKey)
	}
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("expected default timeout 30s, got %v", cfg.API.Timeout)
	}
	if cfg.Resolve.LogViewID != "default" {
		t.Fatalf("expected default log view 'default', got %q", cfg.Resolve.LogViewID)
	}
	if cfg.Resolve.MessageFields != nil {
		t.Fatalf("expected nil message fields, got %v", cfg.Resolve.MessageFields)
	}
	if cfg.Resolve.Persist {
		t.Fatal("expected default Persist=false")
	}
	if cfg.Output.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.Output.LogLevel)
	}
}

func TestLoad_MessageFieldsList(t *testing.T) {
	clearEnv(t)
	os.Setenv("SAWMILL_MESSAGE_FIELDS", "log.message, msg,,message")
	defer os.Unsetenv("SAWMILL_MESSAGE_FIELDS")

	cfg := Load()

	want := []string{"log.message", "msg", "message"}
	if len(cfg.Resolve.MessageFields) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), cfg.Resolve.MessageFields)
	}
	for i, w := range want {
		if cfg.Resolve.MessageFields[i] != w {
			t.Fatalf("field %d: expected %q, got %q", i, w, cfg.Resolve.MessageFields[i])
		}
	}
}

func TestLoad_StaticSources(t *testing.T) {
	clearEnv(t)
	os.Setenv("SAWMILL_LOG_SOURCES", "logs-app-*,logs-infra-*")
	defer os.Unsetenv("SAWMILL_LOG_SOURCES")

	cfg := Load()
	if len(cfg.Resolve.StaticSources) != 2 {
		t.Fatalf("expected 2 sources, got %v", cfg.Resolve.StaticSources)
	}
}

func TestLoad_TimeoutEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv("SAWMILL_TIMEOUT", "5s")
	defer os.Unsetenv("SAWMILL_TIMEOUT")

	cfg := Load()
	if cfg.API.Timeout != 5*time.Second {
		t.Fatalf("expected timeout 5s, got %v", cfg.API.Timeout)
	}
}

func TestLoad_TimeoutInvalidFallsBack(t *testing.T) {
	clearEnv(t)
	os.Setenv("SAWMILL_TIMEOUT", "soon")
	defer os.Unsetenv("SAWMILL_TIMEOUT")

	cfg := Load()
	if cfg.API.Timeout != 30*time.Second {
		t.Fatalf("expected fallback timeout 30s, got %v", cfg.API.Timeout)
	}
}

func TestLoad_PersistEnv(t *testing.T) {
	clearEnv(t)
	os.Setenv("SAWMILL_PERSIST", "true")
	defer os.Unsetenv("SAWMILL_PERSIST")

	cfg := Load()
	if !cfg.Resolve.Persist {
		t.Fatal("expected Persist=true")
	}
}

// --- Validation tests ---

func validConfig(t *testing.T) Config {
	t.Helper()
	storePath := filepath.Join(t.TempDir(), "logviews.yaml")
	if err := os.WriteFile(storePath, []byte("logViews: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return Config{
		API: APIConfig{
			Endpoint: "http://localhost:5601",
			APIKey:   "tok_123",
			Timeout:  30 * time.Second,
		},
		Resolve: ResolveConfig{
			StorePath: storePath,
			LogViewID: "default",
		},
		Output: OutputConfig{LogLevel: "info"},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error for valid config, got: %v", err)
	}
}

func TestValidate_EmptyStorePathAllowed(t *testing.T) {
	cfg := validConfig(t)
	cfg.Resolve.StorePath = ""
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected nil error for empty store path, got: %v", err)
	}
}

func TestValidate_MissingAPIKey(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.APIKey = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "SAWMILL_API_KEY") {
		t.Fatalf("expected error to mention 'SAWMILL_API_KEY', got: %v", err)
	}
}

func TestValidate_MissingStoreFile(t *testing.T) {
	cfg := validConfig(t)
	cfg.Resolve.StorePath = "/nonexistent/logviews.yaml"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing store file")
	}
	if !strings.Contains(err.Error(), "store") {
		t.Fatalf("expected error to mention 'store', got: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := validConfig(t)
	cfg.API.APIKey = ""
	cfg.API.Timeout = -1 * time.Second
	cfg.Resolve.LogViewID = ""
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for multiple bad fields")
	}
	msg := err.Error()
	for _, want := range []string{"SAWMILL_API_KEY", "timeout", "log view ID"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected error to mention %q, got: %v", want, msg)
		}
	}
}

func TestVersion_IsSet(t *testing.T) {
	if Version == "" {
		t.Fatal("expected non-empty Version")
	}
}
