package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ASSISTANT_NAME", "OPENAI_API_KEY", "OPENAI_MODEL",
		"API_TIMEOUT_SECONDS", "API_MAX_RETRIES", "DATABASE_URL",
		"PIPOO_DATA_DIR", "LISTEN_TIMEOUT_SECONDS", "LOCAL_TIMEZONE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.AssistantName != "Pipoo" {
		t.Errorf("AssistantName = %q, want Pipoo", cfg.AssistantName)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want gpt-4o-mini", cfg.OpenAIModel)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %v, want 30s", cfg.APITimeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.ListenTimeout != 8*time.Second {
		t.Errorf("ListenTimeout = %v, want 8s", cfg.ListenTimeout)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir is empty")
	}
	if cfg.LocalTimezone == nil {
		t.Error("LocalTimezone is nil")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ASSISTANT_NAME", "Jarvis")
	t.Setenv("API_MAX_RETRIES", "5")
	t.Setenv("API_TIMEOUT_SECONDS", "10")
	t.Setenv("PIPOO_DATA_DIR", "/tmp/pipoo-test")
	t.Setenv("LOCAL_TIMEZONE", "UTC")

	cfg := Load()

	if cfg.AssistantName != "Jarvis" {
		t.Errorf("AssistantName = %q, want Jarvis", cfg.AssistantName)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	if cfg.APITimeout != 10*time.Second {
		t.Errorf("APITimeout = %v, want 10s", cfg.APITimeout)
	}
	if cfg.DataDir != "/tmp/pipoo-test" {
		t.Errorf("DataDir = %q, want /tmp/pipoo-test", cfg.DataDir)
	}
	if cfg.LocalTimezone != time.UTC {
		t.Errorf("LocalTimezone = %v, want UTC", cfg.LocalTimezone)
	}
}

func TestLoadBadInt(t *testing.T) {
	t.Setenv("API_MAX_RETRIES", "lots")

	cfg := Load()
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want default 3 on unparseable value", cfg.MaxRetries)
	}
}
