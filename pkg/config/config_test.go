package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Enabled {
		t.Error("Default().Enabled = false, want true")
	}
	if !cfg.Record {
		t.Error("Default().Record = false, want true")
	}
	if cfg.PassthroughOnError {
		t.Error("Default().PassthroughOnError = true, want false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Default().LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogFormat != "text" {
		t.Errorf("Default().LogFormat = %q, want %q", cfg.LogFormat, "text")
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() with empty environment = %+v, want %+v", cfg, Default())
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("INTERCEPT_ENABLED", "false")
	t.Setenv("INTERCEPT_RECORD", "false")
	t.Setenv("INTERCEPT_PASSTHROUGH_ON_ERROR", "true")
	t.Setenv("INTERCEPT_LOG_LEVEL", "debug")
	t.Setenv("INTERCEPT_LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Enabled {
		t.Error("Enabled = true, want false")
	}
	if cfg.Record {
		t.Error("Record = true, want false")
	}
	if !cfg.PassthroughOnError {
		t.Error("PassthroughOnError = false, want true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat = %q, want %q", cfg.LogFormat, "json")
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("INTERCEPT_ENABLED", "not-a-bool")
	if _, err := Load(); err == nil {
		t.Error("Load() with invalid bool error = nil, want error")
	}
}
