package config

import (
	"context"
	"log/slog"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.GinMode != "release" {
		t.Errorf("Server.GinMode = %q, want release", cfg.Server.GinMode)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Model.Path != "model/air_quality_gbt.json" {
		t.Errorf("Model.Path = %q", cfg.Model.Path)
	}
	if cfg.App.MaxLocations != 100 {
		t.Errorf("App.MaxLocations = %d, want 100", cfg.App.MaxLocations)
	}
	if cfg.GetServerAddr() != ":8080" {
		t.Errorf("GetServerAddr() = %q, want :8080", cfg.GetServerAddr())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("AQ_API_SERVER_PORT", "9090")
	t.Setenv("AQ_API_MODEL_PATH", "/opt/models/aq.json")
	t.Setenv("AQ_API_APP_MAXLOCATIONS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Model.Path != "/opt/models/aq.json" {
		t.Errorf("Model.Path = %q, want /opt/models/aq.json", cfg.Model.Path)
	}
	if cfg.App.MaxLocations != 10 {
		t.Errorf("App.MaxLocations = %d, want 10", cfg.App.MaxLocations)
	}
}

func TestLoadRejectsNonPositiveMaxLocations(t *testing.T) {
	viper.Reset()
	t.Setenv("AQ_API_APP_MAXLOCATIONS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for maxLocations = 0")
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantDebug bool
	}{
		{"default info text", "info", "text", false},
		{"debug json", "debug", "json", true},
		{"unknown level falls back to info", "loud", "text", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Log: LogConfig{Level: tt.level, Format: tt.format}}
			logger := cfg.NewLogger()
			if logger == nil {
				t.Fatal("NewLogger() returned nil")
			}
			if got := logger.Enabled(context.Background(), slog.LevelDebug); got != tt.wantDebug {
				t.Errorf("Enabled(debug) = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}
