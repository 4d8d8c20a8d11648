package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OddsAPI.Sport != "baseball_mlb" {
		t.Errorf("sport default = %q", cfg.OddsAPI.Sport)
	}
	if cfg.OddsAPI.Markets != "batter_home_runs" {
		t.Errorf("markets default = %q", cfg.OddsAPI.Markets)
	}
	if cfg.Timezone != "America/New_York" {
		t.Errorf("timezone default = %q", cfg.Timezone)
	}
	if cfg.Cache.File == "" || cfg.Export.Dir == "" || cfg.Schedule.UpdateCron == "" {
		t.Error("cache file, export dir and cron must have defaults")
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
odds_api:
  api_key: from-file
timezone: America/Chicago
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("THE_ODDS_API_KEY", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OddsAPI.APIKey != "from-env" {
		t.Errorf("env must override file, got %q", cfg.OddsAPI.APIKey)
	}
	if cfg.Timezone != "America/Chicago" {
		t.Errorf("timezone = %q, want file value", cfg.Timezone)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	os.Unsetenv("THE_ODDS_API_KEY")
	cfg.OddsAPI.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("missing API key must fail validation")
	}
	cfg.OddsAPI.APIKey = "k"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
	cfg.Timezone = "Mars/Olympus"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown timezone must fail validation")
	}
}
