package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	OddsAPI struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Sport   string `yaml:"sport"`
		Markets string `yaml:"markets"`
		Regions string `yaml:"regions"`
	} `yaml:"odds_api"`
	Cache struct {
		File      string `yaml:"file"`
		RedisAddr string `yaml:"redis_addr"`
		RedisKey  string `yaml:"redis_key"`
	} `yaml:"cache"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Export struct {
		Dir string `yaml:"dir"`
	} `yaml:"export"`
	Schedule struct {
		UpdateCron string `yaml:"update_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Timezone string `yaml:"timezone"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("THE_ODDS_API_KEY"); v != "" {
		cfg.OddsAPI.APIKey = v
	}
	if v := os.Getenv("ODDS_API_BASE_URL"); v != "" {
		cfg.OddsAPI.BaseURL = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("EXPORT_DIR"); v != "" {
		cfg.Export.Dir = v
	}
	if v := os.Getenv("CRON_UPDATE"); v != "" {
		cfg.Schedule.UpdateCron = v
	}

	// Defaults
	if cfg.OddsAPI.BaseURL == "" {
		cfg.OddsAPI.BaseURL = "https://api.the-odds-api.com/v4"
	}
	if cfg.OddsAPI.Sport == "" {
		cfg.OddsAPI.Sport = "baseball_mlb"
	}
	if cfg.OddsAPI.Markets == "" {
		cfg.OddsAPI.Markets = "batter_home_runs"
	}
	if cfg.OddsAPI.Regions == "" {
		cfg.OddsAPI.Regions = "us"
	}
	if cfg.Cache.File == "" {
		cfg.Cache.File = "data/daily_cache.json"
	}
	if cfg.Cache.RedisKey == "" {
		cfg.Cache.RedisKey = "homerun:snapshot"
	}
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "public/api/v1"
	}
	if cfg.Schedule.UpdateCron == "" {
		// every 2 hours during the baseball day, 10 AM - 10 PM ET
		cfg.Schedule.UpdateCron = "0 0 10-22/2 * * *"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "America/New_York"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.OddsAPI.APIKey == "" {
		return fmt.Errorf("odds_api.api_key is required")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the reference timezone. Validate must have passed.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
