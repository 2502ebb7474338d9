package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":5000" || cfg.DataSource.Benchmark != "^NSEI" || cfg.DataSource.Provider != "yahoo" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Indicators.VStop.ATRPeriod != 14 || cfg.Indicators.VStop.Multiplier != 2 || cfg.Indicators.VStop.Lookback != 1 {
		t.Errorf("vstop defaults = %+v", cfg.Indicators.VStop)
	}
	if !cfg.News.Enabled {
		t.Error("news should default to enabled")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if err := cfg.ValidateWatch(); err == nil {
		t.Error("watch needs symbols and telegram settings")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: ":8080"
data_source:
  provider: sqlite
  timeout: 5s
indicators:
  vstop:
    multiplier: 3
news:
  enabled: false
watchlist:
  timeframe: weekly
  symbols:
    - symbol: RELIANCE.NS
      company: Reliance Industries
telegram:
  bot_token: file-token
  chat_id: 42
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.DataSource.Provider != "sqlite" || cfg.DataSource.Timeout != 5*time.Second {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Indicators.VStop.Multiplier != 3 || cfg.Indicators.VStop.ATRPeriod != 14 {
		t.Errorf("vstop = %+v", cfg.Indicators.VStop)
	}
	if cfg.News.Enabled {
		t.Error("news.enabled false should be kept")
	}
	if cfg.Telegram.BotToken != "env-token" || cfg.Telegram.ChatID != 42 || cfg.Log.Level != "debug" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if len(cfg.Watchlist.Symbols) != 1 || cfg.Watchlist.Symbols[0].Company != "Reliance Industries" {
		t.Errorf("watchlist = %+v", cfg.Watchlist.Symbols)
	}
	if err := cfg.ValidateWatch(); err != nil {
		t.Errorf("ValidateWatch: %v", err)
	}
}

func TestLoad_WatchlistFromEnv(t *testing.T) {
	t.Setenv("WATCHLIST_SYMBOLS", "TCS.NS, INFY.NS,,")
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Watchlist.Symbols) != 2 || cfg.Watchlist.Symbols[1].Symbol != "INFY.NS" {
		t.Errorf("symbols = %+v", cfg.Watchlist.Symbols)
	}
}

func TestLoad_BadChatID(t *testing.T) {
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	if _, err := Load(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for non-numeric chat id")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }},
		{"negative multiplier", func(c *Config) { c.Indicators.VStop.Multiplier = -1 }},
		{"bad watchlist timeframe", func(c *Config) { c.Watchlist.Timeframe = "hourly" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.applyDefaults()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
