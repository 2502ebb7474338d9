package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"StockAnalyzer/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr       string `yaml:"addr"`
		CORSOrigin string `yaml:"cors_origin"`
	} `yaml:"server"`
	DataSource struct {
		Provider       string        `yaml:"provider"` // yahoo or sqlite
		Benchmark      string        `yaml:"benchmark"`
		Timeout        time.Duration `yaml:"timeout"`
		RequestsPerSec int           `yaml:"requests_per_sec"`
		MaxRetries     int           `yaml:"max_retries"`
	} `yaml:"data_source"`
	Indicators struct {
		VStop struct {
			ATRPeriod  int     `yaml:"atr_period"`
			Multiplier float64 `yaml:"multiplier"`
			Lookback   int     `yaml:"lookback"`
		} `yaml:"vstop"`
	} `yaml:"indicators"`
	News struct {
		Enabled            bool              `yaml:"enabled"`
		MaxItems           int               `yaml:"max_items"`
		ReliableSources    []string          `yaml:"reliable_sources"`
		IrrelevantKeywords []string          `yaml:"irrelevant_keywords"`
		ScripCodes         map[string]string `yaml:"scrip_codes"`
	} `yaml:"news"`
	Watchlist struct {
		Symbols   []WatchItem `yaml:"symbols"`
		Timeframe string      `yaml:"timeframe"`
		Cron      string      `yaml:"cron"`
	} `yaml:"watchlist"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   int64  `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level   string `yaml:"level"`
		Format  string `yaml:"format"`
		Tracing bool   `yaml:"tracing"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// WatchItem is one watchlist entry. Company is used for the news lookup.
type WatchItem struct {
	Symbol  string `yaml:"symbol"`
	Company string `yaml:"company"`
}

// Load reads an optional .env file and the YAML config at path, then applies
// environment overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	cfg.News.Enabled = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"SERVER_ADDR":         &c.Server.Addr,
		"CORS_ORIGIN":         &c.Server.CORSOrigin,
		"DATA_PROVIDER":       &c.DataSource.Provider,
		"BENCHMARK_SYMBOL":    &c.DataSource.Benchmark,
		"TELEGRAM_BOT_TOKEN":  &c.Telegram.BotToken,
		"SQLITE_PATH":         &c.Database.SQLitePath,
		"LOG_LEVEL":           &c.Log.Level,
		"LOG_FORMAT":          &c.Log.Format,
		"HTTPS_PROXY":         &c.Proxy,
		"WATCHLIST_CRON":      &c.Watchlist.Cron,
		"WATCHLIST_TIMEFRAME": &c.Watchlist.Timeframe,
	}
	for key, dst := range strs {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("TELEGRAM_CHAT_ID: %w", err)
		}
		c.Telegram.ChatID = id
	}
	if v := os.Getenv("LOG_TRACING_ENABLED"); v != "" {
		c.Log.Tracing = v == "true"
	}
	if v := os.Getenv("NEWS_ENABLED"); v != "" {
		c.News.Enabled = v == "true"
	}
	if v := os.Getenv("WATCHLIST_SYMBOLS"); v != "" {
		c.Watchlist.Symbols = nil
		for _, sym := range strings.Split(v, ",") {
			if sym = strings.TrimSpace(sym); sym != "" {
				c.Watchlist.Symbols = append(c.Watchlist.Symbols, WatchItem{Symbol: sym})
			}
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = "*"
	}
	if c.DataSource.Provider == "" {
		c.DataSource.Provider = "yahoo"
	}
	if c.DataSource.Benchmark == "" {
		c.DataSource.Benchmark = "^NSEI"
	}
	if c.DataSource.Timeout == 0 {
		c.DataSource.Timeout = 30 * time.Second
	}
	if c.DataSource.RequestsPerSec == 0 {
		c.DataSource.RequestsPerSec = 5
	}
	if c.DataSource.MaxRetries == 0 {
		c.DataSource.MaxRetries = 3
	}
	if c.Indicators.VStop.ATRPeriod == 0 {
		c.Indicators.VStop.ATRPeriod = 14
	}
	if c.Indicators.VStop.Multiplier == 0 {
		c.Indicators.VStop.Multiplier = 2.0
	}
	if c.Indicators.VStop.Lookback == 0 {
		c.Indicators.VStop.Lookback = 1
	}
	if c.News.MaxItems == 0 {
		c.News.MaxItems = 20
	}
	if c.Watchlist.Timeframe == "" {
		c.Watchlist.Timeframe = string(model.TimeframeDaily)
	}
	if c.Watchlist.Cron == "" {
		// 16:00 IST on weekdays, after the NSE close.
		c.Watchlist.Cron = "CRON_TZ=Asia/Kolkata 0 0 16 * * 1-5"
	}
	if c.Database.SQLitePath == "" {
		c.Database.SQLitePath = "data/stockanalyzer.db"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the settings every command depends on.
func (c *Config) Validate() error {
	switch c.DataSource.Provider {
	case "yahoo", "sqlite":
	default:
		return fmt.Errorf("data_source.provider must be yahoo or sqlite, got %q", c.DataSource.Provider)
	}
	if c.DataSource.RequestsPerSec < 0 || c.DataSource.MaxRetries < 0 {
		return fmt.Errorf("data_source.requests_per_sec and max_retries must not be negative")
	}
	v := c.Indicators.VStop
	if v.ATRPeriod <= 0 || v.Multiplier <= 0 || v.Lookback <= 0 {
		return fmt.Errorf("indicators.vstop parameters must be positive")
	}
	if _, err := model.ParseTimeframe(c.Watchlist.Timeframe); err != nil {
		return fmt.Errorf("watchlist.timeframe: %w", err)
	}
	return nil
}

// ValidateWatch additionally checks what the scheduled watchlist needs.
func (c *Config) ValidateWatch() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Watchlist.Symbols) == 0 {
		return fmt.Errorf("watchlist.symbols is required")
	}
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}
