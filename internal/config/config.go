package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"CoinLife/internal/session"
	"CoinLife/internal/strategy"
)

// Config holds all application configuration.
type Config struct {
	Session struct {
		InitialCash       float64 `yaml:"initial_cash"`
		InitialPrice      float64 `yaml:"initial_price"`
		Days              int     `yaml:"days"`
		// BankruptThreshold is a pointer so an explicit 0 reaches Validate
		// instead of taking the default.
		BankruptThreshold *float64 `yaml:"bankrupt_threshold"`
	} `yaml:"session"`
	Night struct {
		Frames        int           `yaml:"frames"`
		FrameInterval time.Duration `yaml:"frame_interval"`
		PathBuffer    int           `yaml:"path_buffer"`
	} `yaml:"night"`
	Seed        int64  `yaml:"seed"`
	CatalogFile string `yaml:"catalog_file"`
	Database    struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
	Autoplay struct {
		Cron   string `yaml:"cron"`
		Policy string `yaml:"policy"`
	} `yaml:"autoplay"`
	// Telegram is optional. When both token and chat are set, settlements
	// and endings are pushed to the chat and bot commands are served.
	Telegram struct {
		BotToken    string `yaml:"bot_token"`
		ChatID      string `yaml:"chat_id"`
		Settlements bool   `yaml:"settlements"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// LoadDotEnv loads variables from a .env file if one exists. Variables that
// are already set are not overridden.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
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
	if v := os.Getenv("COINLIFE_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse COINLIFE_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("COINLIFE_CATALOG"); v != "" {
		cfg.CatalogFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("AUTOPLAY_CRON"); v != "" {
		cfg.Autoplay.Cron = v
	}
	if v := os.Getenv("AUTOPLAY_POLICY"); v != "" {
		cfg.Autoplay.Policy = v
	}
	if v := os.Getenv("NIGHT_FRAMES"); v != "" {
		var frames int
		if _, err := fmt.Sscanf(v, "%d", &frames); err == nil {
			cfg.Night.Frames = frames
		}
	}

	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	def := session.DefaultConfig()
	if cfg.Session.InitialCash == 0 {
		cfg.Session.InitialCash = def.InitialCash
	}
	if cfg.Session.InitialPrice == 0 {
		cfg.Session.InitialPrice = def.InitialPrice
	}
	if cfg.Session.Days == 0 {
		cfg.Session.Days = def.Days
	}
	if cfg.Session.BankruptThreshold == nil {
		threshold := def.BankruptThreshold
		cfg.Session.BankruptThreshold = &threshold
	}
	if cfg.Night.Frames == 0 {
		cfg.Night.Frames = def.Frames
	}
	if cfg.Night.PathBuffer == 0 {
		cfg.Night.PathBuffer = def.PathBuffer
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Autoplay.Cron == "" {
		cfg.Autoplay.Cron = "0 */10 * * * *"
	}
	if cfg.Autoplay.Policy == "" {
		cfg.Autoplay.Policy = "follow"
	}

	return cfg, nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Session.InitialCash <= 0 {
		return fmt.Errorf("session.initial_cash must be positive")
	}
	if c.Session.InitialPrice <= 0 {
		return fmt.Errorf("session.initial_price must be positive")
	}
	if c.Session.Days < 1 {
		return fmt.Errorf("session.days must be at least 1")
	}
	if t := c.Session.BankruptThreshold; t == nil || *t <= 0 || *t >= c.Session.InitialCash {
		return fmt.Errorf("session.bankrupt_threshold must be in (0, initial_cash)")
	}
	if c.Night.Frames < 1 {
		return fmt.Errorf("night.frames must be at least 1")
	}
	if c.Night.FrameInterval < 0 {
		return fmt.Errorf("night.frame_interval must not be negative")
	}
	if c.Night.PathBuffer < 1 {
		return fmt.Errorf("night.path_buffer must be at least 1")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	if !strategy.Known(c.Autoplay.Policy) {
		return fmt.Errorf("autoplay.policy must be one of %v", strategy.Names)
	}
	return nil
}

// TelegramEnabled reports whether the Telegram notifier should be started.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// SessionConfig returns the session settings.
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		InitialCash:       c.Session.InitialCash,
		InitialPrice:      c.Session.InitialPrice,
		Days:              c.Session.Days,
		BankruptThreshold: *c.Session.BankruptThreshold,
		Frames:            c.Night.Frames,
		FrameInterval:     c.Night.FrameInterval,
		PathBuffer:        c.Night.PathBuffer,
		Seed:              c.Seed,
	}
}
