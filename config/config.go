package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration of the API and MCP binaries.
type Config struct {
	Environment    EnvironmentConfig    `mapstructure:"environment"`
	HTTPServer     HTTPServerConfig     `mapstructure:"http_server"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	RateLimit      RateLimitConfig      `mapstructure:"rate_limit"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Timezone       string               `mapstructure:"timezone"`
	Reminder       ReminderConfig       `mapstructure:"reminder"`
	Telegram       TelegramConfig       `mapstructure:"telegram"`
	GoogleCalendar GoogleCalendarConfig `mapstructure:"google_calendar"`
}

type EnvironmentConfig struct {
	Name string `mapstructure:"name"`
}

type HTTPServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type LoggerConfig struct {
	Level        string `mapstructure:"level"`
	Mode         string `mapstructure:"mode"`
	Encoding     string `mapstructure:"encoding"`
	ColorEnabled bool   `mapstructure:"color_enabled"`
}

type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"` // 0 disables limiting
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"` // ":memory:" for a throwaway store
}

type ReminderConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type TelegramConfig struct {
	BotToken   string `mapstructure:"bot_token"`
	WebhookURL string `mapstructure:"webhook_url"`
	ChatID     int64  `mapstructure:"chat_id"` // receives reminder notifications
}

// Enabled reports whether the bot is configured at all.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != ""
}

type GoogleCalendarConfig struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	TokenPath       string `mapstructure:"token_path"` // written by cmd/gcal-auth
	CalendarID      string `mapstructure:"calendar_id"`
}

// defaults also registers every key so that AutomaticEnv can override keys
// absent from the file (TELEGRAM_CHAT_ID, DATABASE_PATH, ...).
var defaults = map[string]any{
	"environment.name":                 "development",
	"http_server.port":                 8080,
	"http_server.mode":                 "debug",
	"logger.level":                     "debug",
	"logger.mode":                      "debug",
	"logger.encoding":                  "console",
	"logger.color_enabled":             true,
	"rate_limit.per_minute":            120,
	"database.path":                    "data/smart-todo.db",
	"timezone":                         "UTC",
	"reminder.enabled":                 true,
	"telegram.bot_token":               "",
	"telegram.webhook_url":             "",
	"telegram.chat_id":                 0,
	"google_calendar.credentials_path": "",
	"google_calendar.token_path":       "token.json",
	"google_calendar.calendar_id":      "primary",
}

// Load reads config.yaml from ./config, . or /etc/smart-todo/ (the file is
// optional) and applies environment overrides, e.g. HTTP_SERVER_PORT.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	for _, dir := range []string{"./config", ".", "/etc/smart-todo/"} {
		viper.AddConfigPath(dir)
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if c.RateLimit.PerMinute < 0 {
		return errors.New("rate_limit.per_minute must not be negative")
	}
	if c.Telegram.ChatID != 0 && !c.Telegram.Enabled() {
		return errors.New("telegram.chat_id requires telegram.bot_token")
	}
	return nil
}
