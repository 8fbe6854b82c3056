package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Fetch  FetchConfig  `yaml:"fetch" mapstructure:"fetch"`
	Window WindowConfig `yaml:"window" mapstructure:"window"`
	Report ReportConfig `yaml:"report" mapstructure:"report"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// FetchConfig configures the HTTP document fetcher.
type FetchConfig struct {
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
	MaxFilings  int    `yaml:"max_filings" mapstructure:"max_filings"`
}

// WindowConfig is the closed calendar-year range retained in reports.
// Filings (and endowment-derived years) outside the range are dropped.
type WindowConfig struct {
	StartYear int `yaml:"start_year" mapstructure:"start_year"`
	EndYear   int `yaml:"end_year" mapstructure:"end_year"`
}

// ReportConfig configures the XLSX report writer.
type ReportConfig struct {
	Output string `yaml:"output" mapstructure:"output"`
	Layout string `yaml:"layout" mapstructure:"layout"` // "sheets" or "append"
}

// CacheConfig configures the local document cache.
type CacheConfig struct {
	Path    string `yaml:"path" mapstructure:"path"`
	Disable bool   `yaml:"disable" mapstructure:"disable"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("NONPROFIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("fetch.user_agent", "nonprofit-cli/1.0")
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.max_filings", 5)
	v.SetDefault("window.start_year", 2018)
	v.SetDefault("window.end_year", 2022)
	v.SetDefault("report.output", "nonprofit-report.xlsx")
	v.SetDefault("report.layout", "sheets")
	v.SetDefault("cache.path", defaultCachePath())
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if cfg.Window.StartYear > cfg.Window.EndYear {
		return nil, eris.Errorf("config: window start year %d after end year %d",
			cfg.Window.StartYear, cfg.Window.EndYear)
	}

	return &cfg, nil
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "nonprofit-cache.db"
	}
	return filepath.Join(home, ".nonprofit-cli", "cache.db")
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
