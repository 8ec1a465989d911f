package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"trendcheck/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"log"`
	News struct {
		Watchlist    []string      `yaml:"watchlist"`
		TickInterval time.Duration `yaml:"tick_interval"`
		Retention    time.Duration `yaml:"retention"`
		GoogleNews   struct {
			Enabled       bool          `yaml:"enabled"`
			PollInterval  time.Duration `yaml:"poll_interval"`
			Language      string        `yaml:"language"`
			Country       string        `yaml:"country"`
			PerQueryItems int           `yaml:"per_query_items"`
		} `yaml:"google_news"`
		Reuters struct {
			Enabled      bool          `yaml:"enabled"`
			PollInterval time.Duration `yaml:"poll_interval"`
			Feeds        []string      `yaml:"feeds"`
		} `yaml:"reuters"`
		Sec struct {
			Enabled      bool          `yaml:"enabled"`
			PollInterval time.Duration `yaml:"poll_interval"`
			AtomURL      string        `yaml:"atom_url"`
		} `yaml:"sec"`
		Fmp struct {
			Enabled      bool          `yaml:"enabled"`
			PollInterval time.Duration `yaml:"poll_interval"`
			APIKey       string        `yaml:"api_key"`
			Limit        int           `yaml:"limit"`
		} `yaml:"fmp"`
	} `yaml:"news"`
	Analysis struct {
		JobTimeout time.Duration  `yaml:"job_timeout"`
		Companies  []CompanySeed  `yaml:"companies"`
		Remote     struct {
			Enabled     bool          `yaml:"enabled"`
			BaseURL     string        `yaml:"base_url"`
			APIKey      string        `yaml:"api_key"`
			Timeout     time.Duration `yaml:"timeout"`
			MinSpacing  time.Duration `yaml:"min_spacing"`
			TargetLang  string        `yaml:"target_lang"`
		} `yaml:"remote"`
	} `yaml:"analysis"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
}

// CompanySeed is a directory entry: a company name, its ticker, and aliases.
type CompanySeed struct {
	Name    string   `yaml:"name"`
	Ticker  string   `yaml:"ticker"`
	Aliases []string `yaml:"aliases"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		c.News.Fmp.APIKey = v
	}
	if v := os.Getenv("WATCHLIST"); v != "" {
		c.News.Watchlist = util.SplitCSV(v)
	}
	if v := os.Getenv("ANALYSIS_API_URL"); v != "" {
		c.Analysis.Remote.BaseURL = v
	}
	if v := os.Getenv("ANALYSIS_API_KEY"); v != "" {
		c.Analysis.Remote.APIKey = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if c.Log.Output == "" {
		c.Log.Output = "stdout"
	}
	if c.News.TickInterval == 0 {
		c.News.TickInterval = 30 * time.Second
	}
	if c.News.Retention == 0 {
		c.News.Retention = 72 * time.Hour
	}
	if c.News.GoogleNews.Language == "" {
		c.News.GoogleNews.Language = "en-US"
	}
	if c.News.GoogleNews.Country == "" {
		c.News.GoogleNews.Country = "US"
	}
	if c.News.GoogleNews.PerQueryItems == 0 {
		c.News.GoogleNews.PerQueryItems = 25
	}
	if c.News.Sec.AtomURL == "" {
		c.News.Sec.AtomURL = "https://www.sec.gov/cgi-bin/browse-edgar?action=getcurrent&output=atom"
	}
	if c.News.Fmp.Limit == 0 {
		c.News.Fmp.Limit = 50
	}
	if c.Analysis.JobTimeout == 0 {
		c.Analysis.JobTimeout = 60 * time.Second
	}
	if c.Analysis.Remote.Timeout == 0 {
		c.Analysis.Remote.Timeout = 15 * time.Second
	}
	if c.Analysis.Remote.MinSpacing == 0 {
		c.Analysis.Remote.MinSpacing = 30 * time.Second
	}
	if c.Analysis.Remote.TargetLang == "" {
		c.Analysis.Remote.TargetLang = "lt"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.News.TickInterval < time.Second {
		return fmt.Errorf("news.tick_interval must be at least 1s")
	}
	if c.News.Fmp.Enabled && c.News.Fmp.APIKey == "" {
		return fmt.Errorf("news.fmp.api_key is required when fmp is enabled")
	}
	if c.News.Reuters.Enabled && len(c.News.Reuters.Feeds) == 0 {
		return fmt.Errorf("news.reuters.feeds cannot be empty when reuters is enabled")
	}
	if c.Analysis.Remote.Enabled && c.Analysis.Remote.BaseURL == "" {
		return fmt.Errorf("analysis.remote.base_url is required when remote engine is enabled")
	}
	return nil
}
