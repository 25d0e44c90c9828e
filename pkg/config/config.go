package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
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
	Cache struct {
		Backend string `yaml:"backend"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
		TTL struct {
			Markets     time.Duration `yaml:"markets"`
			Calendar    time.Duration `yaml:"calendar"`
			News        time.Duration `yaml:"news"`
			FearGreed   time.Duration `yaml:"fear_greed"`
			Summary     time.Duration `yaml:"summary"`
			NewsSummary time.Duration `yaml:"news_summary"`
		} `yaml:"ttl"`
	} `yaml:"cache"`
	Providers struct {
		Timeout time.Duration `yaml:"timeout"`
		Yahoo   struct {
			QuoteURL string `yaml:"quote_url"`
			ChartURL string `yaml:"chart_url"`
		} `yaml:"yahoo"`
		CoinGecko struct {
			BaseURL string `yaml:"base_url"`
			APIKey  string `yaml:"api_key"`
		} `yaml:"coingecko"`
		Finnhub struct {
			BaseURL string `yaml:"base_url"`
			APIKey  string `yaml:"api_key"`
		} `yaml:"finnhub"`
		CryptoPanic struct {
			BaseURL string `yaml:"base_url"`
			APIKey  string `yaml:"api_key"`
		} `yaml:"cryptopanic"`
		Alternative struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"alternative"`
		Upbit struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"upbit"`
		Coinbase struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"coinbase"`
		Binance struct {
			BaseURL string `yaml:"base_url"`
		} `yaml:"binance"`
	} `yaml:"providers"`
	Translate struct {
		Timeout        time.Duration `yaml:"timeout"`
		ArticleTimeout time.Duration `yaml:"article_timeout"`
		Gemini         struct {
			APIKey string `yaml:"api_key"`
			Model  string `yaml:"model"`
		} `yaml:"gemini"`
		OpenAI struct {
			APIKey string `yaml:"api_key"`
			Model  string `yaml:"model"`
		} `yaml:"openai"`
	} `yaml:"translate"`
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
// Every provider credential is independently optional; an absent key degrades
// that provider's contribution instead of failing startup.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Providers.Finnhub.APIKey = v
	}
	if v := os.Getenv("COINGECKO_API_KEY"); v != "" {
		c.Providers.CoinGecko.APIKey = v
	}
	if v := os.Getenv("CRYPTOPANIC_API_KEY"); v != "" {
		c.Providers.CryptoPanic.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Translate.Gemini.APIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.Translate.OpenAI.APIKey = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		c.Cache.Backend = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Providers.Timeout == 0 {
		c.Providers.Timeout = 10 * time.Second
	}
	if c.Translate.Timeout == 0 {
		c.Translate.Timeout = 15 * time.Second
	}
	if c.Translate.ArticleTimeout == 0 {
		c.Translate.ArticleTimeout = 5 * time.Second
	}
	if c.Cache.TTL.Markets == 0 {
		c.Cache.TTL.Markets = 5 * time.Minute
	}
	if c.Cache.TTL.Calendar == 0 {
		c.Cache.TTL.Calendar = time.Hour
	}
	if c.Cache.TTL.News == 0 {
		c.Cache.TTL.News = 15 * time.Minute
	}
	if c.Cache.TTL.FearGreed == 0 {
		c.Cache.TTL.FearGreed = time.Hour
	}
	if c.Cache.TTL.Summary == 0 {
		c.Cache.TTL.Summary = 10 * time.Minute
	}
	if c.Cache.TTL.NewsSummary == 0 {
		c.Cache.TTL.NewsSummary = 24 * time.Hour
	}
	if c.Translate.Gemini.Model == "" {
		c.Translate.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Translate.OpenAI.Model == "" {
		c.Translate.OpenAI.Model = "gpt-4o-mini"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for redis backend")
	}
	return nil
}
