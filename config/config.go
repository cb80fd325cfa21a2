package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"korea-realestate/auth"
)

// Config holds all application configuration. Values come from an optional
// YAML file, then .env, then the process environment, later sources winning.
type Config struct {
	Keys     KeysConfig     `yaml:"keys"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Log      LogConfig      `yaml:"log"`
	Server   ServerConfig   `yaml:"server"`
	Trend    TrendConfig    `yaml:"trend"`
}

// KeysConfig holds upstream credentials.
type KeysConfig struct {
	DataGoKr          string `yaml:"data_go_kr"`
	Onbid             string `yaml:"onbid"`
	OdcloudAPIKey     string `yaml:"odcloud_api_key"`
	OdcloudServiceKey string `yaml:"odcloud_service_key"`
}

type UpstreamConfig struct {
	DataGoKrBaseURL string `yaml:"data_go_kr_base_url"`
	OdcloudBaseURL  string `yaml:"odcloud_base_url"`
	TimeoutSec      int    `yaml:"timeout_sec"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// TrendConfig tunes the month fan-out used by the trend command and route.
type TrendConfig struct {
	Concurrency int `yaml:"concurrency"`
	RateLimitMs int `yaml:"rate_limit_ms"`
	MaxRetries  int `yaml:"max_retries"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() *Config {
	return &Config{
		Upstream: UpstreamConfig{
			DataGoKrBaseURL: "https://apis.data.go.kr",
			OdcloudBaseURL:  "https://api.odcloud.kr/api",
			TimeoutSec:      15,
		},
		Log:    LogConfig{Level: "info"},
		Server: ServerConfig{Addr: ":8080"},
		Trend: TrendConfig{
			Concurrency: 3,
			RateLimitMs: 500,
			MaxRetries:  1,
		},
	}
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	loadDotEnv()
	cfg := Defaults()
	cfg.applyEnv()
	return cfg
}

// LoadFile reads a YAML config file and lets .env and environment variables
// override it.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	loadDotEnv()
	cfg.applyEnv()
	return cfg, nil
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
}

func (c *Config) applyEnv() {
	c.Keys.DataGoKr = getEnv("DATA_GO_KR_API_KEY", c.Keys.DataGoKr)
	c.Keys.Onbid = getEnv("ONBID_API_KEY", c.Keys.Onbid)
	c.Keys.OdcloudAPIKey = getEnv("ODCLOUD_API_KEY", c.Keys.OdcloudAPIKey)
	c.Keys.OdcloudServiceKey = getEnv("ODCLOUD_SERVICE_KEY", c.Keys.OdcloudServiceKey)

	c.Upstream.DataGoKrBaseURL = getEnv("DATA_GO_KR_BASE_URL", c.Upstream.DataGoKrBaseURL)
	c.Upstream.OdcloudBaseURL = getEnv("ODCLOUD_BASE_URL", c.Upstream.OdcloudBaseURL)
	c.Upstream.TimeoutSec = getEnvInt("HTTP_TIMEOUT_SEC", c.Upstream.TimeoutSec)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("LOG_FILE", c.Log.File)

	c.Server.Addr = getEnv("SERVER_ADDR", c.Server.Addr)

	c.Trend.Concurrency = getEnvInt("TREND_CONCURRENCY", c.Trend.Concurrency)
	c.Trend.RateLimitMs = getEnvInt("TREND_RATE_LIMIT_MS", c.Trend.RateLimitMs)
	c.Trend.MaxRetries = getEnvInt("TREND_MAX_RETRIES", c.Trend.MaxRetries)
}

// Credentials returns the key material for auth.NewResolver.
func (c *Config) Credentials() auth.Credentials {
	return auth.Credentials{
		DataGoKrKey:       c.Keys.DataGoKr,
		OnbidKey:          c.Keys.Onbid,
		OdcloudAPIKey:     c.Keys.OdcloudAPIKey,
		OdcloudServiceKey: c.Keys.OdcloudServiceKey,
	}
}

// HTTPTimeout returns the upstream request timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.Upstream.TimeoutSec <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Upstream.TimeoutSec) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
