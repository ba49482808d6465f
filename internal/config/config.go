package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Browser BrowserConfig
	Scraper ScraperConfig
	Logging LoggingConfig
}

type BrowserConfig struct {
	Headless       bool
	Timeout        time.Duration
	ViewportWidth  int
	ViewportHeight int
	AcceptLanguage string
	TimezoneID     string
	Locale         string
}

type ScraperConfig struct {
	ExpandWait  time.Duration
	ClickSettle time.Duration
	PageSettle  time.Duration
	PageWait    time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Browser: BrowserConfig{
			Headless:       getBoolOrDefault("BROWSER_HEADLESS", true),
			Timeout:        getDurationOrDefault("BROWSER_TIMEOUT", 30*time.Second),
			ViewportWidth:  getIntOrDefault("BROWSER_VIEWPORT_WIDTH", 1920),
			ViewportHeight: getIntOrDefault("BROWSER_VIEWPORT_HEIGHT", 1080),
			AcceptLanguage: getEnvOrDefault("BROWSER_ACCEPT_LANGUAGE", "id-ID,id;q=0.9,en;q=0.8"),
			TimezoneID:     getEnvOrDefault("BROWSER_TIMEZONE", "Asia/Jakarta"),
			Locale:         getEnvOrDefault("BROWSER_LOCALE", "id-ID"),
		},
		Scraper: ScraperConfig{
			ExpandWait:  getDurationOrDefault("SCRAPER_EXPAND_WAIT", 500*time.Millisecond),
			ClickSettle: getDurationOrDefault("SCRAPER_CLICK_SETTLE", 200*time.Millisecond),
			PageSettle:  getDurationOrDefault("SCRAPER_PAGE_SETTLE", 700*time.Millisecond),
			PageWait:    getDurationOrDefault("SCRAPER_PAGE_WAIT", 10*time.Second),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scraper.PageWait <= 0 {
		return fmt.Errorf("SCRAPER_PAGE_WAIT must be positive")
	}

	if c.Scraper.ExpandWait < 0 || c.Scraper.ClickSettle < 0 || c.Scraper.PageSettle < 0 {
		return fmt.Errorf("scraper settle delays cannot be negative")
	}

	if c.Browser.ViewportWidth < 1 || c.Browser.ViewportHeight < 1 {
		return fmt.Errorf("browser viewport dimensions must be positive")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
