package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, "id-ID", cfg.Browser.Locale)
	assert.Equal(t, "Asia/Jakarta", cfg.Browser.TimezoneID)

	assert.Equal(t, 500*time.Millisecond, cfg.Scraper.ExpandWait)
	assert.Equal(t, 200*time.Millisecond, cfg.Scraper.ClickSettle)
	assert.Equal(t, 700*time.Millisecond, cfg.Scraper.PageSettle)
	assert.Equal(t, 10*time.Second, cfg.Scraper.PageWait)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BROWSER_HEADLESS", "false")
	t.Setenv("SCRAPER_PAGE_WAIT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, 5*time.Second, cfg.Scraper.PageWait)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadIgnoresMalformedEnvValues(t *testing.T) {
	t.Setenv("SCRAPER_PAGE_WAIT", "not-a-duration")
	t.Setenv("BROWSER_VIEWPORT_WIDTH", "wide")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Scraper.PageWait)
	assert.Equal(t, 1920, cfg.Browser.ViewportWidth)
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Scraper.PageWait = 0
	assert.Error(t, cfg.Validate())

	cfg.Scraper.PageWait = 10 * time.Second
	cfg.Scraper.PageSettle = -time.Second
	assert.Error(t, cfg.Validate())

	cfg.Scraper.PageSettle = 700 * time.Millisecond
	cfg.Browser.ViewportWidth = 0
	assert.Error(t, cfg.Validate())
}
