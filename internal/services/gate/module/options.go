package module

import (
	"time"

	"gatehouse/internal/platform/config"
)

// Options controls gate behavior and GitHub client settings
type Options struct {
	TokensCSV  string
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// FromConfig reads GATE_* values from process config/env
func FromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("GATE_")
	return Options{
		TokensCSV:  gc.MayString("GH_TOKENS", ""),
		BaseURL:    gc.MayString("GH_BASE_URL", ""),
		UserAgent:  gc.MayString("GH_UA", "gatehouse"),
		Timeout:    gc.MayDuration("GH_TIMEOUT", 10*time.Second),
		MaxRetries: gc.MayInt("GH_MAX_RETRIES", 3),
		RetryBase:  gc.MayDuration("GH_RETRY_BASE", 500*time.Millisecond),
	}
}
