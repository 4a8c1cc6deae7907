package config

import (
	"os"
	"strconv"
	"time"
)

// Settings keys read from the process environment
const (
	KeyAPIToken     = "API_TOKEN"
	KeyDownloadDir  = "DOWNLOAD_DIR"
	KeyItemDelay    = "ITEM_DELAY_SECONDS"
	KeyFetchTimeout = "FETCH_TIMEOUT_SECONDS"
	KeyAudioQuality = "AUDIO_QUALITY"
)

// Default values
const (
	DefaultDownloadDir  = "downloads"
	DefaultItemDelay    = 1 * time.Second
	DefaultFetchTimeout = 10 * time.Minute
	DefaultAudioQuality = "192K"
)

// Bounds for the inter-item delay in playlist runs
const (
	MinItemDelay = 1 * time.Second
	MaxItemDelay = 60 * time.Second
)

// Settings manages application configuration sourced from the environment
type Settings struct {
	lookup func(string) string
}

// NewSettings creates a settings manager backed by the process environment
func NewSettings() *Settings {
	return &Settings{lookup: os.Getenv}
}

// NewSettingsWithLookup creates a settings manager with a custom lookup,
// used by tests to avoid touching the real environment
func NewSettingsWithLookup(lookup func(string) string) *Settings {
	return &Settings{lookup: lookup}
}

// APIToken returns the Telegram bot credential. An empty token is a fatal
// startup condition handled by the caller.
func (s *Settings) APIToken() string {
	return s.lookup(KeyAPIToken)
}

// DownloadDirectory returns the configured staging directory
func (s *Settings) DownloadDirectory() string {
	dir := s.lookup(KeyDownloadDir)
	if dir == "" {
		return DefaultDownloadDir
	}
	return dir
}

// ItemDelay returns the minimum spacing between successive playlist item
// deliveries, clamped to [MinItemDelay, MaxItemDelay]
func (s *Settings) ItemDelay() time.Duration {
	delay := s.durationSeconds(KeyItemDelay, DefaultItemDelay)
	if delay < MinItemDelay {
		return MinItemDelay
	}
	if delay > MaxItemDelay {
		return MaxItemDelay
	}
	return delay
}

// FetchTimeout returns the per-item download and transcode deadline
func (s *Settings) FetchTimeout() time.Duration {
	timeout := s.durationSeconds(KeyFetchTimeout, DefaultFetchTimeout)
	if timeout <= 0 {
		return DefaultFetchTimeout
	}
	return timeout
}

// AudioQuality returns the target audio quality passed to the extractor
func (s *Settings) AudioQuality() string {
	quality := s.lookup(KeyAudioQuality)
	if quality == "" {
		return DefaultAudioQuality
	}
	return quality
}

// durationSeconds reads an integer number of seconds, falling back to the
// default on missing or unparseable values
func (s *Settings) durationSeconds(key string, fallback time.Duration) time.Duration {
	raw := s.lookup(key)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
