package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Config holds application configuration.
type Config struct {
	// FreeTabLimit is the maximum number of stored tabs on the free tier.
	// Pro removes the limit entirely.
	FreeTabLimit int `json:"free_tab_limit"`

	// EnrichEndpoint is the oEmbed-compatible metadata service queried for
	// titles that cannot be derived locally (video pages, empty titles).
	// The target URL is appended as a url= query parameter.
	EnrichEndpoint string `json:"enrich_endpoint"`

	// EnrichTimeoutSeconds bounds each metadata lookup. A lookup that runs
	// past the deadline is treated as failed and the local title kept.
	EnrichTimeoutSeconds int `json:"enrich_timeout_seconds"`

	// FaviconEndpoint is the favicon-by-domain resolver used when the page
	// does not supply its own icon. The hostname is appended verbatim.
	FaviconEndpoint string `json:"favicon_endpoint"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized (reduces "database is
	// locked" errors). 0 means use sql.DB default.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FreeTabLimit:         11,
		EnrichEndpoint:       "https://noembed.com/embed",
		EnrichTimeoutSeconds: 5,
		FaviconEndpoint:      "https://www.google.com/s2/favicons?domain=",
	}
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.tabstash.
func Load(baseDir string) (*Config, error) {
	overlay, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), overlay), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.FreeTabLimit = overlay.FreeTabLimit
	if result.FreeTabLimit == 0 {
		result.FreeTabLimit = base.FreeTabLimit
	}

	result.EnrichEndpoint = strings.TrimSpace(overlay.EnrichEndpoint)
	if result.EnrichEndpoint == "" {
		result.EnrichEndpoint = base.EnrichEndpoint
	}

	result.EnrichTimeoutSeconds = overlay.EnrichTimeoutSeconds
	if result.EnrichTimeoutSeconds == 0 {
		result.EnrichTimeoutSeconds = base.EnrichTimeoutSeconds
	}

	result.FaviconEndpoint = strings.TrimSpace(overlay.FaviconEndpoint)
	if result.FaviconEndpoint == "" {
		result.FaviconEndpoint = base.FaviconEndpoint
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
