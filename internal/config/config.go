package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Restore modes for a saved build.
const (
	// RestoreTrust restores the saved build verbatim.
	RestoreTrust = "trust"

	// RestorePrune drops saved parts the catalog no longer carries and
	// everything after the first empty slot.
	RestorePrune = "prune"
)

// DirName is the name of the global (~/.rig) and repo (.rig) config directories.
const DirName = ".rig"

// Config holds application configuration.
type Config struct {
	// CatalogDir holds one <category>.json/.yaml file per category.
	// Relative paths are resolved against the directory of the config file.
	// Empty means <base dir>/catalog.
	CatalogDir string `json:"catalog_dir,omitempty"`

	// CatalogURL, when set, is fetched instead of CatalogDir: GET <url>/<category>.json.
	CatalogURL string `json:"catalog_url,omitempty"`

	// CatalogFetchTimeoutMS bounds each category fetch. 0 means no timeout.
	CatalogFetchTimeoutMS int `json:"catalog_fetch_timeout_ms,omitempty"`

	// Build is the name of the saved build to work on.
	Build string `json:"build,omitempty"`

	// RestoreMode is "trust" (default) or "prune".
	RestoreMode string `json:"restore_mode,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default (unlimited). Only set if you experience contention.
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// DisabledTypes is a list of type names to disable entirely.
	// Known types: "build", "catalog". Unknown type names are logged as warnings.
	DisabledTypes []string `json:"disabled_types,omitempty"`

	// WebBind and WebPort are the web UI listen address.
	WebBind string `json:"web_bind,omitempty"`
	WebPort int    `json:"web_port,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Build:       "default",
		RestoreMode: RestoreTrust,
		WebBind:     "127.0.0.1",
		WebPort:     8080,
		LogLevel:    "info",
	}
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.RestoreMode {
	case "", RestoreTrust, RestorePrune:
	default:
		return fmt.Errorf("restore_mode must be %q or %q, got %q", RestoreTrust, RestorePrune, c.RestoreMode)
	}
	if c.CatalogFetchTimeoutMS < 0 {
		return fmt.Errorf("catalog_fetch_timeout_ms must not be negative")
	}
	if c.WebPort < 0 || c.WebPort > 65535 {
		return fmt.Errorf("web_port out of range: %d", c.WebPort)
	}
	return nil
}

// FetchTimeout returns CatalogFetchTimeoutMS as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.CatalogFetchTimeoutMS) * time.Millisecond
}

// ResolveCatalogDir returns CatalogDir, or baseDir/catalog when unset.
func (c *Config) ResolveCatalogDir(baseDir string) string {
	if c.CatalogDir != "" {
		return c.CatalogDir
	}
	return filepath.Join(baseDir, "catalog")
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.rig.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// LoadWithRepo loads configuration from both global (~/.rig) and repo (.rig) directories.
// Repo config is found by walking upward from startDir to find the nearest .rig/config.json.
// Repo config takes precedence for scalar values; arrays are merged (deduplicated).
// Either or both configs may be missing.
func LoadWithRepo(globalDir, startDir string) (*Config, error) {
	global, err := loadFileRaw(filepath.Join(globalDir, "config.json"))
	if err != nil {
		return nil, err
	}

	// Walk upward from startDir to find repo config
	repoConfigPath := FindRepoConfig(startDir)
	repo, err := loadFileRaw(repoConfigPath)
	if err != nil {
		return nil, err
	}

	// Apply defaults, then global, then repo
	cfg := Merge(Merge(DefaultConfig(), global), repo)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindRepoConfig walks upward from startDir to find the nearest .rig/config.json.
// Returns the path if found, or empty string if not found.
func FindRepoConfig(startDir string) string {
	dir := startDir
	for {
		configPath := filepath.Join(dir, DirName, "config.json")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root, not found
			return ""
		}
		dir = parent
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	if configPath == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// File doesn't exist, return zero config
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	if cfg.CatalogDir != "" && !filepath.IsAbs(cfg.CatalogDir) {
		cfg.CatalogDir = filepath.Join(filepath.Dir(configPath), cfg.CatalogDir)
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.CatalogDir = mergeString(base.CatalogDir, overlay.CatalogDir)
	result.CatalogURL = mergeString(base.CatalogURL, overlay.CatalogURL)
	result.Build = mergeString(base.Build, overlay.Build)
	result.RestoreMode = mergeString(base.RestoreMode, overlay.RestoreMode)
	result.WebBind = mergeString(base.WebBind, overlay.WebBind)
	result.LogLevel = mergeString(base.LogLevel, overlay.LogLevel)

	result.CatalogFetchTimeoutMS = mergeInt(base.CatalogFetchTimeoutMS, overlay.CatalogFetchTimeoutMS)
	result.DBMaxOpenConns = mergeInt(base.DBMaxOpenConns, overlay.DBMaxOpenConns)
	result.DBMaxIdleConns = mergeInt(base.DBMaxIdleConns, overlay.DBMaxIdleConns)
	result.WebPort = mergeInt(base.WebPort, overlay.WebPort)

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)
	result.DisabledTypes = mergeStringSlice(base.DisabledTypes, overlay.DisabledTypes)

	return result
}

func mergeString(base, overlay string) string {
	if strings.TrimSpace(overlay) != "" {
		return strings.TrimSpace(overlay)
	}
	return base
}

func mergeInt(base, overlay int) int {
	if overlay != 0 {
		return overlay
	}
	return base
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
