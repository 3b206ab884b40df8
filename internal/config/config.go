// Package config persists tool settings as a flat JSON object on disk.
// A `.backup` copy of the previous file is written before every save, and
// keys the current version does not know about survive a load/save cycle.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	apperrors "modclean/internal/errors"
	"modclean/internal/log"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultFileName = "file_manager_config.json"

// DefaultOrphanThreshold is the size in bytes below which a matched file
// is flagged as a likely orphan.
const DefaultOrphanThreshold int64 = 1024

// Config holds the persisted tool settings.
type Config struct {
	LogFilePath      string   `json:"log_file_path"`
	SearchDirectory  string   `json:"search_directory"`
	ContentDirectory string   `json:"content_directory"`
	LastModified     string   `json:"last_modified"`
	BackupDirectory  string   `json:"backup_directory"`
	ExtensionsFilter []string `json:"file_extensions_filter"`
	OrphanThreshold  int64    `json:"orphaned_file_threshold"`

	// extra carries keys loaded from disk that this version does not
	// know about, so they are written back untouched on save.
	extra map[string]json.RawMessage
}

// knownKeys are the JSON keys owned by the Config struct itself.
var knownKeys = []string{
	"log_file_path",
	"search_directory",
	"content_directory",
	"last_modified",
	"backup_directory",
	"file_extensions_filter",
	"orphaned_file_threshold",
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		ExtensionsFilter: []string{},
		OrphanThreshold:  DefaultOrphanThreshold,
		extra:            map[string]json.RawMessage{},
	}
}

// Load loads configuration from the default location in the working directory.
func Load() (*Config, error) {
	return LoadFile(DefaultFileName)
}

// LoadFile loads configuration from a specific file path. A missing file
// yields defaults with no error; malformed JSON yields defaults plus an
// error the caller may report and ignore.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, apperrors.NewConfigError("error reading config file", path, apperrors.InvalidConfig, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return New(), apperrors.NewConfigError("error parsing config file", path, apperrors.InvalidConfig, err)
	}

	// Merge loaded keys over the defaults.
	type alias Config
	if err := json.Unmarshal(data, (*alias)(cfg)); err != nil {
		return New(), apperrors.NewConfigError("error parsing config file", path, apperrors.InvalidConfig, err)
	}
	if cfg.OrphanThreshold <= 0 {
		cfg.OrphanThreshold = DefaultOrphanThreshold
	}
	if cfg.ExtensionsFilter == nil {
		cfg.ExtensionsFilter = []string{}
	}

	// Keep any keys this version does not know about.
	for _, k := range knownKeys {
		delete(raw, k)
	}
	cfg.extra = raw

	return cfg, nil
}

// Save writes cfg to path after rotating the previous file contents into
// `<path>.backup`. The last_modified key is always overwritten.
func Save(cfg *Config, path string) error {
	if prev, err := os.ReadFile(path); err == nil {
		if err := os.WriteFile(path+".backup", prev, 0644); err != nil {
			log.Warnf("could not write config backup %s: %v", path+".backup", err)
		}
	}

	cfg.LastModified = time.Now().Format(time.RFC3339)

	data, err := cfg.marshal()
	if err != nil {
		return apperrors.NewConfigError("failed to marshal config", path, apperrors.ConfigSaveFailed, err)
	}

	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return apperrors.NewConfigError("failed to create config directory", path, apperrors.ConfigSaveFailed, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.NewConfigError("failed to write config file", path, apperrors.ConfigSaveFailed, err)
	}
	return nil
}

// marshal renders the config as indented JSON with unknown keys included.
func (c *Config) marshal() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(c.extra)+len(knownKeys))
	for k, v := range c.extra {
		out[k] = v
	}

	type alias Config
	own, err := json.Marshal((*alias)(c))
	if err != nil {
		return nil, err
	}
	var ownMap map[string]json.RawMessage
	if err := json.Unmarshal(own, &ownMap); err != nil {
		return nil, err
	}
	for k, v := range ownMap {
		out[k] = v
	}

	return json.MarshalIndent(out, "", "    ")
}

// Keys returns the editable configuration keys in display order.
// last_modified is excluded since it is maintained automatically.
func Keys() []string {
	return []string{
		"log_file_path",
		"search_directory",
		"content_directory",
		"backup_directory",
		"file_extensions_filter",
		"orphaned_file_threshold",
	}
}

// Get returns the display form of a configuration value by key.
func (c *Config) Get(key string) string {
	switch key {
	case "log_file_path":
		return c.LogFilePath
	case "search_directory":
		return c.SearchDirectory
	case "content_directory":
		return c.ContentDirectory
	case "last_modified":
		return c.LastModified
	case "backup_directory":
		return c.BackupDirectory
	case "file_extensions_filter":
		return strings.Join(c.ExtensionsFilter, ", ")
	case "orphaned_file_threshold":
		return strconv.FormatInt(c.OrphanThreshold, 10)
	}
	return ""
}

// Set parses and stores a configuration value by key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "log_file_path":
		c.LogFilePath = value
	case "search_directory":
		c.SearchDirectory = value
	case "content_directory":
		c.ContentDirectory = value
	case "backup_directory":
		c.BackupDirectory = value
	case "file_extensions_filter":
		c.ExtensionsFilter = splitList(value)
	case "orphaned_file_threshold":
		n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("orphaned_file_threshold must be a positive integer, got %q", value)
		}
		c.OrphanThreshold = n
	default:
		return fmt.Errorf("unknown configuration key %q", key)
	}
	return nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
