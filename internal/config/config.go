package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ShortcutConfig describes a key chord: the primary key plus the exact
// modifier flags that must be held. All four modifier flags participate in
// matching, so a chord configured without shift will not fire while shift
// is held.
type ShortcutConfig struct {
	Key      string `yaml:"key"       json:"key"`
	MetaKey  bool   `yaml:"meta_key"  json:"meta_key"`
	AltKey   bool   `yaml:"alt_key"   json:"alt_key"`
	CtrlKey  bool   `yaml:"ctrl_key"  json:"ctrl_key"`
	ShiftKey bool   `yaml:"shift_key" json:"shift_key"`
}

type ShortcutsConfig struct {
	Open ShortcutConfig `yaml:"open" json:"open"`
}

// FieldConfig toggles which document fields participate in matching.
type FieldConfig struct {
	Title       bool `yaml:"title"       json:"title"`
	Description bool `yaml:"description" json:"description"`
	Section     bool `yaml:"section"     json:"section"`
}

type SearchConfig struct {
	// MinChars is the minimum trimmed query length before ranking runs.
	MinChars int `yaml:"min_chars" json:"min_chars"`
	// MaxResults caps the ranked result list.
	MaxResults int         `yaml:"max_results" json:"max_results"`
	Fields     FieldConfig `yaml:"fields"      json:"fields"`
	// IndexURL is the endpoint serving the JSON document index.
	IndexURL string `yaml:"index_url" json:"index_url"`
}

type FeedConfig struct {
	URL      string `yaml:"url"       json:"url"`
	MaxItems int    `yaml:"max_items" json:"max_items"`
}

type Config struct {
	Shortcuts ShortcutsConfig `yaml:"shortcuts" json:"shortcuts"`
	Search    SearchConfig    `yaml:"search"    json:"search"`
	Feed      FeedConfig      `yaml:"feed"      json:"feed"`
}

// Default returns the built-in configuration: open on meta+/, two-character
// minimum query, eight results, every field searchable.
func Default() Config {
	return Config{
		Shortcuts: ShortcutsConfig{
			Open: ShortcutConfig{Key: "/", MetaKey: true},
		},
		Search: SearchConfig{
			MinChars:   2,
			MaxResults: 8,
			Fields:     FieldConfig{Title: true, Description: true, Section: true},
			IndexURL:   "/index.json",
		},
		Feed: FeedConfig{MaxItems: 5},
	}
}

// defaultSettings mirrors Default as a settings map; Load merges user
// overrides onto it key by key.

func defaultSettings() map[string]any {
	return map[string]any{
		"shortcuts": map[string]any{
			"open": map[string]any{
				"key":       "/",
				"meta_key":  true,
				"alt_key":   false,
				"ctrl_key":  false,
				"shift_key": false,
			},
		},
		"search": map[string]any{
			"min_chars":   2,
			"max_results": 8,
			"fields": map[string]any{
				"title":       true,
				"description": true,
				"section":     true,
			},
			"index_url": "/index.json",
		},
		"feed": map[string]any{
			"url":       "",
			"max_items": 5,
		},
	}
}

// Load reads the YAML config file at path and merges it onto the defaults.
// An empty path returns the defaults untouched. Keys absent from the file
// keep their default values; only the keys the user sets are overridden.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config: stat %s: %w", path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	merged := Merge(defaultSettings(), v.AllSettings())
	cfg, err := decodeSettings(merged)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the few numeric constraints the search engine relies on.
func (cfg Config) Validate() error {
	if cfg.Search.MinChars < 0 {
		return fmt.Errorf("config: search.min_chars must be >= 0, got %d", cfg.Search.MinChars)
	}
	if cfg.Search.MaxResults < 1 {
		return fmt.Errorf("config: search.max_results must be >= 1, got %d", cfg.Search.MaxResults)
	}
	if cfg.Shortcuts.Open.Key == "" {
		return fmt.Errorf("config: shortcuts.open.key must not be empty")
	}
	return nil
}

func decodeSettings(settings map[string]any) (Config, error) {
	raw, err := yaml.Marshal(settings)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
