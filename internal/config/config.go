package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"folio/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Language  string   `yaml:"language"`
	Languages []string `yaml:"languages"`
	Locales   string   `yaml:"locales"`
	CV        string   `yaml:"cv"`
	Navbar    struct {
		Height    int `yaml:"height"`
		Lookahead int `yaml:"lookahead"`
	}
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	}
	Stats struct {
		Enabled bool `yaml:"enabled"`
	}
	Watch struct {
		Include  []string      `yaml:"include"`
		Ignore   []string      `yaml:"ignore"`
		Debounce time.Duration `yaml:"debounce"`
	}
	Bus struct {
		Buffer int `yaml:"buffer"`
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{
		Language:  DefaultLanguage,
		Languages: []string{"en", "es"},
	}

	cfg.Navbar.Height = DefaultNavbarHeight
	cfg.Navbar.Lookahead = DefaultScrollLookahead

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Stats.Enabled = false

	cfg.Watch.Include = []string{"**/*.json"}
	cfg.Watch.Debounce = DefaultWatchDebounce

	cfg.Bus.Buffer = DefaultBusBuffer

	return cfg
}

// Load loads the configuration from folio.yaml, falling back to defaults
// when the file is absent
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile("folio.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, errors.ErrFailedToReadConfig
	}

	if err := validateKeys(data); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	v := viper.New()
	v.SetConfigType("yaml")

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// ApplyDefaults fills in zero values left by a partial config file
func (c *Config) ApplyDefaults() {
	if c.Language == "" {
		c.Language = DefaultLanguage
	}

	if len(c.Languages) == 0 {
		c.Languages = []string{c.Language}
	}

	if c.Navbar.Height <= 0 {
		c.Navbar.Height = DefaultNavbarHeight
	}

	if c.Navbar.Lookahead < 0 {
		c.Navbar.Lookahead = DefaultScrollLookahead
	}

	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = DefaultWatchDebounce
	}

	if c.Bus.Buffer <= 0 {
		c.Bus.Buffer = DefaultBusBuffer
	}
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	if !c.supportsLanguage(c.Language) {
		return fmt.Errorf("%w: default language %q is not in languages list", errors.ErrLanguageNotSupported, c.Language)
	}

	for _, lang := range c.Languages {
		if lang == "" {
			return errors.New("languages list contains an empty entry")
		}
	}

	return nil
}

func (c *Config) supportsLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}

	return false
}

// knownKeys are the accepted top-level configuration keys
var knownKeys = map[string]bool{
	"language":  true,
	"languages": true,
	"locales":   true,
	"cv":        true,
	"navbar":    true,
	"logging":   true,
	"stats":     true,
	"watch":     true,
	"bus":       true,
}

// validateKeys rejects unknown top-level keys, a typo in folio.yaml must
// fail loudly instead of silently falling back to a default
func validateKeys(data []byte) error {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return errors.ErrFailedToParseConfig
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return fmt.Errorf("top level must be a mapping")
	}

	for i := 0; i < len(doc.Content)-1; i += 2 {
		key := doc.Content[i]
		if !knownKeys[key.Value] {
			return fmt.Errorf("unknown key %q at line %d", key.Value, key.Line)
		}
	}

	return nil
}
