package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, []string{"en", "es"}, cfg.Languages)
	assert.Equal(t, DefaultNavbarHeight, cfg.Navbar.Height)
	assert.Equal(t, DefaultScrollLookahead, cfg.Navbar.Lookahead)
	assert.Equal(t, DefaultLogLevel, cfg.Logging.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Logging.Format)
	assert.False(t, cfg.Stats.Enabled)
	assert.Equal(t, DefaultBusBuffer, cfg.Bus.Buffer)
}

func Test_ApplyDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Equal(t, []string{DefaultLanguage}, cfg.Languages)
	assert.Equal(t, DefaultNavbarHeight, cfg.Navbar.Height)
	assert.Equal(t, DefaultWatchDebounce, cfg.Watch.Debounce)
	assert.Equal(t, DefaultBusBuffer, cfg.Bus.Buffer)
}

func Test_ApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{Language: "es", Languages: []string{"es"}}
	cfg.Navbar.Height = 6
	cfg.ApplyDefaults()

	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, 6, cfg.Navbar.Height)
}

func Test_ValidateKeys(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{name: "empty document", yaml: "", wantErr: false},
		{name: "known keys", yaml: "language: en\nnavbar:\n  height: 4\n", wantErr: false},
		{name: "unknown key", yaml: "langauge: en\n", wantErr: true},
		{name: "top level list", yaml: "- en\n- es\n", wantErr: true},
		{name: "invalid yaml", yaml: "language: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKeys([]byte(tt.yaml))

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_Validate(t *testing.T) {
	tests := []struct {
		name      string
		language  string
		languages []string
		wantErr   bool
	}{
		{name: "default language listed", language: "en", languages: []string{"en", "es"}, wantErr: false},
		{name: "default language missing", language: "fr", languages: []string{"en", "es"}, wantErr: true},
		{name: "empty language entry", language: "en", languages: []string{"en", ""}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Language = tt.language
			cfg.Languages = tt.languages

			err := cfg.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
