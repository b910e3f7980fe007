package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Matcher_Match(t *testing.T) {
	tests := []struct {
		name     string
		includes []string
		ignores  []string
		path     string
		expected bool
	}{
		{name: "json at root", includes: []string{"**/*.json"}, path: "en.json", expected: true},
		{name: "json nested", includes: []string{"**/*.json"}, path: "locales/en.json", expected: true},
		{name: "other extension", includes: []string{"**/*.json"}, path: "en.yaml", expected: false},
		{name: "ignored file", includes: []string{"**/*.json"}, ignores: []string{"**/draft*.json", "draft*.json"}, path: "draft-en.json", expected: false},
		{name: "no patterns", path: "en.json", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.includes, tt.ignores)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, m.Match(tt.path))
		})
	}
}

func Test_NewMatcher_InvalidPattern(t *testing.T) {
	_, err := NewMatcher([]string{"[invalid"}, nil)

	assert.Error(t, err)
}

func Test_ExpandPatterns(t *testing.T) {
	expanded := expandPatterns([]string{"**/*.json", "fixed.json"})

	assert.Equal(t, []string{"**/*.json", "*.json", "fixed.json"}, expanded)
}
