package content

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"

	"folio/internal/app/errors"
)

// Matcher checks whether changed file paths match the configured patterns
type Matcher interface {
	Match(path string) bool
}

// matcher implements the Matcher interface
type matcher struct {
	patterns []glob.Glob
	ignores  []glob.Glob
}

// NewMatcher creates a Matcher from include and ignore glob patterns
func NewMatcher(includes, ignores []string) (Matcher, error) {
	m := &matcher{
		patterns: make([]glob.Glob, 0, len(includes)),
		ignores:  make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range expandPatterns(includes) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.ErrInvalidWatchPattern
		}

		m.patterns = append(m.patterns, g)
	}

	for _, p := range expandPatterns(ignores) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, errors.ErrInvalidWatchPattern
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// Match reports whether the path matches an include pattern and no ignore
// pattern
func (m *matcher) Match(path string) bool {
	normalized := filepath.ToSlash(path)

	for _, g := range m.ignores {
		if g.Match(normalized) {
			return false
		}
	}

	for _, g := range m.patterns {
		if g.Match(normalized) {
			return true
		}
	}

	return false
}

// expandPatterns expands patterns starting with **/ to also match at the
// root level
func expandPatterns(patterns []string) []string {
	expanded := make([]string, 0, len(patterns)*2)

	for _, p := range patterns {
		expanded = append(expanded, p)

		if strings.HasPrefix(p, "**/") {
			expanded = append(expanded, strings.TrimPrefix(p, "**/"))
		}
	}

	return expanded
}
