package theme

// Theme is the binary light/dark presentation mode
type Theme string

// Theme values
const (
	Light Theme = "light"
	Dark  Theme = "dark"

	// Default applies when no persisted value exists
	Default = Dark
)

// Valid reports whether the value is a known theme
func (t Theme) Valid() bool {
	return t == Light || t == Dark
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}

	return Dark
}

// String returns the string representation of the theme
func (t Theme) String() string {
	return string(t)
}
