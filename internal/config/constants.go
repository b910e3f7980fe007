package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	Version = "1.2.0"
)

// language constants
const (
	DefaultLanguage = "en"
)

// navbar geometry constants
const (
	// DefaultNavbarHeight is the number of rows the fixed navigation bar
	// occupies; section offsets are adjusted by this amount when scrolling.
	DefaultNavbarHeight = 4

	// DefaultScrollLookahead is added to the scroll position when scanning
	// for the active section, so a section activates slightly before its
	// first row reaches the navbar edge.
	DefaultScrollLookahead = 2
)

// theme constants
const (
	ThemeStateDirName  = "folio"
	ThemeStateFileName = "theme.json"

	// ThemeTransitionDelay is how long the transient transition styling
	// stays applied after a theme switch.
	ThemeTransitionDelay = 60 * time.Millisecond
)

// locale watch constants
const (
	DefaultWatchDebounce = 300 * time.Millisecond
)

// bus constants
const (
	DefaultBusBuffer = 64
)
