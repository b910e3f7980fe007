package components

import "time"

// UI timing constants
const (
	// UITickInterval is the base tick rate for the UI; the section scan
	// and the scroll spring both advance once per tick.
	UITickInterval = 50 * time.Millisecond

	// UITicksPerSecond is the derived FPS for animations
	UITicksPerSecond = int(time.Second / UITickInterval)
)

// Scroll spring physics parameters
const (
	ScrollAngularFrequency = 6.0 // stiffness, higher reaches the target faster
	ScrollDampingRatio     = 1.0 // critically damped, no overshoot past the target

	// ScrollRestThreshold is how close position and velocity must be to
	// the target before the animation counts as settled.
	ScrollRestThreshold = 0.25
)

// Layout constants
const (
	NavbarLogoText = "folio"

	StatusBarHeight = 1
	FooterHeight    = 2

	MinViewportHeight = 5
	DefaultWidth      = 80

	SectionSeparatorBlank = 1
)
