//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=navbar
package navbar

import (
	"folio/internal/app/theme"
)

// DomPort abstracts the rendered document surface the controller acts on.
// The shipped adapter lives in the ui package; tests substitute a mock.
type DomPort interface {
	// SectionOffset returns the document offset of a section's first row.
	// ok is false when no section with that id is currently mounted.
	SectionOffset(id string) (offset int, ok bool)

	// ScrollTo moves the document to the given offset, animated when
	// smooth is set. A second call during an animation retargets it.
	ScrollTo(offset int, smooth bool)

	// PushFragment records the section id as the location fragment
	// without reloading anything.
	PushFragment(id string)

	// ClearFragment resets the location fragment.
	ClearFragment()

	// FocusMenuTrigger returns keyboard focus to the menu trigger control.
	FocusMenuTrigger()

	// ApplyTheme switches the root presentation class.
	ApplyTheme(t theme.Theme)
}

// Announcer forwards a plain-text message to assistive output. The
// dependency is optional; a nil Announcer is never an error.
type Announcer func(message string)
