package navbar

import (
	"folio/internal/app/theme"
)

// State is the navigation state snapshot exposed to the presentation layer.
// The controller is the only writer; views read snapshots and forward user
// events back into controller operations.
type State struct {
	IsMenuOpen      bool
	ActiveSectionID string
	ScrollY         int
	Theme           theme.Theme
	Mounted         bool
}

// IsScrolled reports whether the document has moved off the top; used for
// the condensed navbar styling.
func (s State) IsScrolled() bool {
	return s.ScrollY > 0
}
