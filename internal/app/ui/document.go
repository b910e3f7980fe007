package ui

import (
	"strings"
	"sync"
	"time"

	"folio/internal/app/content"
	"folio/internal/app/navbar"
	"folio/internal/app/theme"
	"folio/internal/app/ui/components"
)

// Focusable controls
const (
	FocusNone        = ""
	FocusMenuTrigger = "menu-trigger"
)

// Document is the rendered portfolio the controller scrolls through. It
// implements navbar.DomPort: section offsets are line indexes into the
// rendered body, the fragment mirrors the browser location hash, and the
// theme maps to a presentation palette.
//
// The bubbletea model is copied by value on every update, so all mutable
// presentation state shared with the controller lives here behind a mutex.
type Document struct {
	mu sync.RWMutex

	lines   []string
	offsets map[string]int
	order   []string
	width   int

	fragment string
	history  []string
	focus    string

	theme          theme.Theme
	transitioning  bool
	themeAppliedAt time.Time

	scroll *scrollAnimator
}

var _ navbar.DomPort = (*Document)(nil)

// NewDocument creates an empty Document; Rebuild populates it
func NewDocument() *Document {
	return &Document{
		offsets: make(map[string]int),
		width:   components.DefaultWidth,
		theme:   theme.Default,
		scroll:  newScrollAnimator(),
	}
}

// Rebuild renders the sections into lines and recomputes section offsets.
// Called on first load, on resize, and on language change.
func (d *Document) Rebuild(sections []content.Section, width int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if width > 0 {
		d.width = width
	}

	d.lines = d.lines[:0]
	d.order = d.order[:0]
	d.offsets = make(map[string]int, len(sections))

	for _, section := range sections {
		d.offsets[section.ID] = len(d.lines)
		d.order = append(d.order, section.ID)

		d.lines = append(d.lines, section.Title)
		d.lines = append(d.lines, strings.Repeat("─", min(len([]rune(section.Title))+2, d.width)))

		for _, line := range strings.Split(section.Body, "\n") {
			d.lines = append(d.lines, line)
		}

		for i := 0; i < components.SectionSeparatorBlank; i++ {
			d.lines = append(d.lines, "")
		}
	}
}

// SectionOffset returns the first line index of a section
func (d *Document) SectionOffset(id string) (int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	offset, ok := d.offsets[id]

	return offset, ok
}

// ScrollTo moves the document offset, animated when smooth is set
func (d *Document) ScrollTo(offset int, smooth bool) {
	if offset < 0 {
		offset = 0
	}

	if smooth {
		d.scroll.Launch(offset)
		return
	}

	d.scroll.Jump(offset)
}

// PushFragment records a section id as the location fragment
func (d *Document) PushFragment(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.fragment = "#" + id
	d.history = append(d.history, d.fragment)
}

// ClearFragment resets the location fragment to the document root
func (d *Document) ClearFragment() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.fragment == "" {
		return
	}

	d.fragment = ""
	d.history = append(d.history, "")
}

// FocusMenuTrigger returns keyboard focus to the menu trigger control
func (d *Document) FocusMenuTrigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.focus = FocusMenuTrigger
}

// ApplyTheme switches the presentation palette and starts the short
// transition window
func (d *Document) ApplyTheme(t theme.Theme) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.theme = t
	d.transitioning = true
	d.themeAppliedAt = time.Now()
}

// Theme returns the applied theme
func (d *Document) Theme() theme.Theme {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.theme
}

// Transitioning reports whether the theme switch styling is still active
func (d *Document) Transitioning() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.transitioning
}

// ExpireTransition clears the transition flag once the delay has passed
func (d *Document) ExpireTransition(delay time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.transitioning && time.Since(d.themeAppliedAt) >= delay {
		d.transitioning = false
	}
}

// Fragment returns the current location fragment ("" at the root)
func (d *Document) Fragment() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.fragment
}

// History returns a copy of the fragment history
func (d *Document) History() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	history := make([]string, len(d.history))
	copy(history, d.history)

	return history
}

// Focus returns the focused control identifier
func (d *Document) Focus() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.focus
}

// ClearFocus resets keyboard focus
func (d *Document) ClearFocus() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.focus = FocusNone
}

// Lines returns the rendered body lines
func (d *Document) Lines() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	lines := make([]string, len(d.lines))
	copy(lines, d.lines)

	return lines
}

// Height returns the rendered body height in lines
func (d *Document) Height() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.lines)
}

// Scroll exposes the scroll animator
func (d *Document) Scroll() *scrollAnimator {
	return d.scroll
}
