package navbar

import (
	"context"
	"fmt"
	"sync"

	"folio/internal/app/bus"
	"folio/internal/app/content"
	"folio/internal/app/theme"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// Controller owns the navigation state and is the only component permitted
// to mutate it. Views forward user events into the operations below and
// render the State snapshot.
type Controller interface {
	// Initialize marks the controller mounted, loads the persisted theme
	// and the navigation data, and subscribes to language changes until
	// the context is cancelled.
	Initialize(ctx context.Context)

	// ToggleMobileMenu flips the compact menu. It is a toggle, not a set.
	ToggleMobileMenu()

	// CloseMenu forces the menu closed and returns focus to the trigger.
	// Safe to call when already closed; the focus return still applies.
	CloseMenu()

	// HandleNavClick optimistically activates the section, scrolls to it,
	// and pushes the fragment. A missing section is a silent no-op.
	HandleNavClick(sectionID string)

	// HandleLogoClick scrolls to the top, resets the active section to the
	// first entry, and clears the fragment.
	HandleLogoClick()

	// ToggleTheme flips the theme. The in-memory value, the persisted
	// value, and the applied presentation class agree when it returns.
	ToggleTheme()

	// OnLanguageChanged re-fetches navigation items and UI text. Menu and
	// theme state are left untouched.
	OnLanguageChanged()

	// HandleScroll records a new scroll position. Calls between frames
	// are collapsed; the scan runs at most once per frame.
	HandleScroll(y int)

	// OnFrame runs the pending section scan, at most one per call.
	OnFrame()

	// ScrollSettled tells the controller a programmatic scroll finished.
	ScrollSettled()

	// DownloadCV announces where the CV can be found.
	DownloadCV()

	State() State
	Items() []content.NavigationItem
	Text() content.UIText
}

// controller implements the Controller interface
type controller struct {
	cfg      *config.Config
	provider content.Provider
	store    theme.Store
	dom      DomPort
	announce Announcer
	bus      bus.Bus
	log      logger.Logger
	scroller *Scroller

	mu    sync.RWMutex
	state State
	items []content.NavigationItem
	text  content.UIText
	dirty bool
}

// New creates a Controller. The announcer may be nil.
func New(cfg *config.Config, provider content.Provider, store theme.Store, dom DomPort, announce Announcer, b bus.Bus, log logger.Logger) Controller {
	return &controller{
		cfg:      cfg,
		provider: provider,
		store:    store,
		dom:      dom,
		announce: announce,
		bus:      b,
		log:      log,
		scroller: NewScroller(),
		state:    State{Theme: theme.Default},
	}
}

// Initialize performs the first-mount sequence
func (c *controller) Initialize(ctx context.Context) {
	c.mu.Lock()

	if c.state.Mounted {
		c.mu.Unlock()
		return
	}

	c.state.Mounted = true

	value, ok := c.store.Read()
	if !ok {
		value = theme.Default
	}

	c.state.Theme = value
	c.items = c.provider.NavigationItems()
	c.text = c.provider.UIText()

	if len(c.items) > 0 {
		c.state.ActiveSectionID = c.items[0].ID
	}

	c.mu.Unlock()

	c.dom.ApplyTheme(value)

	ch := c.bus.Subscribe(ctx)

	go func() {
		for msg := range ch {
			if msg.Type == bus.EventLanguageChanged {
				c.OnLanguageChanged()
			}
		}
	}()

	c.log.Debug().Str("theme", value.String()).Msg("navbar controller mounted")
}

// ToggleMobileMenu flips the compact menu open state
func (c *controller) ToggleMobileMenu() {
	c.mu.Lock()

	if !c.state.Mounted {
		c.mu.Unlock()
		return
	}

	c.state.IsMenuOpen = !c.state.IsMenuOpen
	open := c.state.IsMenuOpen
	c.mu.Unlock()

	c.publish(bus.EventMenuToggled, bus.MenuToggled{Open: open})
}

// CloseMenu forces the menu closed and returns focus to the trigger
func (c *controller) CloseMenu() {
	c.mu.Lock()

	if !c.state.Mounted {
		c.mu.Unlock()
		return
	}

	changed := c.state.IsMenuOpen
	c.state.IsMenuOpen = false
	c.mu.Unlock()

	c.dom.FocusMenuTrigger()

	if changed {
		c.publish(bus.EventMenuToggled, bus.MenuToggled{Open: false})
	}
}

// HandleNavClick activates and scrolls to a section
func (c *controller) HandleNavClick(sectionID string) {
	c.mu.Lock()

	if !c.state.Mounted {
		c.mu.Unlock()
		return
	}

	c.mu.Unlock()

	offset, ok := c.dom.SectionOffset(sectionID)
	if !ok {
		// unmounted target, defer to nothing happening
		return
	}

	c.mu.Lock()
	c.state.ActiveSectionID = sectionID
	name := c.itemName(sectionID)
	c.dirty = false
	c.mu.Unlock()

	target := offset - c.cfg.Navbar.Height
	if target < 0 {
		target = 0
	}

	c.scroller.Launch()
	c.dom.ScrollTo(target, true)
	c.dom.PushFragment(sectionID)

	c.publish(bus.EventSectionChanged, bus.SectionChanged{ID: sectionID})
	c.publish(bus.EventFragmentChanged, bus.FragmentChanged{Fragment: "#" + sectionID})
	c.say(fmt.Sprintf(c.provider.Lookup("announce.navigated"), name))
}

// HandleLogoClick returns to the top of the document
func (c *controller) HandleLogoClick() {
	c.mu.Lock()

	if !c.state.Mounted {
		c.mu.Unlock()
		return
	}

	if len(c.items) > 0 {
		c.state.ActiveSectionID = c.items[0].ID
	}

	c.dirty = false
	c.mu.Unlock()

	c.scroller.Launch()
	c.dom.ScrollTo(0, true)
	c.dom.ClearFragment()

	c.publish(bus.EventFragmentChanged, bus.FragmentChanged{Fragment: ""})
	c.say(c.provider.Lookup("announce.top"))
}

// ToggleTheme flips the theme and persists it
func (c *controller) ToggleTheme() {
	c.mu.Lock()

	if !c.state.Mounted {
		c.mu.Unlock()
		return
	}

	next := c.state.Theme.Toggle()
	c.state.Theme = next
	c.mu.Unlock()

	if err := c.store.Write(next); err != nil {
		// storage failures degrade silently, the in-memory theme still applies
		c.log.Debug().Err(err).Msg("theme persistence failed")
	}

	c.dom.ApplyTheme(next)

	c.publish(bus.EventThemeChanged, bus.ThemeChanged{Theme: next.String()})
	c.say(fmt.Sprintf(c.provider.Lookup("announce.theme"), next))
}

// OnLanguageChanged replaces navigation items and UI text wholesale
func (c *controller) OnLanguageChanged() {
	items := c.provider.NavigationItems()
	text := c.provider.UIText()

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Mounted {
		return
	}

	c.items = items
	c.text = text

	// a stale id from the previous list must not persist
	if !c.hasItem(c.state.ActiveSectionID) && len(items) > 0 {
		c.state.ActiveSectionID = items[0].ID
	}
}

// HandleScroll records the scroll position and schedules a scan
func (c *controller) HandleScroll(y int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Mounted {
		return
	}

	c.state.ScrollY = y
	c.dirty = true
}

// OnFrame collapses pending scroll input into at most one scan per frame
func (c *controller) OnFrame() {
	if c.scroller.IsScrolling() {
		return
	}

	if c.scroller.IsSettling() {
		c.scroller.Settle()

		// drop scroll noise produced by the animation itself
		c.mu.Lock()
		c.dirty = false
		c.mu.Unlock()

		return
	}

	c.mu.Lock()

	if !c.dirty {
		c.mu.Unlock()
		return
	}

	c.dirty = false
	c.mu.Unlock()

	c.rescan()
}

// ScrollSettled marks the end of a programmatic scroll
func (c *controller) ScrollSettled() {
	c.scroller.Arrive()
}

// DownloadCV announces the CV location
func (c *controller) DownloadCV() {
	c.mu.Lock()

	if !c.state.Mounted || c.cfg.CV == "" {
		c.mu.Unlock()
		return
	}

	c.mu.Unlock()

	c.say(fmt.Sprintf(c.provider.Lookup("announce.cv"), c.cfg.CV))
}

// State returns a snapshot of the navigation state
func (c *controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Items returns the current navigation item snapshot
func (c *controller) Items() []content.NavigationItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]content.NavigationItem, len(c.items))
	copy(items, c.items)

	return items
}

// Text returns the current UI text bundle
func (c *controller) Text() content.UIText {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.text
}

// rescan recomputes the active section with the scan strategy: the active
// section is the last one in document order whose offset has been passed.
func (c *controller) rescan() {
	c.mu.RLock()
	position := c.state.ScrollY + c.cfg.Navbar.Height + c.cfg.Navbar.Lookahead
	items := c.items
	current := c.state.ActiveSectionID
	c.mu.RUnlock()

	if len(items) == 0 {
		return
	}

	active := items[0].ID

	for _, item := range items {
		offset, ok := c.dom.SectionOffset(item.ID)
		if !ok {
			// sections can unmount between frames, skip silently
			continue
		}

		if offset <= position {
			active = item.ID
		}
	}

	if active == current {
		return
	}

	c.mu.Lock()
	c.state.ActiveSectionID = active
	c.mu.Unlock()

	c.publish(bus.EventSectionChanged, bus.SectionChanged{ID: active})
}

func (c *controller) itemName(id string) string {
	for _, item := range c.items {
		if item.ID == id {
			return item.Name
		}
	}

	return id
}

func (c *controller) hasItem(id string) bool {
	for _, item := range c.items {
		if item.ID == id {
			return true
		}
	}

	return false
}

func (c *controller) publish(msgType bus.MessageType, data interface{}) {
	c.bus.Publish(bus.Message{Type: msgType, Data: data})
}

func (c *controller) say(message string) {
	if c.announce == nil {
		return
	}

	c.announce(message)
}
