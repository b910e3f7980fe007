package content

import (
	"fmt"
	"sync"

	"folio/internal/app/bus"
	"folio/internal/app/errors"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// NavigationItem is one entry of the ordered navigation list. ID matches a
// section identifier in the rendered document.
type NavigationItem struct {
	ID   string
	Name string
	Href string
}

// UIText bundles the localized labels for navbar controls. The whole bundle
// is replaced on language change.
type UIText struct {
	DownloadCV string
	BackToTop  string
	OpenMenu   string
	CloseMenu  string
}

// Section is a localized portfolio section in document order
type Section struct {
	ID    string
	Title string
	Body  string
}

// sectionIDs fixes the document order; labels and bodies come from the
// active locale bundle.
var sectionIDs = []string{
	"about",
	"experience",
	"skills",
	"projects",
	"education",
	"contact",
}

// Provider supplies localized navigation data and portfolio content
type Provider interface {
	Language() string
	Languages() []string
	SetLanguage(lang string) error
	CycleLanguage()
	NavigationItems() []NavigationItem
	UIText() UIText
	Sections() []Section
	Lookup(key string) string
	Reload() error
}

// provider implements Provider backed by locale bundles
type provider struct {
	cfg      *config.Config
	bus      bus.Bus
	log      logger.Logger
	mu       sync.RWMutex
	bundles  map[string]map[string]string
	language string
	fallback string
}

// NewProvider creates a Provider with bundles loaded from the embedded
// locales plus any override directory from the config
func NewProvider(cfg *config.Config, b bus.Bus, log logger.Logger) (Provider, error) {
	p := &provider{
		cfg:      cfg,
		bus:      b,
		log:      log,
		language: cfg.Language,
		fallback: config.DefaultLanguage,
	}

	bundles, err := loadBundles(cfg)
	if err != nil {
		return nil, err
	}

	p.bundles = bundles

	if _, ok := p.bundles[p.fallback]; !ok {
		return nil, fmt.Errorf("%w: fallback %q", errors.ErrLocaleNotFound, p.fallback)
	}

	return p, nil
}

// Language returns the active language
func (p *provider) Language() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.language
}

// Languages returns the configured language list in order
func (p *provider) Languages() []string {
	langs := make([]string, len(p.cfg.Languages))
	copy(langs, p.cfg.Languages)

	return langs
}

// SetLanguage switches the active language and publishes a language-changed
// event; unsupported languages are rejected without touching state
func (p *provider) SetLanguage(lang string) error {
	if !p.supported(lang) {
		return fmt.Errorf("%w: %q", errors.ErrLanguageNotSupported, lang)
	}

	p.mu.Lock()
	changed := p.language != lang
	p.language = lang
	p.mu.Unlock()

	if changed {
		p.publishLanguageChanged()
	}

	return nil
}

// CycleLanguage advances to the next configured language, wrapping around
func (p *provider) CycleLanguage() {
	langs := p.cfg.Languages
	if len(langs) < 2 {
		return
	}

	current := p.Language()

	for i, lang := range langs {
		if lang == current {
			_ = p.SetLanguage(langs[(i+1)%len(langs)])
			return
		}
	}

	_ = p.SetLanguage(langs[0])
}

// NavigationItems returns the ordered navigation list for the active
// language as a fresh snapshot
func (p *provider) NavigationItems() []NavigationItem {
	items := make([]NavigationItem, 0, len(sectionIDs))

	for _, id := range sectionIDs {
		items = append(items, NavigationItem{
			ID:   id,
			Name: p.Lookup("nav." + id),
			Href: "#" + id,
		})
	}

	return items
}

// UIText returns the localized control labels for the active language
func (p *provider) UIText() UIText {
	return UIText{
		DownloadCV: p.Lookup("ui.downloadCV"),
		BackToTop:  p.Lookup("ui.backToTop"),
		OpenMenu:   p.Lookup("ui.openMenu"),
		CloseMenu:  p.Lookup("ui.closeMenu"),
	}
}

// Sections returns the localized portfolio sections in document order
func (p *provider) Sections() []Section {
	sections := make([]Section, 0, len(sectionIDs))

	for _, id := range sectionIDs {
		sections = append(sections, Section{
			ID:    id,
			Title: p.Lookup("nav." + id),
			Body:  p.Lookup("section." + id + ".body"),
		})
	}

	return sections
}

// Lookup resolves a key in the active language, falling back to the default
// language and finally to the key itself
func (p *provider) Lookup(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if m, ok := p.bundles[p.language]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}

	if m, ok := p.bundles[p.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}

	return key
}

// Reload re-reads the locale bundles from disk and re-announces the current
// language so consumers refresh their snapshots
func (p *provider) Reload() error {
	bundles, err := loadBundles(p.cfg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.bundles = bundles
	p.mu.Unlock()

	if p.log != nil {
		p.log.Debug().Int("bundles", len(bundles)).Msg("locale bundles refreshed")
	}

	p.publishLanguageChanged()

	return nil
}

func (p *provider) supported(lang string) bool {
	for _, l := range p.cfg.Languages {
		if l == lang {
			return true
		}
	}

	return false
}

func (p *provider) publishLanguageChanged() {
	if p.bus == nil {
		return
	}

	p.bus.Publish(bus.Message{
		Type:     bus.EventLanguageChanged,
		Data:     bus.LanguageChanged{},
		Critical: true,
	})
}
