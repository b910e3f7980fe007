package content

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"

	"folio/internal/app/bus"
	"folio/internal/config"
	"folio/internal/config/logger"
)

// Watcher reloads locale bundles when files in the override directory change
type Watcher interface {
	Start() error
	Close()
}

// watcher implements the Watcher interface
type watcher struct {
	cfg       *config.Config
	provider  Provider
	bus       bus.Bus
	fsWatcher *fsnotify.Watcher
	matcher   Matcher
	debouncer Debouncer
	log       logger.Logger
	mu        sync.Mutex
	closed    bool
}

// NewWatcher creates a Watcher over the configured locales directory. With
// no directory configured the watcher is inert.
func NewWatcher(cfg *config.Config, provider Provider, b bus.Bus, log logger.Logger) (Watcher, error) {
	m, err := NewMatcher(cfg.Watch.Include, cfg.Watch.Ignore)
	if err != nil {
		return nil, err
	}

	w := &watcher{
		cfg:      cfg,
		provider: provider,
		bus:      b,
		matcher:  m,
		log:      log.WithComponent("WATCHER"),
	}

	w.debouncer = NewDebouncer(cfg.Watch.Debounce, w.reload)

	return w, nil
}

// Start begins watching the locales override directory, if present
func (w *watcher) Start() error {
	if w.cfg.Locales == "" {
		return nil
	}

	if _, err := os.Stat(w.cfg.Locales); err != nil {
		w.log.Debug().Str("dir", w.cfg.Locales).Msg("locales override dir absent, watch disabled")
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := fsw.Add(w.cfg.Locales); err != nil {
		_ = fsw.Close()
		return err
	}

	w.fsWatcher = fsw

	go w.processEvents()

	w.log.Info().Str("dir", w.cfg.Locales).Msg("watching locale bundles")

	return nil
}

// Close stops watching and cancels any pending reload
func (w *watcher) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	w.closed = true
	w.debouncer.Stop()

	if w.fsWatcher != nil {
		_ = w.fsWatcher.Close()
	}
}

func (w *watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if !w.matcher.Match(event.Name) {
				continue
			}

			w.debouncer.Trigger(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}

			w.log.Warn().Err(err).Msg("locale watch error")
		}
	}
}

func (w *watcher) reload(files []string) {
	if err := w.provider.Reload(); err != nil {
		w.log.Warn().Err(err).Msg("locale reload failed, keeping previous bundles")
		return
	}

	w.log.Info().Strs("files", files).Msg("locale bundles reloaded")

	w.bus.Publish(bus.Message{
		Type: bus.EventContentReloaded,
		Data: bus.ContentReloaded{Files: files},
	})
}
