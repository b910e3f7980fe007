package bus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"folio/internal/config"
	"folio/internal/config/logger"
)

// MessageType represents the type of message
type MessageType string

// Event types
const (
	EventLanguageChanged MessageType = "language_changed"
	EventContentReloaded MessageType = "content_reloaded"
	EventSectionChanged  MessageType = "section_changed"
	EventThemeChanged    MessageType = "theme_changed"
	EventMenuToggled     MessageType = "menu_toggled"
	EventFragmentChanged MessageType = "fragment_changed"
	EventAnnounce        MessageType = "announce"
)

// Message represents a bus message
type Message struct {
	Type      MessageType
	Timestamp time.Time
	Data      interface{}
	Critical  bool
}

// LanguageChanged indicates the active language was switched; consumers
// re-fetch navigation items and UI text, the event carries no payload
type LanguageChanged struct{}

// ContentReloaded indicates locale bundles changed on disk
type ContentReloaded struct {
	Files []string
}

// SectionChanged indicates the active section moved
type SectionChanged struct {
	ID string
}

// ThemeChanged indicates the presentation theme was toggled
type ThemeChanged struct {
	Theme string
}

// MenuToggled indicates the compact menu was opened or closed
type MenuToggled struct {
	Open bool
}

// FragmentChanged indicates the location fragment was pushed or cleared
type FragmentChanged struct {
	Fragment string
}

// Announce carries a plain-text assistive announcement
type Announce struct {
	Message string
}

// Bus handles pub/sub messaging
type Bus interface {
	Subscribe(ctx context.Context) <-chan Message
	Publish(msg Message)
	Close()
}

// bus implements the Bus interface with pub/sub messaging
type bus struct {
	buffer      int
	subscribers []chan Message
	mu          sync.RWMutex
	closed      bool
	log         logger.Logger
}

// New creates a new Bus
func New(cfg *config.Config, log logger.Logger) Bus {
	return &bus{
		buffer:      cfg.Bus.Buffer,
		subscribers: make([]chan Message, 0),
		log:         log,
	}
}

// Subscribe creates a new subscription channel that is removed when the
// given context is cancelled
func (b *bus) Subscribe(ctx context.Context) <-chan Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Message, b.buffer)
	b.subscribers = append(b.subscribers, ch)

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()

	return ch
}

// Publish sends a message to all subscribers
func (b *bus) Publish(msg Message) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	msg.Timestamp = time.Now()

	if b.log != nil {
		b.log.Debug().Msgf("%s %s", msg.Type, formatData(msg.Data))
	}

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if msg.Critical {
				go func(c chan Message, m Message) {
					defer func() { recover() }()

					c <- m
				}(ch, msg)
			}
		}
	}
}

// Close closes all subscriber channels
func (b *bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	b.closed = true

	for _, ch := range b.subscribers {
		close(ch)
	}

	b.subscribers = nil
}

func (b *bus) unsubscribe(ch chan Message) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)

			close(ch)

			break
		}
	}
}

func formatData(data interface{}) string {
	switch d := data.(type) {
	case LanguageChanged:
		return "{}"
	case ContentReloaded:
		return fmt.Sprintf("{files: %v}", d.Files)
	case SectionChanged:
		return fmt.Sprintf("{id: %s}", d.ID)
	case ThemeChanged:
		return fmt.Sprintf("{theme: %s}", d.Theme)
	case MenuToggled:
		return fmt.Sprintf("{open: %t}", d.Open)
	case FragmentChanged:
		return fmt.Sprintf("{fragment: %s}", d.Fragment)
	case Announce:
		return fmt.Sprintf("{message: %s}", d.Message)
	default:
		return fmt.Sprintf("%+v", data)
	}
}

// NoOp returns a no-op bus for when messaging is disabled
func NoOp() Bus {
	return &noOpBus{}
}

// noOpBus implements Bus with no-op methods for testing
type noOpBus struct{}

func (n *noOpBus) Subscribe(ctx context.Context) <-chan Message {
	ch := make(chan Message)

	go func() {
		<-ctx.Done()
		close(ch)
	}()

	return ch
}

func (n *noOpBus) Publish(msg Message) {}
func (n *noOpBus) Close()              {}
