package announce

import (
	"folio/internal/app/bus"
	"folio/internal/app/navbar"
)

// NewBusAnnouncer returns an announcer that publishes assistive messages on
// the event bus; the status line subscribes and displays them
func NewBusAnnouncer(b bus.Bus) navbar.Announcer {
	return func(message string) {
		if message == "" {
			return
		}

		b.Publish(bus.Message{
			Type: bus.EventAnnounce,
			Data: bus.Announce{Message: message},
		})
	}
}
