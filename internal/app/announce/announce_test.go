package announce

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"folio/internal/app/bus"
	"folio/internal/config"
)

func Test_BusAnnouncer_PublishesMessage(t *testing.T) {
	b := bus.New(config.DefaultConfig(), nil)
	defer b.Close()

	ch := b.Subscribe(context.Background())
	say := NewBusAnnouncer(b)

	say("Navigated to Skills")

	select {
	case msg := <-ch:
		assert.Equal(t, bus.EventAnnounce, msg.Type)
		assert.Equal(t, bus.Announce{Message: "Navigated to Skills"}, msg.Data)
	case <-time.After(time.Second):
		t.Fatal("expected announce event")
	}
}

func Test_BusAnnouncer_EmptyMessageIsDropped(t *testing.T) {
	b := bus.New(config.DefaultConfig(), nil)
	defer b.Close()

	ch := b.Subscribe(context.Background())
	say := NewBusAnnouncer(b)

	say("")

	select {
	case msg := <-ch:
		t.Fatalf("expected no event, got %v", msg.Type)
	case <-time.After(50 * time.Millisecond):
	}
}
