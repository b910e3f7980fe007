package content

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Debouncer_CoalescesEvents(t *testing.T) {
	var (
		mu    sync.Mutex
		calls [][]string
	)

	d := NewDebouncer(20*time.Millisecond, func(files []string) {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, files)
	})
	defer d.Stop()

	d.Trigger("en.json")
	d.Trigger("es.json")
	d.Trigger("en.json")

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) == 1
	}, time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, calls[0], 2)
}

func Test_Debouncer_StopCancelsPending(t *testing.T) {
	fired := make(chan struct{}, 1)

	d := NewDebouncer(20*time.Millisecond, func([]string) {
		fired <- struct{}{}
	})

	d.Trigger("en.json")
	d.Stop()

	select {
	case <-fired:
		t.Fatal("expected no callback after stop")
	case <-time.After(60 * time.Millisecond):
	}
}

func Test_Debouncer_TriggerAfterStopIsNoOp(t *testing.T) {
	d := NewDebouncer(time.Millisecond, func([]string) {
		t.Fatal("callback must not fire")
	})

	d.Stop()
	d.Trigger("en.json")

	time.Sleep(20 * time.Millisecond)
}
