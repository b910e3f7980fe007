package navbar

import (
	"context"

	"github.com/looplab/fsm"
)

// Scroll animation states
const (
	ScrollIdle     = "idle"
	ScrollInFlight = "scrolling"
	ScrollSettling = "settling"
)

// Scroll animation events
const (
	Launch = "launch"
	Arrive = "arrive"
	Settle = "settle"
)

// Scroller tracks the lifecycle of a programmatic smooth scroll. While a
// scroll is in flight the section scan is suppressed so the optimistically
// selected target keeps the highlight; a launch during flight simply
// retargets (last command wins).
type Scroller struct {
	fsm *fsm.FSM
}

// NewScroller creates a Scroller in the idle state
func NewScroller() *Scroller {
	return &Scroller{
		fsm: fsm.NewFSM(
			ScrollIdle,
			fsm.Events{
				{Name: Launch, Src: []string{ScrollIdle, ScrollSettling, ScrollInFlight}, Dst: ScrollInFlight},
				{Name: Arrive, Src: []string{ScrollInFlight}, Dst: ScrollSettling},
				{Name: Settle, Src: []string{ScrollSettling}, Dst: ScrollIdle},
			},
			fsm.Callbacks{},
		),
	}
}

// Launch marks a programmatic scroll as started or retargeted
func (s *Scroller) Launch() {
	_ = s.fsm.Event(context.Background(), Launch)
}

// Arrive marks the animation as finished; one settling frame follows
func (s *Scroller) Arrive() {
	_ = s.fsm.Event(context.Background(), Arrive)
}

// Settle returns the scroller to idle
func (s *Scroller) Settle() {
	_ = s.fsm.Event(context.Background(), Settle)
}

// IsScrolling reports whether an animation is in flight
func (s *Scroller) IsScrolling() bool {
	return s.fsm.Current() == ScrollInFlight
}

// IsSettling reports whether the animation just finished
func (s *Scroller) IsSettling() bool {
	return s.fsm.Current() == ScrollSettling
}

// Current returns the current lifecycle state
func (s *Scroller) Current() string {
	return s.fsm.Current()
}
