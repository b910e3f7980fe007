package ui

import (
	"math"
	"sync"

	"github.com/charmbracelet/harmonica"

	"folio/internal/app/ui/components"
)

// scrollAnimator drives the smooth scroll offset with a spring. One spring
// update runs per UI tick; instant jumps bypass the spring entirely.
type scrollAnimator struct {
	mu sync.Mutex

	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	animating bool
}

func newScrollAnimator() *scrollAnimator {
	return &scrollAnimator{
		spring: harmonica.NewSpring(
			harmonica.FPS(components.UITicksPerSecond),
			components.ScrollAngularFrequency,
			components.ScrollDampingRatio,
		),
	}
}

// Launch starts (or retargets) an animated scroll toward offset
func (s *scrollAnimator) Launch(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.target = float64(offset)
	s.animating = true
}

// Jump moves to offset immediately and cancels any running animation
func (s *scrollAnimator) Jump(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.position = float64(offset)
	s.velocity = 0
	s.target = s.position
	s.animating = false
}

// Update advances the spring by one tick. It returns the current offset and
// whether the animation settled on this tick.
func (s *scrollAnimator) Update() (offset int, settled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.animating {
		return int(math.Round(s.position)), false
	}

	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)

	if math.Abs(s.target-s.position) < components.ScrollRestThreshold &&
		math.Abs(s.velocity) < components.ScrollRestThreshold {
		s.position = s.target
		s.velocity = 0
		s.animating = false

		return int(math.Round(s.position)), true
	}

	return int(math.Round(s.position)), false
}

// Offset returns the current scroll offset without advancing the spring
func (s *scrollAnimator) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int(math.Round(s.position))
}

// Animating reports whether a smooth scroll is in flight
func (s *scrollAnimator) Animating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.animating
}
