package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settle runs the spring until it reports settled, bounded to catch
// animations that never converge
func settle(t *testing.T, s *scrollAnimator) int {
	t.Helper()

	for i := 0; i < 1000; i++ {
		offset, settled := s.Update()
		if settled {
			return offset
		}
	}

	require.Fail(t, "spring did not settle")

	return 0
}

func Test_ScrollAnimator_Jump_Immediate(t *testing.T) {
	s := newScrollAnimator()

	s.Jump(42)

	assert.Equal(t, 42, s.Offset())
	assert.False(t, s.Animating())
}

func Test_ScrollAnimator_Launch_SettlesAtTarget(t *testing.T) {
	s := newScrollAnimator()

	s.Launch(100)
	assert.True(t, s.Animating())

	offset := settle(t, s)

	assert.Equal(t, 100, offset)
	assert.False(t, s.Animating())
}

func Test_ScrollAnimator_Launch_Retargets(t *testing.T) {
	s := newScrollAnimator()

	s.Launch(100)

	for i := 0; i < 3; i++ {
		s.Update()
	}

	s.Launch(40)
	offset := settle(t, s)

	assert.Equal(t, 40, offset)
}

func Test_ScrollAnimator_Jump_CancelsAnimation(t *testing.T) {
	s := newScrollAnimator()

	s.Launch(100)
	s.Update()
	s.Jump(0)

	assert.False(t, s.Animating())
	assert.Equal(t, 0, s.Offset())

	_, settled := s.Update()
	assert.False(t, settled)
}

func Test_ScrollAnimator_Update_IdleHoldsPosition(t *testing.T) {
	s := newScrollAnimator()

	s.Jump(7)

	offset, settled := s.Update()

	assert.Equal(t, 7, offset)
	assert.False(t, settled)
}
