package navbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewScroller_StartsIdle(t *testing.T) {
	s := NewScroller()

	assert.Equal(t, ScrollIdle, s.Current())
	assert.False(t, s.IsScrolling())
	assert.False(t, s.IsSettling())
}

func Test_Scroller_Lifecycle(t *testing.T) {
	s := NewScroller()

	s.Launch()
	assert.True(t, s.IsScrolling())

	s.Arrive()
	assert.True(t, s.IsSettling())

	s.Settle()
	assert.Equal(t, ScrollIdle, s.Current())
}

func Test_Scroller_RetargetDuringFlight(t *testing.T) {
	s := NewScroller()

	s.Launch()
	s.Launch()

	assert.True(t, s.IsScrolling())
}

func Test_Scroller_LaunchWhileSettling(t *testing.T) {
	s := NewScroller()

	s.Launch()
	s.Arrive()
	s.Launch()

	assert.True(t, s.IsScrolling())
}

func Test_Scroller_ArriveWhenIdleIsIgnored(t *testing.T) {
	s := NewScroller()

	s.Arrive()

	assert.Equal(t, ScrollIdle, s.Current())
}
