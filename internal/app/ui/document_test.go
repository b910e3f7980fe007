package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/app/content"
	"folio/internal/app/theme"
)

func testSections() []content.Section {
	return []content.Section{
		{ID: "about", Title: "About", Body: "line one\nline two"},
		{ID: "projects", Title: "Projects", Body: "a project"},
		{ID: "contact", Title: "Contact", Body: "mail me"},
	}
}

func Test_Document_Rebuild_Offsets(t *testing.T) {
	d := NewDocument()

	d.Rebuild(testSections(), 80)

	first, ok := d.SectionOffset("about")
	require.True(t, ok)
	assert.Equal(t, 0, first)

	second, ok := d.SectionOffset("projects")
	require.True(t, ok)

	third, ok := d.SectionOffset("contact")
	require.True(t, ok)

	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
	assert.Greater(t, d.Height(), third)

	_, ok = d.SectionOffset("missing")
	assert.False(t, ok)
}

func Test_Document_Rebuild_ReplacesPreviousContent(t *testing.T) {
	d := NewDocument()

	d.Rebuild(testSections(), 80)
	d.Rebuild(testSections()[:1], 80)

	_, ok := d.SectionOffset("contact")
	assert.False(t, ok)
}

func Test_Document_FragmentHistory(t *testing.T) {
	d := NewDocument()

	assert.Equal(t, "", d.Fragment())

	d.PushFragment("about")
	assert.Equal(t, "#about", d.Fragment())

	d.PushFragment("contact")
	d.ClearFragment()

	assert.Equal(t, "", d.Fragment())
	assert.Equal(t, []string{"#about", "#contact", ""}, d.History())
}

func Test_Document_ClearFragment_NoopAtRoot(t *testing.T) {
	d := NewDocument()

	d.ClearFragment()

	assert.Empty(t, d.History())
}

func Test_Document_ThemeTransition(t *testing.T) {
	d := NewDocument()

	assert.Equal(t, theme.Dark, d.Theme())
	assert.False(t, d.Transitioning())

	d.ApplyTheme(theme.Light)

	assert.Equal(t, theme.Light, d.Theme())
	assert.True(t, d.Transitioning())

	d.ExpireTransition(time.Hour)
	assert.True(t, d.Transitioning())

	d.ExpireTransition(0)
	assert.False(t, d.Transitioning())
}

func Test_Document_Focus(t *testing.T) {
	d := NewDocument()

	assert.Equal(t, FocusNone, d.Focus())

	d.FocusMenuTrigger()
	assert.Equal(t, FocusMenuTrigger, d.Focus())

	d.ClearFocus()
	assert.Equal(t, FocusNone, d.Focus())
}

func Test_Document_ScrollTo_ClampsNegative(t *testing.T) {
	d := NewDocument()

	d.ScrollTo(-5, false)

	assert.Equal(t, 0, d.Scroll().Offset())
}
