package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/app/bus"
	"folio/internal/config"
)

func newTestProvider(t *testing.T, b bus.Bus) Provider {
	t.Helper()

	if b == nil {
		b = bus.NoOp()
	}

	p, err := NewProvider(config.DefaultConfig(), b, nil)
	require.NoError(t, err)

	return p
}

func Test_NewProvider_DefaultLanguage(t *testing.T) {
	p := newTestProvider(t, nil)

	assert.Equal(t, "en", p.Language())
	assert.Equal(t, []string{"en", "es"}, p.Languages())
}

func Test_NavigationItems_OrderAndIDs(t *testing.T) {
	p := newTestProvider(t, nil)

	items := p.NavigationItems()

	require.Len(t, items, 6)
	assert.Equal(t, "about", items[0].ID)
	assert.Equal(t, "experience", items[1].ID)
	assert.Equal(t, "skills", items[2].ID)
	assert.Equal(t, "projects", items[3].ID)
	assert.Equal(t, "education", items[4].ID)
	assert.Equal(t, "contact", items[5].ID)

	for _, item := range items {
		assert.Equal(t, "#"+item.ID, item.Href)
		assert.NotEmpty(t, item.Name)
	}
}

func Test_SetLanguage_ReplacesListWholesale(t *testing.T) {
	p := newTestProvider(t, nil)

	before := p.NavigationItems()
	require.NoError(t, p.SetLanguage("es"))
	after := p.NavigationItems()

	require.Len(t, after, len(before))

	for i := range after {
		assert.Equal(t, before[i].ID, after[i].ID)
	}

	assert.Equal(t, "Habilidades", after[2].Name)
	assert.Equal(t, "Skills", before[2].Name)
}

func Test_SetLanguage_Unsupported(t *testing.T) {
	p := newTestProvider(t, nil)

	err := p.SetLanguage("fr")

	assert.Error(t, err)
	assert.Equal(t, "en", p.Language())
}

func Test_SetLanguage_PublishesEvent(t *testing.T) {
	b := bus.New(config.DefaultConfig(), nil)
	defer b.Close()

	ch := b.Subscribe(context.Background())
	p := newTestProvider(t, b)

	require.NoError(t, p.SetLanguage("es"))

	select {
	case msg := <-ch:
		assert.Equal(t, bus.EventLanguageChanged, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("expected language-changed event")
	}
}

func Test_SetLanguage_SameLanguageNoEvent(t *testing.T) {
	b := bus.New(config.DefaultConfig(), nil)
	defer b.Close()

	ch := b.Subscribe(context.Background())
	p := newTestProvider(t, b)

	require.NoError(t, p.SetLanguage("en"))

	select {
	case msg := <-ch:
		t.Fatalf("expected no event, got %v", msg.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func Test_CycleLanguage_WrapsAround(t *testing.T) {
	p := newTestProvider(t, nil)

	p.CycleLanguage()
	assert.Equal(t, "es", p.Language())

	p.CycleLanguage()
	assert.Equal(t, "en", p.Language())
}

func Test_UIText_Localized(t *testing.T) {
	p := newTestProvider(t, nil)

	en := p.UIText()
	assert.Equal(t, "Download CV", en.DownloadCV)
	assert.Equal(t, "Back to top", en.BackToTop)
	assert.Equal(t, "Open menu", en.OpenMenu)
	assert.Equal(t, "Close menu", en.CloseMenu)

	require.NoError(t, p.SetLanguage("es"))

	es := p.UIText()
	assert.Equal(t, "Descargar CV", es.DownloadCV)
	assert.Equal(t, "Cerrar menú", es.CloseMenu)
}

func Test_Lookup_FallsBackToKey(t *testing.T) {
	p := newTestProvider(t, nil)

	assert.Equal(t, "missing.key", p.Lookup("missing.key"))
}

func Test_Sections_MatchNavigationOrder(t *testing.T) {
	p := newTestProvider(t, nil)

	items := p.NavigationItems()
	sections := p.Sections()

	require.Len(t, sections, len(items))

	for i, section := range sections {
		assert.Equal(t, items[i].ID, section.ID)
		assert.Equal(t, items[i].Name, section.Title)
		assert.NotEmpty(t, section.Body)
	}
}

func Test_Reload_RepublishesLanguage(t *testing.T) {
	b := bus.New(config.DefaultConfig(), nil)
	defer b.Close()

	ch := b.Subscribe(context.Background())
	p := newTestProvider(t, b)

	require.NoError(t, p.Reload())

	select {
	case msg := <-ch:
		assert.Equal(t, bus.EventLanguageChanged, msg.Type)
	case <-time.After(time.Second):
		t.Fatal("expected language-changed event after reload")
	}
}
