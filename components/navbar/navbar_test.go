package navbar

import (
	"strings"
	"sync"
	"testing"

	"github.com/rohanthewiz/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostyles/component"
	"gostyles/event"
	"gostyles/styles"
)

func links() []element.Component {
	return []element.Component{
		Item{Text: "Home", Href: "/", Active: true},
		Item{Text: "Forms", Href: "/#forms"},
	}
}

func TestMenuToggleRoundTrip(t *testing.T) {
	var s State
	var rerender bool

	s, rerender = Navbar{}.Fold(s, MenuToggled{})
	assert.True(t, s.MenuOpen)
	assert.True(t, rerender)

	s, _ = Navbar{}.Fold(s, MenuToggled{})
	assert.Equal(t, State{}, s)
}

func TestMenuOpensThroughClick(t *testing.T) {
	h, err := New("navbar", Config{Children: links()}, component.Options{})
	require.NoError(t, err)
	assert.False(t, h.State().MenuOpen)

	html, _ := h.Markup()
	assert.NotContains(t, html, "navbar-menu\"")

	res := h.Handle(TargetMenu, event.Click{})
	assert.Equal(t, component.Message, res.Adapted)
	assert.True(t, res.Rerender)
	assert.True(t, h.State().MenuOpen)

	html, delta := h.Markup()
	assert.True(t, delta.Changed)
	assert.Contains(t, html, `class="navbar-menu"`)
	assert.Equal(t, 2, strings.Count(html, "Forms"), "links render in both bars when the menu is open")
}

func TestUnexpectedEventsKeepState(t *testing.T) {
	h, err := New("navbar", Config{}, component.Options{})
	require.NoError(t, err)

	assert.Equal(t, component.Unexpected, h.Handle(TargetMenu, event.Input{Value: "x"}).Adapted)
	assert.Equal(t, component.Unexpected, h.Handle("logo", event.Click{}).Adapted)
	assert.False(t, h.State().MenuOpen)
}

func TestClassDerivation(t *testing.T) {
	cfg := Config{Palette: styles.Primary, Style: styles.Outline, ClassName: "site-nav"}
	assert.Equal(t, "outline primary site-nav", Classes(cfg))
	assert.Equal(t, Classes(cfg), Classes(cfg))
	assert.Equal(t, "regular standard", Classes(Config{}))

	h, err := New("nav", cfg, component.Options{})
	require.NoError(t, err)
	html, _ := h.Markup()
	assert.Contains(t, html, `class="navbar outline primary site-nav"`)
	assert.Contains(t, html, `class="navbar-mobile outline primary site-nav"`)
	assert.Contains(t, html, `style="position:fixed;top:0;"`)
}

func TestFixedStyle(t *testing.T) {
	assert.Equal(t, "position:fixed;top:0;", FixedStyle(""))
	assert.Equal(t, "bottom:0;position:fixed;", FixedStyle(Bottom))
	assert.Equal(t, "position:inherit;", FixedStyle(None))
}

func TestReconfigureComparesByValue(t *testing.T) {
	cfg := Config{Palette: styles.Info, Children: links()}
	h, err := New("navbar", cfg, component.Options{})
	require.NoError(t, err)

	same := Config{Palette: styles.Info, Children: links()}
	rerender, err := h.Reconfigure(same)
	require.NoError(t, err)
	assert.False(t, rerender, "structurally equal configuration must not re-render")

	changed := same
	changed.Style = styles.Light
	rerender, err = h.Reconfigure(changed)
	require.NoError(t, err)
	assert.True(t, rerender)
	assert.Equal(t, styles.Light, h.Config().Style)

	_, err = h.Reconfigure(Config{Fixed: "left"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Fixed "left"`)
}

func TestRegistryReceivesLastPosition(t *testing.T) {
	reg := styles.NewRegistry()
	h, err := New("main-nav", Config{Registry: reg}, component.Options{})
	require.NoError(t, err)
	assert.Equal(t, "position:fixed;top:0;", reg.Inline("main-nav"))

	_, err = h.Reconfigure(Config{Registry: reg, Fixed: Bottom})
	require.NoError(t, err)
	assert.Equal(t, "bottom:0;position:fixed;", reg.Inline("main-nav"))

	_, err = h.Reconfigure(Config{Registry: reg, Fixed: None})
	require.NoError(t, err)
	assert.Equal(t, "position:inherit;", reg.Inline("main-nav"))

	other, err := New("second", Config{Registry: reg, RegistryKey: "navbar", Fixed: Bottom}, component.Options{})
	require.NoError(t, err)
	require.NotNil(t, other)
	v, ok := reg.Get("navbar", "bottom")
	assert.True(t, ok)
	assert.Equal(t, "0", v)
}

func TestSharedKeyHoldsOneWritersPosition(t *testing.T) {
	reg := styles.NewRegistry()
	top, err := New("top-nav", Config{Registry: reg, RegistryKey: "navbar", Fixed: Top}, component.Options{})
	require.NoError(t, err)
	bottom, err := New("bottom-nav", Config{Registry: reg, RegistryKey: "navbar", Fixed: Bottom}, component.Options{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = top.Reconfigure(Config{Registry: reg, RegistryKey: "navbar", Fixed: Top, ClassName: "c" + string(rune('a'+i%26))})
		}()
		go func() {
			defer wg.Done()
			_, _ = bottom.Reconfigure(Config{Registry: reg, RegistryKey: "navbar", Fixed: Bottom, ClassName: "c" + string(rune('a'+i%26))})
		}()
	}
	wg.Wait()

	rules := reg.Rules("navbar")
	_, hasTop := rules["top"]
	_, hasBottom := rules["bottom"]
	assert.True(t, hasTop != hasBottom, "got %v", rules)
}

func TestParseFixed(t *testing.T) {
	f, err := ParseFixed(" Bottom ")
	require.NoError(t, err)
	assert.Equal(t, Bottom, f)

	f, err = ParseFixed("")
	require.NoError(t, err)
	assert.Equal(t, Top, f)

	_, err = ParseFixed("left")
	assert.Error(t, err)
}
