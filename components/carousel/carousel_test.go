package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostyles/component"
	"gostyles/event"
	"gostyles/styles"
)

var slides = []Slide{{Title: "One"}, {Title: "Two"}, {Title: "Three"}}

func TestControlsForwardClicksToParent(t *testing.T) {
	var prev, next []event.Click
	cfg := ControlsConfig{
		Prev: event.NewCallback("prev", func(c event.Click) { prev = append(prev, c) }),
		Next: event.NewCallback("next", func(c event.Click) { next = append(next, c) }),
	}
	h, err := NewControls("controls", cfg, component.Options{})
	require.NoError(t, err)

	click := event.Click{X: 10, Y: 20, Button: 0, Shift: true}
	res := h.Handle(TargetNext, click)
	assert.Equal(t, component.Forwarded, res.Adapted)
	assert.False(t, res.Rerender)
	assert.Equal(t, []event.Click{click}, next, "the event reaches the parent unchanged")
	assert.Empty(t, prev)

	h.Handle(TargetPrev, event.Click{})
	assert.Len(t, prev, 1)

	assert.Equal(t, component.Unexpected, h.Handle(TargetPrev, event.Input{Value: "x"}).Adapted)
	assert.Equal(t, component.Unexpected, h.Handle("middle", event.Click{}).Adapted)
	assert.Len(t, prev, 1)
}

func TestControlsEquality(t *testing.T) {
	a := ControlsConfig{Prev: event.NewCallback("p", func(event.Click) {}), Palette: styles.Primary}
	b := ControlsConfig{Prev: event.NewCallback("p", func(event.Click) {}), Palette: styles.Primary}
	assert.True(t, a.Equal(b))

	b.Prev = event.NewCallback("p2", func(event.Click) {})
	assert.False(t, a.Equal(b))

	assert.True(t, ControlsConfig{}.Equal(ControlsConfig{Size: styles.Medium}), "defaults compare equal to their zero value")
}

func TestControlsView(t *testing.T) {
	h, err := NewControls("controls", ControlsConfig{Size: styles.Small, Style: styles.Outline, Palette: styles.Danger, ClassName: "x", Key: "k1"}, component.Options{})
	require.NoError(t, err)

	html, _ := h.Markup()
	assert.Contains(t, html, `class="carousel-control-left small outline danger x"`)
	assert.Contains(t, html, `class="carousel-control-right small outline danger x"`)
	assert.Contains(t, html, `data-key="k1"`)
	assert.Contains(t, html, "gostyles.click(event,")
}

func TestCarouselNavigation(t *testing.T) {
	h, err := New("slides", Config{Slides: slides, Dots: true}, component.Options{})
	require.NoError(t, err)

	assert.True(t, h.Dispatch(Prev{}))
	assert.Equal(t, 2, h.State().Active, "prev wraps to the last slide")
	h.Dispatch(Next{})
	h.Dispatch(Next{})
	assert.Equal(t, 1, h.State().Active)

	assert.False(t, h.Dispatch(Show{Index: 9}))
	assert.Equal(t, 1, h.State().Active)

	res := h.Handle("dot-0", event.Click{})
	assert.Equal(t, component.Message, res.Adapted)
	assert.Equal(t, 0, h.State().Active)
	assert.Equal(t, component.Unexpected, h.Handle("dot-x", event.Click{}).Adapted)
}

func TestControlsDriveCarousel(t *testing.T) {
	slidesHost, err := New("slides", Config{Slides: slides}, component.Options{})
	require.NoError(t, err)

	controls, err := NewControls("controls", ControlsConfig{
		Prev: event.NewCallback("slides.prev", func(event.Click) { slidesHost.Dispatch(Prev{}) }),
		Next: event.NewCallback("slides.next", func(event.Click) { slidesHost.Dispatch(Next{}) }),
	}, component.Options{})
	require.NoError(t, err)

	controls.Handle(TargetNext, event.Click{})
	assert.Equal(t, 1, slidesHost.State().Active)

	html, _ := slidesHost.Markup()
	assert.Contains(t, html, `class="carousel-slide active"`)
}

func TestCarouselReconcile(t *testing.T) {
	h, err := New("slides", Config{Slides: slides}, component.Options{})
	require.NoError(t, err)
	h.Dispatch(Show{Index: 2})

	rerender, err := h.Reconfigure(Config{Slides: slides[:1]})
	require.NoError(t, err)
	assert.True(t, rerender)
	assert.Equal(t, State{Active: 0, Count: 1}, h.State())

	_, err = New("empty", Config{}, component.Options{})
	assert.Error(t, err)
}
