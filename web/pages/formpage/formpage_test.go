package formpage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostyles/component"
	"gostyles/event"
)

func newPage(t *testing.T) *Host {
	t.Helper()
	h, err := New("form", component.Options{})
	require.NoError(t, err)
	return h
}

func TestNewPageIsBlank(t *testing.T) {
	s := newPage(t).State()
	require.Len(t, s.Values, Slots)
	for i, v := range s.Values {
		assert.Empty(t, v, "slot %d", i)
	}
	assert.NotNil(t, s.MultipleValues)
	assert.Empty(t, s.MultipleValues)
}

func TestInputChangesOnlyItsSlot(t *testing.T) {
	h := newPage(t)
	before := h.State()

	res := h.Handle(InputTarget(0), event.Input{Value: "test"})
	assert.Equal(t, component.Message, res.Adapted)
	assert.True(t, res.Rerender)

	after := h.State()
	assert.Equal(t, "test", after.Values[0])
	for i := 1; i < Slots; i++ {
		assert.Empty(t, after.Values[i], "slot %d", i)
	}
	assert.Empty(t, before.Values[0], "earlier states are not mutated")
}

func TestSingleSelectSetsSlot(t *testing.T) {
	h := newPage(t)
	h.Handle(SelectTarget(SlotLibrary), event.Select{Value: "yew_styles"})
	assert.Equal(t, "yew_styles", h.State().Values[SlotLibrary])
}

func TestMultiSelectCollectsSelectedInOrder(t *testing.T) {
	h := newPage(t)
	opts := []event.Option{
		{Value: "", Selected: false},
		{Value: "yew", Selected: true},
		{Value: "yew_styles", Selected: true},
		{Value: "yew_prism", Selected: false},
	}
	res := h.Handle(TargetMultiple, event.Select{Multiple: true, Options: opts})
	assert.True(t, res.Rerender)
	assert.Equal(t, []string{"yew", "yew_styles"}, h.State().MultipleValues)

	h.Handle(TargetMultiple, event.Select{Multiple: true})
	assert.Equal(t, []string{}, h.State().MultipleValues)
}

func TestOutOfRangeIsNoop(t *testing.T) {
	h := newPage(t)
	assert.False(t, h.Dispatch(InputChanged{Index: Slots, Value: "x"}))
	assert.False(t, h.Dispatch(SelectChanged{Index: -1, Value: "x"}))
	assert.Equal(t, component.Unexpected, h.Handle(InputTarget(99), event.Input{Value: "x"}).Adapted)
}

func TestUnexpectedEventsKeepState(t *testing.T) {
	h := newPage(t)
	h.Handle(InputTarget(1), event.Input{Value: "kept"})

	for _, tc := range []struct {
		target string
		ev     event.Event
	}{
		{InputTarget(1), event.Click{}},
		{InputTarget(1), event.Select{Value: "x"}},
		{TargetMultiple, event.Input{Value: "x"}},
		{"nowhere", event.Input{Value: "x"}},
		{InputTarget(1), event.Unknown{Name: "focus"}},
	} {
		res := h.Handle(tc.target, tc.ev)
		assert.Equal(t, component.Unexpected, res.Adapted, tc.target)
		assert.False(t, res.Rerender)
	}
	assert.Equal(t, "kept", h.State().Values[1])
}

func TestSameValueDoesNotRerender(t *testing.T) {
	h := newPage(t)
	assert.True(t, h.Dispatch(InputChanged{Index: 2, Value: "a"}))
	assert.False(t, h.Dispatch(InputChanged{Index: 2, Value: "a"}))

	always, err := New("form", component.Options{Policy: component.RenderAlways})
	require.NoError(t, err)
	always.Dispatch(InputChanged{Index: 2, Value: "a"})
	assert.True(t, always.Dispatch(InputChanged{Index: 2, Value: "a"}))
}

func TestReconfigureNeverRerenders(t *testing.T) {
	h := newPage(t)
	rerender, err := h.Reconfigure(Config{})
	require.NoError(t, err)
	assert.False(t, rerender)
}

func TestView(t *testing.T) {
	h := newPage(t)
	h.Handle(InputTarget(0), event.Input{Value: "hello"})
	h.Handle(TargetMultiple, event.Select{Options: []event.Option{{Value: "yew_prism", Selected: true}}})

	html, _ := h.Markup()
	for _, want := range []string{
		"Form Component",
		"Form input types",
		"standard input",
		"underline input",
		"Success input type",
		"Value: hello",
		"Select library",
		"Select multiple library",
		"Yew Styles",
		"gostyles.input(this,",
		"gostyles.select(this,",
		"gs-form-input-0",
		"gs-form-select-3",
		"gs-form-multi-select",
		"form-input standard medium",
		"form-input standard medium underline",
		"form-input success medium",
		"it-l-4 it-m-6 it-xs-12",
	} {
		assert.Contains(t, html, want)
	}
	assert.Equal(t, 3, strings.Count(html, `placeholder="test"`))
	assert.Contains(t, html, "yew_prism")
}
