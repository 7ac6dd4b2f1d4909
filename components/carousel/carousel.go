package carousel

import (
	"html"
	"slices"
	"strconv"
	"strings"

	"github.com/rohanthewiz/element"

	"gostyles/component"
	"gostyles/event"
	"gostyles/styles"
)

// Slide is one page of a Carousel.
type Slide struct {
	Title   string
	Caption string
	Src     string
}

// Config lists the slides. Dots renders one clickable dot per slide.
type Config struct {
	Slides    []Slide `validate:"min=1"`
	ClassName string
	ID        string
	Dots      bool
}

func (c Config) Validate() error { return styles.Validate("carousel", c) }

func (c Config) Equal(o Config) bool {
	return slices.Equal(c.Slides, o.Slides) && c.ClassName == o.ClassName && c.ID == o.ID && c.Dots == o.Dots
}

// State is the index of the visible slide.
type State struct {
	Active int `json:"active"`
	Count  int `json:"count"`
}

// Msg is the carousel message union.
type Msg interface{ isCarouselMsg() }

// Prev and Next move by one slide, wrapping around. Show jumps to an index.
type (
	Prev struct{}
	Next struct{}
	Show struct{ Index int }
)

func (Prev) isCarouselMsg() {}
func (Next) isCarouselMsg() {}
func (Show) isCarouselMsg() {}

// Carousel implements component.Reducer.
type Carousel struct{}

// Host is a mounted carousel.
type Host = component.Host[Config, State, Msg]

// New mounts a carousel called name.
func New(name string, cfg Config, opts component.Options) (*Host, error) {
	return component.New[Config, State, Msg](name, Carousel{}, cfg, opts)
}

func (Carousel) Name() string { return "carousel" }

func (Carousel) Init(cfg Config) State { return State{Count: len(cfg.Slides)} }

// Reconcile keeps the active index inside a new slide list.
func (Carousel) Reconcile(s State, cfg Config) State {
	s.Count = len(cfg.Slides)
	if s.Active >= s.Count {
		s.Active = 0
	}
	return s
}

func (Carousel) Fold(s State, msg Msg) (State, bool) {
	if s.Count == 0 {
		return s, false
	}
	switch m := msg.(type) {
	case Prev:
		s.Active = (s.Active - 1 + s.Count) % s.Count
	case Next:
		s.Active = (s.Active + 1) % s.Count
	case Show:
		if m.Index < 0 || m.Index >= s.Count {
			return s, false
		}
		s.Active = m.Index
	default:
		return s, false
	}
	return s, true
}

const dotPrefix = "dot-"

func (Carousel) Adapt(_ Config, target string, ev event.Event) (Msg, component.Adapted) {
	if _, ok := ev.(event.Click); !ok || !strings.HasPrefix(target, dotPrefix) {
		return nil, component.Unexpected
	}
	i, err := strconv.Atoi(strings.TrimPrefix(target, dotPrefix))
	if err != nil {
		return nil, component.Unexpected
	}
	return Show{Index: i}, component.Message
}

func (Carousel) View(b *element.Builder, sc component.Scope, s State, cfg Config) {
	root := []string{"class", styles.Classes("carousel-container", cfg.ClassName)}
	root = append(root, component.Pair("id", cfg.ID)...)

	b.Div(root...).R(
		b.Wrap(func() {
			for i, sl := range cfg.Slides {
				active := ""
				if i == s.Active {
					active = "active"
				}
				b.DivClass(styles.Classes("carousel-slide", active)).R(
					b.Wrap(func() {
						if sl.Src != "" {
							b.T(`<img src="` + html.EscapeString(sl.Src) + `" alt="` + html.EscapeString(sl.Title) + `"/>`)
						}
					}),
					b.H3().T(html.EscapeString(sl.Title)),
					b.P().T(html.EscapeString(sl.Caption)),
				)
			}
		}),
		b.Wrap(func() {
			if !cfg.Dots {
				return
			}
			b.DivClass("carousel-dots").R(
				b.Wrap(func() {
					for i := range cfg.Slides {
						class := "carousel-dot"
						if i == s.Active {
							class += " active"
						}
						target := dotPrefix + strconv.Itoa(i)
						b.Span(component.Attrs([]string{"class", class, "id", sc.ID(target)}, sc.OnClick(target))...).R()
					}
				}),
			)
		}),
	)
}
