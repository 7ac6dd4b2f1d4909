// Package demo is the showcase page. Each browser session gets its own Shell
// holding the mounted components; query parameters pick the variants.
package demo

import (
	"sync"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"

	"gostyles/component"
	"gostyles/components/carousel"
	"gostyles/components/navbar"
	"gostyles/event"
	"gostyles/styles"
	"gostyles/web/pages/formpage"
)

// Instance names mounted in every session.
const (
	NavbarName   = "navbar"
	CarouselName = "carousel"
	ControlsName = "carousel-controls"
	FormName     = "form"
)

const attachKey = "demo.shell"

// Variant is the presentation chosen for the page.
type Variant struct {
	Palette styles.Palette
	Style   styles.Style
	Size    styles.Size
	Fixed   navbar.Fixed
}

// ParseVariant reads palette, style, size and fixed through get (usually a
// query parameter lookup). Missing values fall back to base.
func ParseVariant(get func(string) string, base Variant) (Variant, error) {
	v := base
	var err error

	if s := get("palette"); s != "" {
		if v.Palette, err = styles.ParsePalette(s); err != nil {
			return base, err
		}
	}
	if s := get("style"); s != "" {
		if v.Style, err = styles.ParseStyle(s); err != nil {
			return base, err
		}
	}
	if s := get("size"); s != "" {
		if v.Size, err = styles.ParseSize(s); err != nil {
			return base, err
		}
	}
	if s := get("fixed"); s != "" {
		if v.Fixed, err = navbar.ParseFixed(s); err != nil {
			return base, err
		}
	}
	return v, nil
}

// Slides shown by the demo carousel.
var Slides = []carousel.Slide{
	{Title: "Palettes", Caption: "Eight colour schemes shared by every component."},
	{Title: "Sizes", Caption: "Small, medium and big."},
	{Title: "Styles", Caption: "Regular, light and outline renditions."},
}

// Shell holds the components of one session.
type Shell struct {
	mu      sync.Mutex
	variant Variant

	Styles   *styles.Registry
	Navbar   *navbar.Host
	Carousel *carousel.Host
	Controls *carousel.ControlsHost
	Form     *formpage.Host
}

// NewShell mounts the demo components with variant v.
func NewShell(v Variant, opts component.Options) (*Shell, error) {
	sh := &Shell{variant: v, Styles: styles.NewRegistry()}
	var err error

	if sh.Navbar, err = navbar.New(NavbarName, sh.navbarConfig(v), opts); err != nil {
		return nil, err
	}
	if sh.Carousel, err = carousel.New(CarouselName, carousel.Config{Slides: Slides, Dots: true}, opts); err != nil {
		return nil, err
	}
	if sh.Controls, err = carousel.NewControls(ControlsName, sh.controlsConfig(v), opts); err != nil {
		return nil, err
	}
	if sh.Form, err = formpage.New(FormName, opts); err != nil {
		return nil, err
	}
	return sh, nil
}

// Load returns the shell of sess, creating and mounting it on first use.
func Load(sess *component.Session, v Variant, opts component.Options) (*Shell, error) {
	val, err := sess.Attach(attachKey, func() (any, error) {
		sh, err := NewShell(v, opts)
		if err != nil {
			return nil, err
		}
		return sh, nil
	})
	if err != nil {
		return nil, err
	}

	sh, ok := val.(*Shell)
	if !ok {
		return nil, serr.New("session value " + attachKey + " is not a demo shell")
	}
	// Mount replaces by name, so a repeat load re-registers the same hosts.
	for _, inst := range sh.Instances() {
		sess.Mount(inst)
	}
	return sh, nil
}

// Instances lists the mounted components.
func (sh *Shell) Instances() []component.Instance {
	return []component.Instance{sh.Navbar, sh.Carousel, sh.Controls, sh.Form}
}

// Variant is the variant last applied.
func (sh *Shell) Variant() Variant {
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.variant
}

// Apply passes a new variant down to the components. It reports whether any
// of them adopted a changed configuration.
func (sh *Shell) Apply(v Variant) (bool, error) {
	sh.mu.Lock()
	defer sh.mu.Unlock()

	navChanged, err := sh.Navbar.Reconfigure(sh.navbarConfig(v))
	if err != nil {
		return false, err
	}
	ctlChanged, err := sh.Controls.Reconfigure(sh.controlsConfig(v))
	if err != nil {
		return false, err
	}
	sh.variant = v
	return navChanged || ctlChanged, nil
}

func (sh *Shell) navbarConfig(v Variant) navbar.Config {
	return navbar.Config{
		Palette:  v.Palette,
		Style:    v.Style,
		Fixed:    v.Fixed,
		Registry: sh.Styles,
		Children: []element.Component{
			navbar.Item{Text: "Forms", Href: "#forms"},
			navbar.Item{Text: "Carousel", Href: "#carousel"},
			navbar.Item{Text: "Variants", Href: "#variants"},
		},
	}
}

func (sh *Shell) controlsConfig(v Variant) carousel.ControlsConfig {
	return carousel.ControlsConfig{
		Prev:    event.NewCallback(CarouselName+".prev", func(event.Click) { sh.Carousel.Dispatch(carousel.Prev{}) }),
		Next:    event.NewCallback(CarouselName+".next", func(event.Click) { sh.Carousel.Dispatch(carousel.Next{}) }),
		Style:   v.Style,
		Palette: v.Palette,
		Size:    v.Size,
	}
}
