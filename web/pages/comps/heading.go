package comps

import (
	"html"
	"strconv"

	"github.com/rohanthewiz/element"

	"gostyles/styles"
)

// Heading is a page or section title. Level 1 is the default.
type Heading struct {
	Title     string
	Level     int
	ClassName string
}

func (h Heading) Render(b *element.Builder) (x any) {
	level := h.Level
	if level < 1 || level > 6 {
		level = 1
	}
	tag := "h" + strconv.Itoa(level)
	b.T(`<` + tag + ` class="` + styles.Classes("heading", h.ClassName) + `">` + html.EscapeString(h.Title) + `</` + tag + `>`)
	return
}
