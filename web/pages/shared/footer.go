package shared

import "github.com/rohanthewiz/element"

type Footer struct{}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "footer").R(
		b.P().T("Copyright &copy; 2026 gostyles"),
	)
	return nil
}
