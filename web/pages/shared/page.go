// Package shared contains the page furniture used by every page.
package shared

// Page is embedded by page components to get the banner and footer.
type Page struct {
	Title    string
	Subtitle string
}

func (p Page) Banner() Banner {
	return Banner{Title: p.Title, Subtitle: p.Subtitle}
}

func (p Page) Footer() Footer {
	return Footer{}
}
