package web

import (
	"embed"
	"hash/fnv"
	"io/fs"
	"net/http"
	"path"
	"strconv"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

//go:embed all:static
var staticFiles embed.FS

const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#2c3e50"/><circle cx="150" cy="250" r="60" fill="#1abc9c"/><circle cx="250" cy="250" r="60" fill="#f39c12"/><circle cx="350" cy="250" r="60" fill="#e74c3c"/></svg>`

// The stylesheet and the event script follow the markup the components
// render, so browsers revalidate them on every load and reuse the copy
// only while the ETag still matches.
const (
	assetCacheControl   = "no-cache"
	faviconCacheControl = "public, max-age=86400"
)

var contentTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".js":  "application/javascript; charset=utf-8",
	".svg": "image/svg+xml",
}

// asset is an embedded file ready to serve.
type asset struct {
	body        []byte
	contentType string
	etag        string
}

// loadAssets reads every servable file under static/ keyed by its path below it.
func loadAssets(fsys fs.FS) (map[string]asset, error) {
	assets := make(map[string]asset)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ct, ok := contentTypes[path.Ext(p)]
		if !ok {
			return nil
		}
		body, err := fs.ReadFile(fsys, p)
		if err != nil {
			return serr.Wrap(err, "failed to read static file "+p)
		}
		assets[p] = asset{body: body, contentType: ct, etag: etagOf(body)}
		return nil
	})
	return assets, err
}

func etagOf(body []byte) string {
	h := fnv.New64a()
	_, _ = h.Write(body)
	return `"` + strconv.FormatUint(h.Sum64(), 36) + `"`
}

// SetupStaticFiles serves the embedded stylesheet and script under /static/
// and the favicon.
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}
	assets, err := loadAssets(staticFS)
	if err != nil {
		logger.LogErr(err, "failed to load static assets")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", contentTypes[".svg"])
		c.Response().SetHeader("Cache-Control", faviconCacheControl)
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		a, ok := assets[c.Request().Path()[len("/static/"):]]
		if !ok {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		c.Response().SetHeader("Cache-Control", assetCacheControl)
		c.Response().SetHeader("ETag", a.etag)
		if c.Request().Header("If-None-Match") == a.etag {
			c.SetStatus(http.StatusNotModified)
			return nil
		}

		c.Response().SetHeader("Content-Type", a.contentType)
		return c.Bytes(a.body)
	})
}
