package web

import (
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAssetsServesEmbeddedFiles(t *testing.T) {
	staticFS, err := fs.Sub(staticFiles, "static")
	require.NoError(t, err)

	assets, err := loadAssets(staticFS)
	require.NoError(t, err)
	require.Len(t, assets, 2)

	css, ok := assets["css/gostyles.css"]
	require.True(t, ok)
	assert.Equal(t, "text/css; charset=utf-8", css.contentType)
	assert.NotEmpty(t, css.body)

	js, ok := assets["js/gostyles.js"]
	require.True(t, ok)
	assert.Equal(t, "application/javascript; charset=utf-8", js.contentType)
	assert.NotEqual(t, css.etag, js.etag)
}

func TestLoadAssetsSkipsUnknownTypes(t *testing.T) {
	assets, err := loadAssets(fstest.MapFS{
		"css/a.css":  {Data: []byte("a{}")},
		"notes.txt":  {Data: []byte("skip")},
		"img/x.svg":  {Data: []byte("<svg/>")},
		"font/f.ttf": {Data: []byte{0}},
	})
	require.NoError(t, err)
	assert.Len(t, assets, 2)
	assert.Contains(t, assets, "css/a.css")
	assert.Contains(t, assets, "img/x.svg")
}

func TestEtagTracksContent(t *testing.T) {
	assert.Equal(t, etagOf([]byte("a{}")), etagOf([]byte("a{}")))
	assert.NotEqual(t, etagOf([]byte("a{}")), etagOf([]byte("b{}")))
	assert.Regexp(t, `^"[0-9a-z]+"$`, etagOf([]byte("a{}")))
}
