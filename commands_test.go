package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gostyles/components/navbar"
	"gostyles/styles"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-18"

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "1.2.3")
	require.Contains(t, output, "abcdef1")
	require.Contains(t, output, "2026-10-18")
}

func TestLoadConfigAppliesDemoVariant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gostyles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo:\n  palette: warning\n  fixed: none\n"), 0o600))

	cfg, err := loadConfig(&rootFlags{configPath: path})
	require.NoError(t, err)

	v := variantOf(cfg.Demo)
	require.Equal(t, styles.Warning, v.Palette)
	require.Equal(t, navbar.None, v.Fixed)
}

func TestServeRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gostyles.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demo:\n  size: enormous\n"), 0o600))

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"serve", "--config", path})
	require.Error(t, root.Execute())
}
