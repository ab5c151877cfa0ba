package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"howmanyq-sitegen/internal/nav"
	"howmanyq-sitegen/pkg/config"
	"howmanyq-sitegen/pkg/errors"
)

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "christmas_countdown"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "christmas_countdown", "index.html"),
		[]byte(`<html><script src="share-utils.js"></script></html>`), 0o644))

	cfg := &config.Config{
		SiteRoot:  root,
		NavOutput: "navigation_data.json",
	}

	doc, err := generate(cfg, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Statistics.TotalTools)
	assert.Equal(t, "run-1", doc.Metadata.ScanID)

	// The document landed on disk and round-trips.
	loaded, err := nav.Load(cfg.NavPath())
	require.NoError(t, err)
	assert.Equal(t, "christmas_countdown", loaded.Tools[0].FolderName)
	assert.Equal(t, "time", loaded.Tools[0].Category)
}

func TestGenerateUnreadableRoot(t *testing.T) {
	cfg := &config.Config{
		SiteRoot:  filepath.Join(t.TempDir(), "does_not_exist"),
		NavOutput: "navigation_data.json",
	}

	_, err := generate(cfg, "run-1")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeScan))
}
