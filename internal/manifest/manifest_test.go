// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "articles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("# Release notes\n"), 0o644))

	path := writeManifest(t, dir, `
articles:
  - title: Chocolate Cake
    content: write a recipe for chocolate cake
  - title: Release Notes
    content_file: notes.md
  - title: Empty Stub
`)

	articles, err := Load(path)
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "Chocolate Cake", articles[0].Title)
	assert.Equal(t, "write a recipe for chocolate cake", articles[0].Content)

	// content_file resolves relative to the manifest.
	assert.Equal(t, "# Release notes\n", articles[1].Content)

	// Empty content is a valid degenerate input.
	assert.Equal(t, "", articles[2].Content)
}

func TestLoadMissingTitle(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
articles:
  - content: no title here
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
}

func TestLoadNoArticles(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `articles: []`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no articles")
}

func TestLoadMissingContentFile(t *testing.T) {
	path := writeManifest(t, t.TempDir(), `
articles:
  - title: Broken
    content_file: does-not-exist.md
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading content file")
}

func TestLoadMissingManifest(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "articles: [not: valid: yaml")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing manifest")
}
