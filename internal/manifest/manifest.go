// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package manifest loads batch run manifests: YAML files listing the
// articles to process.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/kb-dojo/pkg/types"
)

// Manifest is the top-level structure of a batch manifest file.
type Manifest struct {
	Articles []Entry `yaml:"articles"`
}

// Entry describes one article. Content may be given inline or as a file
// path relative to the manifest.
type Entry struct {
	Title       string `yaml:"title"`
	Content     string `yaml:"content,omitempty"`
	ContentFile string `yaml:"content_file,omitempty"`
}

// Load reads a manifest file and resolves every entry into an Article.
// Entries with a content_file have the file's contents loaded, resolved
// relative to the manifest's directory. A title is required for each entry;
// empty content is a valid degenerate input, not an error.
func Load(path string) ([]types.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	if len(m.Articles) == 0 {
		return nil, fmt.Errorf("manifest %s lists no articles", path)
	}

	baseDir := filepath.Dir(path)
	articles := make([]types.Article, 0, len(m.Articles))

	for i, e := range m.Articles {
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("manifest entry %d: title is required", i+1)
		}

		content := e.Content
		if e.ContentFile != "" {
			cf := e.ContentFile
			if !filepath.IsAbs(cf) {
				cf = filepath.Join(baseDir, cf)
			}
			data, err := os.ReadFile(cf)
			if err != nil {
				return nil, fmt.Errorf("manifest entry %q: reading content file: %w", e.Title, err)
			}
			content = string(data)
		}

		articles = append(articles, types.Article{Title: e.Title, Content: content})
	}

	return articles, nil
}
