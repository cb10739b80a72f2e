// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive bundles exported documents into a combined zip download.
package archive

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/pdiddy/kb-dojo/pkg/types"
)

// FileName is the name of the combined archive.
const FileName = "kb_articles.zip"

// Write writes every result that has a document into a zip archive on w,
// using the same {title}_{language}.docx naming as the individual downloads.
// Results whose export failed (nil Doc) are skipped.
func Write(w io.Writer, results []types.Result) error {
	zw := zip.NewWriter(w)

	for _, r := range results {
		if r.Doc == nil {
			continue
		}
		f, err := zw.Create(r.FileName())
		if err != nil {
			return fmt.Errorf("creating archive entry %s: %w", r.FileName(), err)
		}
		if _, err := f.Write(r.Doc); err != nil {
			return fmt.Errorf("writing archive entry %s: %w", r.FileName(), err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}
