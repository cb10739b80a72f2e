// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/pdiddy/kb-dojo/internal/archive"
	"github.com/pdiddy/kb-dojo/internal/store"
	"github.com/pdiddy/kb-dojo/pkg/types"
)

// writeResults writes each result's document to outDir, records every
// result in the store (when one is open), and writes the combined
// kb_articles.zip when more than one result exists. A result whose export
// failed gets an error line instead of a file; it is still recorded.
func writeResults(ctx context.Context, results []types.Result, outDir, runID string, st *store.Store) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, r := range results {
		docPath := ""
		if r.Doc == nil {
			color.Red("  no document for %s (%s): export failed", r.Title, r.Language)
		} else {
			docPath = filepath.Join(outDir, r.FileName())
			if err := os.WriteFile(docPath, r.Doc, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", docPath, err)
			}
			color.Green("  wrote %s", docPath)
		}

		if st != nil {
			if err := st.Save(ctx, runID, r, docPath); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record result: %v\n", err)
			}
		}
	}

	if len(results) > 1 {
		zipPath := filepath.Join(outDir, archive.FileName)
		f, err := os.Create(zipPath)
		if err != nil {
			return fmt.Errorf("creating archive: %w", err)
		}
		if err := archive.Write(f, results); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing archive: %w", err)
		}
		color.Green("  wrote %s", zipPath)
	}

	return nil
}

// openStore opens the results store unless --no-store was given. A store
// that fails to open degrades to a warning; runs proceed without recording.
func openStore(noStore bool) *store.Store {
	if noStore {
		return nil
	}
	st, err := store.Open(storeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: results store unavailable: %v\n", err)
		return nil
	}
	return st
}
