// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pdiddy/kb-dojo/internal/export"
	"github.com/pdiddy/kb-dojo/internal/manifest"
	"github.com/pdiddy/kb-dojo/internal/model"
	"github.com/pdiddy/kb-dojo/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process multiple articles from a manifest",
	Long: `Batch runs the article pipeline over every entry of a YAML manifest,
strictly sequentially, with a progress bar tracking completed operations.
One operation is one content pass or one per-language translation pass.

Manifest format:

  articles:
    - title: Chocolate Cake
      content: write a recipe for chocolate cake
    - title: Release Notes
      content_file: notes/release.md`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("manifest", "articles.yaml", "path to the batch manifest")
	optionFlags(batchCmd)

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	manifestPath, _ := cmd.Flags().GetString("manifest")
	articles, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}

	runner, err := export.DetectPandoc()
	if err != nil {
		return err
	}

	client := model.New(modelConfig(cmd))
	p := pipeline.New(client, export.NewDocxExporter(runner), opts, os.Stderr)

	totalOps := len(articles) * opts.OperationsPerArticle()
	bar := newProgressBar(totalOps, "processing articles")
	sink := func(completed, total int) {
		bar.Set(completed)
	}

	results := p.ProcessBatch(cmd.Context(), articles, sink)
	bar.Finish()
	fmt.Fprintln(os.Stderr)

	noStore, _ := cmd.Flags().GetBool("no-store")
	st := openStore(noStore)
	if st != nil {
		defer st.Close()
	}

	if err := writeResults(cmd.Context(), results, outputDir(cmd), newRunID(), st); err != nil {
		return err
	}

	fmt.Printf("Produced %d result(s) from %d article(s).\n", len(results), len(articles))
	return nil
}

func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("ops"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}
