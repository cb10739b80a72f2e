// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/kb-dojo/internal/export"
	"github.com/pdiddy/kb-dojo/internal/model"
	"github.com/pdiddy/kb-dojo/internal/pipeline"
	"github.com/pdiddy/kb-dojo/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Process a single article through the pipeline",
	Long: `Generate runs the article pipeline for one title and content input.
The content may be raw notes to reauthor or a directive to fulfill (e.g.
"write a recipe for chocolate cake"). Exported documents land in the
output directory; one per target language when translating, otherwise a
single Original variant.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("title", "", "article title (required)")
	generateCmd.Flags().String("content", "", "raw content or a request directive")
	generateCmd.Flags().String("content-file", "", "read content from a file instead of --content")
	optionFlags(generateCmd)
	generateCmd.MarkFlagRequired("title")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")

	content, _ := cmd.Flags().GetString("content")
	if contentFile, _ := cmd.Flags().GetString("content-file"); contentFile != "" {
		data, err := os.ReadFile(contentFile)
		if err != nil {
			return fmt.Errorf("reading content file: %w", err)
		}
		content = string(data)
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

	results := p.ProcessArticle(cmd.Context(), types.Article{Title: title, Content: content})

	noStore, _ := cmd.Flags().GetBool("no-store")
	st := openStore(noStore)
	if st != nil {
		defer st.Close()
	}

	return writeResults(cmd.Context(), results, outputDir(cmd), newRunID(), st)
}
