// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/kb-dojo/pkg/types"
)

// optionFlags registers the processing flags shared by generate and batch.
func optionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("actions", []string{"generate"}, "actions to apply: generate, reauthor, format, translate")
	cmd.Flags().StringSlice("perspectives", nil, "perspective labels that each get a dedicated section (e.g. Beginner,Expert)")
	cmd.Flags().StringSlice("languages", nil, "target languages for translation (e.g. French,Spanish)")
	cmd.Flags().String("template", "", "path to a Markdown template document for reauthor/format")
	cmd.Flags().String("model", "gpt-4o-mini", "model identifier")
	cmd.Flags().String("base-url", "", "API base URL for OpenAI-compatible providers")
	cmd.Flags().Float64("temperature", 0.7, "sampling temperature")
	cmd.Flags().Int("max-tokens", 2000, "maximum completion tokens")
	cmd.Flags().String("output-dir", "", "directory for exported documents (default output/docs)")
	cmd.Flags().Bool("no-store", false, "skip recording results in the results store")
}

// buildOptions assembles the processing Options from flags, loading the
// template file when one is given.
func buildOptions(cmd *cobra.Command) (types.Options, error) {
	var opts types.Options

	actionNames, _ := cmd.Flags().GetStringSlice("actions")
	for _, name := range actionNames {
		a, err := types.ParseAction(name)
		if err != nil {
			return types.Options{}, err
		}
		opts.Actions = append(opts.Actions, a)
	}

	opts.Perspectives, _ = cmd.Flags().GetStringSlice("perspectives")
	opts.Languages, _ = cmd.Flags().GetStringSlice("languages")

	if tmplPath, _ := cmd.Flags().GetString("template"); tmplPath != "" {
		data, err := os.ReadFile(tmplPath)
		if err != nil {
			return types.Options{}, fmt.Errorf("reading template: %w", err)
		}
		opts.Template = string(data)
	}

	return opts, nil
}

// stringSetting resolves a string setting: an explicitly set flag wins, then
// the config file, then the flag default.
func stringSetting(cmd *cobra.Command, flag, viperKey string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	v, _ := cmd.Flags().GetString(flag)
	return v
}

// modelConfig assembles the model client settings from flags, config file,
// and loaded secrets.
func modelConfig(cmd *cobra.Command) types.ModelConfig {
	temperature, _ := cmd.Flags().GetFloat64("temperature")
	maxTokens, _ := cmd.Flags().GetInt("max-tokens")

	return types.ModelConfig{
		BaseURL:     stringSetting(cmd, "base-url", "model.base_url"),
		Name:        stringSetting(cmd, "model", "model.name"),
		APIKey:      secretDefault("openai-api-key", viper.GetString("model.api_key")),
		Temperature: temperature,
		MaxTokens:   maxTokens,
		Timeout:     viper.GetDuration("model.timeout"),
		MaxRetries:  viper.GetInt("model.max_retries"),
	}
}

// outputDir resolves the document output directory.
func outputDir(cmd *cobra.Command) string {
	if dir := stringSetting(cmd, "output-dir", "export.output_dir"); dir != "" {
		return dir
	}
	return "output/docs"
}

// storeConfig resolves the results store settings.
func storeConfig() types.StoreConfig {
	indexDir := viper.GetString("store.index_dir")
	if indexDir == "" {
		indexDir = "output/index"
	}
	return types.StoreConfig{
		IndexDir:   indexDir,
		MaxResults: viper.GetInt("store.max_results"),
	}
}

// newRunID produces a timestamp identifier grouping one run's results.
func newRunID() string {
	return time.Now().UTC().Format("20060102-150405")
}
