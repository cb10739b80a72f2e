// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/kb-dojo/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Browse previously produced articles (list, search, show)",
	Long: `Results queries the local results store. Every generate and batch run
records its output variants there; use subcommands to list recent results,
search them with full-text queries, or show one in full.`,
}

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent results, newest first",
	RunE:  runResultsList,
}

func runResultsList(cmd *cobra.Command, args []string) error {
	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.List(cmd.Context())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRecords(records, jsonOutput)
}

var resultsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over stored titles and article text",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResultsSearch,
}

func runResultsSearch(cmd *cobra.Command, args []string) error {
	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.Search(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatRecords(records, jsonOutput)
}

var resultsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one stored result in full, including its article text",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultsShow,
}

func runResultsShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid result id %q", args[0])
	}

	st, err := store.Open(storeConfig())
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.Get(cmd.Context(), id)
	if err != nil {
		return err
	}

	if yamlOutput, _ := cmd.Flags().GetBool("yaml"); yamlOutput {
		data, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		os.Stdout.Write(data)
		return nil
	}

	fmt.Printf("%s (%s)\nrun: %s  created: %s\n", rec.Title, rec.Language, rec.RunID, rec.Created.Format("2006-01-02 15:04"))
	if rec.DocPath != "" {
		fmt.Printf("document: %s\n", rec.DocPath)
	}
	fmt.Printf("\n%s\n", rec.Text)
	return nil
}

func formatRecords(records []store.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-16s  %-40s  %-12s  %s\n",
		"ID", "Run", "Title", "Language", "Created")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 95))

	for _, r := range records {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		lang := r.Language
		if len(lang) > 12 {
			lang = lang[:9] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-16s  %-40s  %-12s  %s\n",
			r.ID, r.RunID, title, lang, r.Created.Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(os.Stdout, "\n%d result(s)\n", len(records))
	return nil
}

func init() {
	resultsListCmd.Flags().Bool("json", false, "output as JSON")
	resultsSearchCmd.Flags().Bool("json", false, "output as JSON")
	resultsShowCmd.Flags().Bool("yaml", false, "output as YAML")

	resultsCmd.AddCommand(resultsListCmd, resultsSearchCmd, resultsShowCmd)
	rootCmd.AddCommand(resultsCmd)
}
