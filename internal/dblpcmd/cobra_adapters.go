// Package dblpcmd implements the dblp subcommands: bulk search, entry
// matching, and journal-mapping discovery.
package dblpcmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unibib/bibtidy/internal/dblp"
)

// clientConfig assembles the search client settings from configuration.
func clientConfig() dblp.Config {
	return dblp.Config{
		BaseURL:    viper.GetString("dblp.base_url"),
		MaxResults: viper.GetInt("dblp.max_results"),
		RateLimit:  viper.GetFloat64("dblp.rate"),
		MaxRetries: viper.GetInt("dblp.max_retries"),
	}
}

// mainFile picks the bibliography to operate on: the positional
// argument when given, the first configured file otherwise.
func mainFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if files := viper.GetStringSlice("files"); len(files) > 0 {
		return files[0]
	}
	return "krr.json"
}

// NewSearchCmd creates the search command for collecting raw DBLP results.
func NewSearchCmd() *cobra.Command {
	var procsPath string
	var outPath string

	cmd := &cobra.Command{
		Use:   "search [file]",
		Short: "Collect raw DBLP search results for every entry",
		Long: `Search DBLP for every entry of the bibliography and accumulate the raw
results in the output file under composite keys "sourceID$index$dblpKey".

Entries already present in the output, or recorded in the no-matches
sidecar next to it, are skipped, so an interrupted run picks up where it
stopped. Proceedings fields are merged into conference papers before
searching so that titles and years are complete.`,
		Example: `  # Search everything in the configured bibliography
  bibtidy dblp search

  # Search a specific file into a specific results file
  bibtidy dblp search --out results.json krr.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if procsPath == "" {
				procsPath = viper.GetString("procs_file")
			}
			return executeSearch(cmd.Context(), mainFile(args), procsPath, outPath, clientConfig())
		},
	}

	cmd.Flags().StringVar(&procsPath, "procs", "", "proceedings database merged into entries before searching (default from config)")
	cmd.Flags().StringVar(&outPath, "out", "dblp.json", "output file accumulating raw search results")

	return cmd
}

// NewMatchCmd creates the match command for pairing entries with DBLP records.
func NewMatchCmd() *cobra.Command {
	var dblpPath string
	var procsPath string

	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Pair conference entries with their DBLP records",
		Long: `Match conference entries against raw search results collected by
"dblp search". An entry matches a result when the titles, conference,
and author lists agree after normalization; entries with several
surviving candidates are discarded as ambiguous.

Matched pairs whose editor lists align are then mined for spelling
variants: DBLP spellings that are similar but not identical to the
curated ones are reported with occurrence counts, as candidates for the
grouping and reviewed-name tables.`,
		Example: `  # Match against the default results file
  bibtidy dblp match

  # Explicit inputs
  bibtidy dblp match --dblp results.json --procs procs.json krr.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if procsPath == "" {
				procsPath = viper.GetString("procs_file")
			}
			return executeMatch(mainFile(args), dblpPath, procsPath, viper.GetString("tables_file"))
		},
	}

	cmd.Flags().StringVar(&dblpPath, "dblp", "dblp.json", "raw search results collected by dblp search")
	cmd.Flags().StringVar(&procsPath, "procs", "", "proceedings database (default from config)")

	return cmd
}

// NewSimilarCmd creates the similar command for grading raw search results.
func NewSimilarCmd() *cobra.Command {
	var dblpPath string

	cmd := &cobra.Command{
		Use:   "similar [file]",
		Short: "Grade raw DBLP search results by similarity",
		Long: `Grade every entry's raw search results: a result is similar when type,
title, year, and the normalized author list all agree, and weakly
similar when the author lists only align under name similarity, as
full names do with abbreviated ones. Venues must not contradict each
other in either grade.`,
		Example: `  # Grade the default results file
  bibtidy dblp similar`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeSimilar(mainFile(args), dblpPath, viper.GetString("tables_file"))
		},
	}

	cmd.Flags().StringVar(&dblpPath, "dblp", "dblp.json", "raw search results collected by dblp search")

	return cmd
}

// NewJournalsCmd creates the journals command for discovering venue mappings.
func NewJournalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journals [file]",
		Short: "Propose journal abbreviation mappings from DBLP",
		Long: `Look up articles whose journal abbreviation macro the curated tables do
not cover yet and propose mappings from the DBLP venue title to the
macro name. The proposals print as YAML ready to paste into a tables
file.`,
		Example: `  # Discover mappings for the configured bibliography
  bibtidy dblp journals`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeJournals(cmd.Context(), mainFile(args), viper.GetString("tables_file"), clientConfig())
		},
	}

	return cmd
}
