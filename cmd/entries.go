package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unibib/bibtidy/internal/cleanup"
	"github.com/unibib/bibtidy/internal/records"
	"github.com/unibib/bibtidy/internal/tables"
)

func newEntriesCmd() *cobra.Command {
	var procsPath string

	cmd := &cobra.Command{
		Use:   "entries [files]",
		Short: "Format individual entries against the curated tables",
		Long: `Runs the full per-entry formatting pipeline: author and editor names
are split and abbreviated, known journals become abbreviation macros,
imported DBLP keys get generated citation keys, and entries that turn
out to duplicate existing ones are re-keyed with a REPEATED: marker.

The proceedings database is formatted first; its entries then back the
crossref resolution and duplicate checks for the main files. Files are
rewritten preserving entry order.`,
		Example: `  # Format entries of the configured files
  bibtidy entries

  # Use an explicit proceedings database
  bibtidy entries --procs procs.json krr.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if procsPath == "" {
				procsPath = viper.GetString("procs_file")
			}
			return executeEntries(bibFiles(args), procsPath, viper.GetString("tables_file"))
		},
	}

	cmd.Flags().StringVar(&procsPath, "procs", "", "proceedings database (default from config)")

	return cmd
}

func executeEntries(files []string, procsPath, tablesPath string) error {
	t, err := tables.Load(tablesPath)
	if err != nil {
		return err
	}
	formatter := cleanup.NewFormatter(t)

	// The proceedings database goes first: its formatted entries back
	// the crossref resolution and duplicate checks for the main files.
	procs, err := loadClean(procsPath)
	if err != nil {
		return err
	}
	report := cleanup.NewReport()
	if err := formatter.FormatDatabase(procs, nil, report); err != nil {
		return err
	}
	if err := records.Save(procsPath, procs); err != nil {
		return err
	}
	slog.Info("formatted entries", "file", procsPath, "modified", len(report.ModifiedIDs()))

	for _, path := range files {
		if path == procsPath {
			continue
		}
		db, err := loadClean(path)
		if err != nil {
			return err
		}
		report := cleanup.NewReport()
		if err := formatter.FormatDatabase(db, procs, report); err != nil {
			return err
		}
		if err := records.Save(path, db); err != nil {
			return err
		}
		slog.Info("formatted entries", "file", path, "modified", len(report.ModifiedIDs()))
	}
	return nil
}
