package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/records"
)

func newLinkCmd() *cobra.Command {
	var procsPath string

	cmd := &cobra.Command{
		Use:   "link [file]",
		Short: "Link conference papers to proceedings volumes by booktitle",
		Long: `Fills in crossref fields: entries whose literal booktitle equals the
title of a volume in the proceedings database are linked to that
volume's citation key. Macro booktitles are left alone. The file is
rewritten preserving entry order.`,
		Example: `  # Link the configured bibliography
  bibtidy link

  # Explicit proceedings database
  bibtidy link --procs procs.json krr.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if procsPath == "" {
				procsPath = viper.GetString("procs_file")
			}
			return executeLink(mainFile(args), procsPath)
		},
	}

	cmd.Flags().StringVar(&procsPath, "procs", "", "proceedings database (default from config)")

	return cmd
}

func executeLink(path, procsPath string) error {
	db, err := loadClean(path)
	if err != nil {
		return err
	}
	procs, err := loadClean(procsPath)
	if err != nil {
		return err
	}

	linked := bib.LinkProceedings(db, procs)
	if err := records.Save(path, db); err != nil {
		return err
	}
	slog.Info("linked", "file", path, "entries", linked)
	return nil
}
