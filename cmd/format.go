package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/unibib/bibtidy/internal/records"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [files]",
		Short: "Rewrite the bibliography files in canonical form",
		Long: `Rewrites each record file in canonical form: normalized field values
and entries sorted by citation key. This is the form the check command
verifies.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeFormat(bibFiles(args))
		},
	}

	return cmd
}

func executeFormat(files []string) error {
	for _, path := range files {
		db, err := loadClean(path)
		if err != nil {
			return err
		}
		db.SortEntries()
		if err := records.Save(path, db); err != nil {
			return err
		}
		slog.Info("formatted", "file", path, "entries", len(db.Entries))
	}
	return nil
}
