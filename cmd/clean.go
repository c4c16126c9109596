package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/unibib/bibtidy/internal/cleanup"
	"github.com/unibib/bibtidy/internal/records"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Remove leftover entries from import runs",
		Long: `Drops entries whose citation key marks them as leftovers of a DBLP
import run: duplicates re-keyed with a REPEATED: marker and entries
still carrying their imported DBLP: key. The file is rewritten
preserving entry order.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeClean(mainFile(args))
		},
	}

	return cmd
}

func executeClean(path string) error {
	db, err := loadClean(path)
	if err != nil {
		return err
	}
	removed := cleanup.Clean(db)
	if err := records.Save(path, db); err != nil {
		return err
	}
	slog.Info("cleaned", "file", path, "removed", removed)
	return nil
}
