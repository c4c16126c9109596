package dblpcmd

import (
	"context"
	"log/slog"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/cleanup"
	"github.com/unibib/bibtidy/internal/dblp"
	"github.com/unibib/bibtidy/internal/records"
)

// loadClean reads a record file and applies the load-time field
// normalization every command works on.
func loadClean(path string) (*bib.Database, error) {
	db, err := records.Load(path)
	if err != nil {
		return nil, err
	}
	cleanup.CleanDatabase(db)
	return db, nil
}

func executeSearch(ctx context.Context, path, procsPath, outPath string, cfg dblp.Config) error {
	db, err := loadClean(path)
	if err != nil {
		return err
	}
	if procsPath != "" {
		procs, err := loadClean(procsPath)
		if err != nil {
			return err
		}
		bib.MergeCrossReferences(db, procs)
	}

	slog.Info("searching DBLP", "file", path, "entries", len(db.Entries), "out", outPath)
	searcher := dblp.NewSearcher(dblp.NewClient(cfg))
	return searcher.Run(ctx, db, outPath)
}
