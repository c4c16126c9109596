package dblpcmd

import (
	"context"
	"fmt"
	"os"

	"github.com/unibib/bibtidy/internal/dblp"
	"github.com/unibib/bibtidy/internal/tables"
)

func executeJournals(ctx context.Context, path, tablesPath string, cfg dblp.Config) error {
	t, err := tables.Load(tablesPath)
	if err != nil {
		return err
	}
	db, err := loadClean(path)
	if err != nil {
		return err
	}

	discovered, searchErr := dblp.DiscoverJournals(ctx, dblp.NewClient(cfg), db, t)
	if len(discovered) == 0 {
		if searchErr != nil {
			return searchErr
		}
		fmt.Println("no new journal mappings found")
		return nil
	}

	// Print what was found even when the run stopped early.
	proposal := &tables.Tables{Journals: discovered}
	if err := proposal.Dump(os.Stdout); err != nil {
		return err
	}
	return searchErr
}
