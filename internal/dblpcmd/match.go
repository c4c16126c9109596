package dblpcmd

import (
	"fmt"
	"sort"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/match"
	"github.com/unibib/bibtidy/internal/tables"
)

func executeMatch(path, dblpPath, procsPath, tablesPath string) error {
	t, err := tables.Load(tablesPath)
	if err != nil {
		return err
	}
	db, err := loadClean(path)
	if err != nil {
		return err
	}
	dblpDB, err := loadClean(dblpPath)
	if err != nil {
		return err
	}
	procs, err := loadClean(procsPath)
	if err != nil {
		return err
	}

	bib.MergeCrossReferences(db, procs)

	matcher := match.NewMatcher(t)
	matches, err := matcher.MatchEntries(db, dblpDB)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(matches))
	for id := range matches {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("matched %d entries\n", len(ids))
	for _, id := range ids {
		fmt.Printf("  %s -> %s\n", id, matches[id])
	}

	aliases := match.EditorAliases(db, dblpDB, matches)
	if len(aliases) == 0 {
		return nil
	}

	spellings := make([]string, 0, len(aliases))
	for name := range aliases {
		spellings = append(spellings, name)
	}
	sort.Strings(spellings)

	fmt.Println("editor spelling variants:")
	for _, dblpName := range spellings {
		fmt.Printf("  %s:\n", dblpName)
		variants := aliases[dblpName]
		ours := make([]string, 0, len(variants))
		for name := range variants {
			ours = append(ours, name)
		}
		sort.Strings(ours)
		for _, name := range ours {
			fmt.Printf("    %s: %d\n", name, variants[name])
		}
	}
	return nil
}
