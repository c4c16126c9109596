package dblpcmd

import (
	"fmt"
	"sort"

	"github.com/unibib/bibtidy/internal/match"
	"github.com/unibib/bibtidy/internal/tables"
)

func executeSimilar(path, dblpPath, tablesPath string) error {
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

	opts := match.Options{Venues: tables.JournalLookup{Tables: t}}
	similar, weak := match.FindSimilar(db, dblpDB, opts)

	fmt.Printf("%d similar, %d weakly similar entries\n", len(similar), len(weak))
	printGraded("similar:", similar)
	printGraded("weakly similar:", weak)
	return nil
}

func printGraded(header string, groups map[string][]string) {
	if len(groups) == 0 {
		return
	}
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println(header)
	for _, id := range ids {
		fmt.Printf("  %s:\n", id)
		for _, key := range groups[id] {
			fmt.Printf("    %s\n", key)
		}
	}
}
