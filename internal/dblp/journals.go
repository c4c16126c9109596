package dblp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/names"
	"github.com/unibib/bibtidy/internal/tables"
)

// DiscoverJournals proposes journal-mapping additions. For every
// article whose journal macro the curated tables do not cover yet, the
// first search hit supplies the full venue title, keyed to the macro
// name. Disagreements between the hit and the entry are logged, not
// fatal. On a search failure the mappings found so far come back with
// the error.
func DiscoverJournals(ctx context.Context, client SearchClient, db *bib.Database, t *tables.Tables) (map[string]string, error) {
	processed := t.ProcessedJournals()
	discovered := make(map[string]string)

	for i := range db.Entries {
		entry := &db.Entries[i]
		if !strings.EqualFold(entry.Type, "article") {
			continue
		}
		v, ok := entry.Fields["journal"]
		_, done := processed[v.Text]
		if !ok || !v.Macro || done {
			continue
		}
		title, year := entry.Text("title"), entry.Text("year")
		if title == "" || year == "" {
			continue
		}

		hits, err := client.Search(ctx, Query(title, year))
		if err != nil {
			return discovered, fmt.Errorf("searching %s: %w", entry.ID, err)
		}
		if len(hits) == 0 {
			slog.Warn("no search results", "id", entry.ID, "macro", v.Text)
			continue
		}

		hit := hits[0]
		if bib.AlphaNumericLower(hit.Title) != bib.AlphaNumericLower(title) || hit.Year != year {
			slog.Warn("best hit disagrees with entry",
				"id", entry.ID, "hit_title", hit.Title, "hit_year", hit.Year)
		}
		if author := entry.Text("author"); author != "" && len(hit.Authors) > 0 &&
			len(hit.Authors) != len(names.SplitList(author)) {
			slog.Warn("author counts differ", "id", entry.ID)
		}

		venue := string(hit.Venue)
		if venue == "" {
			continue
		}
		discovered[venue] = v.Text
		processed[v.Text] = struct{}{}
	}
	return discovered, nil
}
