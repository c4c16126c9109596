package dblp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/records"
)

// SearchClient is the one-call surface the search and discovery
// orchestration needs, satisfied by Client.
type SearchClient interface {
	Search(ctx context.Context, query string) ([]Hit, error)
}

// Searcher accumulates raw search results for a bibliography.
type Searcher struct {
	client SearchClient
}

// NewSearcher wraps a search client.
func NewSearcher(client SearchClient) *Searcher {
	return &Searcher{client: client}
}

// SidecarPath names the no-matches file kept next to an output file:
// "out.json" gets "out.no-matches.json".
func SidecarPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + ".no-matches.json"
}

// Run searches every entry of db and appends the hits to the database
// stored at outPath, under composite keys "sourceID$index$dblpKey".
// Entries already present in the output or recorded in the no-matches
// sidecar are skipped, so an interrupted run resumes where it stopped.
// Both files are saved when a search fails and when the run completes.
func (s *Searcher) Run(ctx context.Context, db *bib.Database, outPath string) error {
	out, err := records.Load(outPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		out = &bib.Database{}
	case err != nil:
		return err
	}

	skip := make(map[string]bool)
	for i := range out.Entries {
		source, _, _ := strings.Cut(out.Entries[i].ID, "$")
		skip[source] = true
	}

	sidecar := SidecarPath(outPath)
	noMatches := []string{}
	data, err := os.ReadFile(sidecar)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to read no-matches file: %w", err)
	default:
		if err := json.Unmarshal(data, &noMatches); err != nil {
			return fmt.Errorf("failed to parse no-matches file %s: %w", sidecar, err)
		}
		for _, id := range noMatches {
			skip[id] = true
		}
	}

	for i := range db.Entries {
		entry := &db.Entries[i]
		if skip[entry.ID] {
			continue
		}
		title, year := entry.Text("title"), entry.Text("year")
		if title == "" || year == "" {
			noMatches = append(noMatches, entry.ID)
			continue
		}

		hits, err := s.client.Search(ctx, Query(title, year))
		if err != nil {
			err = fmt.Errorf("searching %s: %w", entry.ID, err)
			if saveErr := s.save(outPath, sidecar, out, noMatches); saveErr != nil {
				return errors.Join(err, saveErr)
			}
			return err
		}
		if len(hits) == 0 {
			slog.Info("no search results", "id", entry.ID)
			noMatches = append(noMatches, entry.ID)
			continue
		}

		slog.Info("search results", "id", entry.ID, "hits", len(hits))
		for j, hit := range hits {
			result := EntryFromHit(hit)
			result.ID = fmt.Sprintf("%s$%d$%s", entry.ID, j, result.ID)
			out.Entries = append(out.Entries, result)
		}
	}

	return s.save(outPath, sidecar, out, noMatches)
}

func (s *Searcher) save(outPath, sidecar string, out *bib.Database, noMatches []string) error {
	if err := records.Save(outPath, out); err != nil {
		return err
	}
	data, err := json.Marshal(noMatches)
	if err != nil {
		return err
	}
	if err := os.WriteFile(sidecar, data, 0644); err != nil {
		return fmt.Errorf("failed to write no-matches file: %w", err)
	}
	return nil
}
