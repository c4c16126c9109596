package cmd

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unibib/bibtidy/internal/records"
)

type checkResult struct {
	path string
	diff string
	err  error
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files]",
		Short: "Check whether the bibliography files are canonically formatted",
		Long: `Checks each record file against its canonical form: normalized field
values and entries sorted by citation key. Drift is reported as a
unified diff on stderr and the command exits non-zero.`,
		Example: `  # Check the configured files
  bibtidy check

  # Check specific files
  bibtidy check krr.json procs.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeCheck(bibFiles(args), viper.GetInt("concurrency"))
		},
	}

	return cmd
}

func executeCheck(files []string, concurrency int) error {
	if concurrency < 1 {
		concurrency = 1
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, concurrency)
	resultsChan := make(chan checkResult, len(files))

	for _, path := range files {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire
			defer func() { <-semaphore }() // Release

			diff, err := checkFile(path)
			resultsChan <- checkResult{path: path, diff: diff, err: err}
		}(path)
	}

	// Wait for all goroutines to finish
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	byPath := make(map[string]checkResult, len(files))
	for result := range resultsChan {
		byPath[result.path] = result
	}

	// Report in input order so runs are comparable.
	var errs []error
	drifted := 0
	for _, path := range files {
		result := byPath[path]
		if result.err != nil {
			errs = append(errs, result.err)
			continue
		}
		if result.diff != "" {
			drifted++
			fmt.Fprint(os.Stderr, result.diff)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if drifted > 0 {
		return fmt.Errorf("%d of %d files need formatting", drifted, len(files))
	}
	return nil
}

// checkFile renders a file's canonical form and diffs it against the
// bytes on disk. An empty diff means the file is already formatted.
func checkFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read record file: %w", err)
	}

	db, err := loadClean(path)
	if err != nil {
		return "", err
	}
	db.SortEntries()

	formatted, err := records.Marshal(db, path)
	if err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(raw)),
		B:        difflib.SplitLines(string(formatted)),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  2,
	})
}
