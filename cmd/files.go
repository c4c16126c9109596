package cmd

import (
	"github.com/spf13/viper"

	"github.com/unibib/bibtidy/internal/bib"
	"github.com/unibib/bibtidy/internal/cleanup"
	"github.com/unibib/bibtidy/internal/records"
)

// bibFiles returns the record files a command operates on: the
// positional arguments when given, otherwise the configured file list.
func bibFiles(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return viper.GetStringSlice("files")
}

// mainFile returns the record file a single-file command operates on:
// the positional argument when given, otherwise the first configured
// file.
func mainFile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if files := viper.GetStringSlice("files"); len(files) > 0 {
		return files[0]
	}
	return "krr.json"
}

// loadClean loads a record file and applies the load-time field
// normalization every command works on.
func loadClean(path string) (*bib.Database, error) {
	db, err := records.Load(path)
	if err != nil {
		return nil, err
	}
	cleanup.CleanDatabase(db)
	return db, nil
}
