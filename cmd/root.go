package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unibib/bibtidy/internal/dblp"
)

var (
	cfgFile string
	verbose bool
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bibtidy",
		Short: "BibTeX bibliography formatter with DBLP import tools",
		Long: `Bibtidy keeps a curated BibTeX bibliography in canonical form.

It formats entries and author names against curated tables, marks
duplicates from import runs, and pulls publication data from the DBLP
computer science bibliography.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .bibtidy.yaml in the working or home directory)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	viper.SetDefault("files", []string{"krr.json", "procs.json"})
	viper.SetDefault("procs_file", "procs.json")
	viper.SetDefault("tables_file", "")
	viper.SetDefault("concurrency", 4)
	viper.SetDefault("dblp.base_url", dblp.DefaultBaseURL)
	viper.SetDefault("dblp.max_results", 10)
	viper.SetDefault("dblp.rate", 1.0)
	viper.SetDefault("dblp.max_retries", 9)

	// Add subcommands
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newFormatCmd())
	cmd.AddCommand(newEntriesCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newLinkCmd())
	cmd.AddCommand(newDataCmd())
	cmd.AddCommand(newDblpCmd())

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for ".bibtidy.yaml" in the working directory, then home.
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName(".bibtidy")
	}

	viper.SetEnvPrefix("BIBTIDY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}
