package cmd

import (
	"github.com/spf13/cobra"

	"github.com/unibib/bibtidy/internal/dblpcmd"
)

func newDblpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dblp",
		Short: "Import publication data from DBLP",
		Long: `Tools built on the DBLP computer science bibliography: bulk searching
for candidate records, matching candidates against local entries, and
discovering journal abbreviation mappings.`,
	}

	// Add dblp subcommands
	cmd.AddCommand(dblpcmd.NewSearchCmd())
	cmd.AddCommand(dblpcmd.NewMatchCmd())
	cmd.AddCommand(dblpcmd.NewSimilarCmd())
	cmd.AddCommand(dblpcmd.NewJournalsCmd())

	return cmd
}
