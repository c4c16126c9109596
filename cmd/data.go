package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/unibib/bibtidy/internal/cleanup"
	"github.com/unibib/bibtidy/internal/tables"
)

func newDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data [files]",
		Short: "Print table updates for entries the pipeline would modify",
		Long: `Dry-runs the per-entry formatting pipeline and prints, as a YAML
tables fragment, the names whose first names it would abbreviate and
the citation keys of the entries it would touch. Review the output and
merge it into the tables file to pin those names and entries down.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeData(bibFiles(args), viper.GetString("tables_file"))
		},
	}

	return cmd
}

func executeData(files []string, tablesPath string) error {
	t, err := tables.Load(tablesPath)
	if err != nil {
		return err
	}
	formatter := cleanup.NewFormatter(t)
	report := cleanup.NewReport()

	for _, path := range files {
		db, err := loadClean(path)
		if err != nil {
			return err
		}
		if err := formatter.FormatDatabase(db, nil, report); err != nil {
			return err
		}
	}

	if report.Empty() {
		fmt.Println("no entries would be modified")
		return nil
	}

	people := report.ModifiedPeople()
	reviewed := make([]tables.ReviewedName, 0, len(people))
	for _, tuple := range people {
		reviewed = append(reviewed, tables.ReviewedName{
			First: tuple[0],
			Von:   tuple[1],
			Last:  tuple[2],
			Jr:    tuple[3],
		})
	}

	proposal := &tables.Tables{
		ExcludeIDs:    report.ModifiedIDs(),
		ReviewedNames: reviewed,
	}
	return proposal.Dump(os.Stdout)
}
