package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/analysis"
	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// newMatrixCmd creates the 'neatsheets matrix' command.
func newMatrixCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "matrix <app>",
		Short: "Show what each chord does on every platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrix(args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	return cmd
}

func runMatrix(name string, asJSON bool) error {
	app, err := openCatalog().Load(language(), name)
	if err != nil {
		return err
	}

	sheets := make(map[string]*sheet.Sheet)
	for _, platform := range app.Platforms() {
		sheets[string(platform)] = app.Sheet(platform)
	}
	report := analysis.BuildMatrix(sheets)

	if asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	header := "CHORD"
	for _, p := range report.Platforms {
		header += "\t" + p
	}
	fmt.Fprintln(w, header)
	for _, row := range report.Rows {
		line := row.Chord
		for _, p := range report.Platforms {
			desc := row.Platforms[p]
			if desc == "" {
				desc = "-"
			}
			line += "\t" + desc
		}
		if !row.Consistent {
			line += "\t" + warningStyle.Render("≠")
		}
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}
