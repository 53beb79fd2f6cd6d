package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/analysis"
)

// newCheckCmd creates the 'neatsheets check' command.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <app>",
		Short: "Report chords bound to more than one task",
		Long: `Analyze an app's sheets and report conflicting bindings.

A conflict is one chord bound to several distinct task descriptions
within a single platform sheet. The same chord meaning different
things on mac and pc is not a conflict.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
	return cmd
}

func runCheck(name string) error {
	app, err := openCatalog().Load(language(), name)
	if err != nil {
		return err
	}

	total := 0
	for _, platform := range app.Platforms() {
		conflicts := analysis.DetectConflicts(app.Sheet(platform))
		label := strings.ToUpper(string(platform))

		if len(conflicts) == 0 {
			fmt.Printf("%s %s: no conflicts (%d tasks)\n",
				successStyle.Render("✓"), label, app.Sheet(platform).Len())
			continue
		}

		total += len(conflicts)
		fmt.Printf("%s %s: %s\n",
			errorStyle.Render("✗"), label,
			errorStyle.Render(fmt.Sprintf("%d conflict(s)", len(conflicts))))
		for _, c := range conflicts {
			fmt.Printf("    %s: %s\n",
				chordStyle.Render(c.Chord),
				strings.Join(c.Descs, ", "))
		}
	}

	if total > 0 {
		fmt.Println()
		fmt.Println(warningStyle.Render("Conflicts detected. Rebind the duplicated chords."))
		return fmt.Errorf("%d conflicting chord(s)", total)
	}
	return nil
}
