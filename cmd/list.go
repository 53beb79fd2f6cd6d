package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// newListCmd creates the 'neatsheets list' command.
func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List apps and platforms in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList()
		},
	}
	return cmd
}

func runList() error {
	cat := openCatalog()
	names, err := cat.Apps(language())
	if err != nil {
		return err
	}

	for _, name := range names {
		app, err := cat.Load(language(), name)
		if err != nil {
			fmt.Printf("%-20s %s\n", name, errorStyle.Render(fmt.Sprintf("broken: %v", err)))
			continue
		}

		var platforms []string
		for _, p := range app.Platforms() {
			platforms = append(platforms, string(p))
		}
		fmt.Printf("%-20s %s  %s\n",
			headerStyle.Render(name),
			app.DisplayNameFull,
			faintStyle.Render("["+strings.Join(platforms, ", ")+"]"))
	}
	return nil
}
