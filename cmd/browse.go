package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/browse"
)

// newBrowseCmd creates the 'neatsheets browse' command.
func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse cheat sheets interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return browse.Run(openCatalog(), language())
		},
	}
	return cmd
}
