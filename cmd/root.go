// Package cmd implements the neatsheets CLI.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/catalog"
)

var (
	catalogDir string
	langFlag   string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "neatsheets",
	Short:         "Keyboard-shortcut cheat sheets",
	Long:          "Parse, check, render, and serve keyboard-shortcut cheat sheets.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog", "apps", "catalog root directory")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "en", "catalog language")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newMatrixCmd())
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newScrapeCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newBrowseCmd())
}

// openCatalog builds the catalog from the persistent flags.
func openCatalog() *catalog.Catalog {
	return catalog.New(catalogDir)
}

func language() catalog.Language {
	return catalog.Language(langFlag)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
