package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// newFmtCmd creates the 'neatsheets fmt' command.
func newFmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt <app>",
		Short: "Rewrite an app's sheet data in canonical form",
		Long: `Parse an app's sheet CSVs and write them back canonically.

Chords are re-serialized into canonical notation, importance fields
become "true"/"false", and files are written as UTF-16LE with a BOM.
A file with any malformed record is left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0])
		},
	}
	return cmd
}

func runFmt(name string) error {
	dir := filepath.Join(catalogDir, string(language()), name)
	cfg, err := catalog.LoadConfig(dir)
	if err != nil {
		return err
	}

	for _, platform := range catalog.AllPlatforms() {
		pc := cfg.Platform(platform)
		if pc == nil {
			continue
		}
		dataPath := filepath.Join(dir, pc.Data)
		if err := formatFile(dataPath); err != nil {
			return fmt.Errorf("%s: %w", dataPath, err)
		}
		fmt.Printf("%s %s\n", successStyle.Render("✓"), dataPath)
	}
	return nil
}

func formatFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	s, err := sheet.ReadCSV(f)
	f.Close()
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sheet.WriteCSV(out, s); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
