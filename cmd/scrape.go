package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/scrape"
	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// newScrapeCmd creates the 'neatsheets scrape' command group.
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Build sheet data from vendor documentation pages",
	}
	cmd.AddCommand(newScrapeExcelCmd())
	return cmd
}

// newScrapeExcelCmd creates the 'neatsheets scrape excel' subcommand.
func newScrapeExcelCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "excel",
		Short: "Scrape Excel shortcuts from the Microsoft support page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScrapeExcel(cmd, outDir)
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "excel", "app directory to write")
	return cmd
}

func runScrapeExcel(cmd *cobra.Command, outDir string) error {
	sheets, err := scrape.NewExcel().Scrape(cmd.Context())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	cfg := catalog.AppConfig{
		Format:          "1.0.0",
		Logo:            "excel.png",
		DisplayName:     "Excel",
		DisplayNameFull: "Microsoft Excel",
	}
	for platform, s := range sheets {
		dataFile := fmt.Sprintf("excel_%s.csv", platform)
		if err := writeSheetFile(filepath.Join(outDir, dataFile), s); err != nil {
			return err
		}
		pc := &catalog.PlatformConfig{Data: dataFile}
		switch platform {
		case catalog.PlatformMac:
			cfg.Mac = pc
		case catalog.PlatformPC:
			cfg.PC = pc
		}
		fmt.Printf("%s %s (%d tasks)\n",
			successStyle.Render("✓"), filepath.Join(outDir, dataFile), s.Len())
	}

	raw, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal app config: %w", err)
	}
	cfgPath := filepath.Join(outDir, "app.toml")
	if err := os.WriteFile(cfgPath, raw, 0644); err != nil {
		return err
	}
	fmt.Printf("%s %s\n", successStyle.Render("✓"), cfgPath)
	fmt.Println(faintStyle.Render("Add a logo image before publishing the app."))
	return nil
}

func writeSheetFile(path string, s *sheet.Sheet) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := sheet.WriteCSV(f, s); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
