package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/render"
)

// newRenderCmd creates the 'neatsheets render' command.
func newRenderCmd() *cobra.Command {
	var (
		platformFlag string
		format       string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "render <app>",
		Short: "Render one app's cheat sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(args[0], platformFlag, format, outPath)
		},
	}
	cmd.Flags().StringVarP(&platformFlag, "platform", "p", "mac", "platform (mac or pc)")
	cmd.Flags().StringVarP(&format, "format", "f", "term", "output format (term or html)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func runRender(name, platformFlag, format, outPath string) error {
	platform := catalog.Platform(platformFlag)
	if !platform.Valid() {
		return fmt.Errorf("unknown platform %q", platformFlag)
	}

	app, err := openCatalog().Load(language(), name)
	if err != nil {
		return err
	}
	s := app.Sheet(platform)
	if s == nil {
		return fmt.Errorf("%s has no %s sheet", name, platform)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "term":
		color := outPath == "" && colorOutput()
		return render.WriteSheetTerm(out, s, color)
	case "html":
		return render.WriteAppHTML(out, app, platform)
	default:
		return fmt.Errorf("unknown format %q (want term or html)", format)
	}
}
