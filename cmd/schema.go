package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/neatsheets/neatsheets/pkg/catalog"
	"github.com/neatsheets/neatsheets/pkg/sheet"
)

// newSchemaCmd creates the 'neatsheets schema' command.
func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print JSON schemas for the app config and sheet records",
		Long: `Emit JSON schemas for the on-disk data shapes.

The output maps "app_config" to the schema of app.toml / app.yml and
"record" to the shape of one sheet CSV row, for editor validation and
external tooling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema()
		},
	}
	return cmd
}

func runSchema() error {
	r := &jsonschema.Reflector{DoNotReference: true}
	schemas := map[string]*jsonschema.Schema{
		"app_config": r.Reflect(&catalog.AppConfig{}),
		"record":     r.Reflect(&sheet.Record{}),
	}

	out, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schemas: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
