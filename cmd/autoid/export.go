package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/schatt/sixlayer-autoid/config"
	"github.com/schatt/sixlayer-autoid/export"
)

var (
	exportFormat    string
	exportOut       string
	exportClipboard bool
)

// exportCmd walks a fixture and renders the identifiers as a test artifact
var exportCmd = &cobra.Command{
	Use:   "export [fixture]",
	Short: "Walk a tree fixture and render the identifiers as a test artifact",
	Long: `Walks the YAML tree fixture, then renders every attached identifier in
the chosen format: an XCUITest source file, a JSON manifest, or a plain
text list. The artifact goes to stdout unless --out or --clipboard says
otherwise.

Example:
  autoid export login.yaml
  autoid export login.yaml --format json --out identifiers.json
  autoid export login.yaml --clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", export.FormatXCUITest.String(), "Export format (xcuitest|json|text)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write the artifact to this path instead of stdout")
	exportCmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Copy the artifact to the system clipboard")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}
	// Roles in the artifact are recovered from the debug log.
	engine.UpdateConfig(func(c *config.Configuration) { c.EnableDebugLogging = true })

	f, err := loadFixture(args[0])
	if err != nil {
		return err
	}

	ctx := context.Background()
	rows := walk(ctx, engine, f)

	switch {
	case exportClipboard:
		if err := engine.ExportToClipboard(ctx, format); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "copied %d identifiers to clipboard\n", countAttached(rows))
	case exportOut != "":
		path, err := engine.ExportToFile(ctx, format, exportOut)
		if err != nil {
			return err
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "nothing to export")
			return nil
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
	default:
		content, err := engine.Render(ctx, format)
		if err != nil {
			return err
		}
		fmt.Print(content)
	}
	return nil
}
