package transfer

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export the local store to a CSV or XLSX file",
		Long: `Write every local contact to a file, replacing it. Without a file the
configured export.default_path (my_export.csv) is used.

Examples:
  phonebook export
  phonebook export backup.xlsx
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(&exportHandler{}),
	}

	addOutputFlags(cmd, "Minimal output (count of exported contacts)")
	return cmd
}

type exportHandler struct{}

// Execute implements the Handler interface
func (h *exportHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		path := c.ExportPath(args.Arg(0))
		n, err := c.App.ContactService.Export(ctx, path)
		if err != nil {
			return nil, err
		}
		return &cli.ExportResult{Path: path, Count: n}, nil
	})
}
