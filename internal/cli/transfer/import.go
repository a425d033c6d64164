package transfer

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import contacts from a CSV or XLSX file into the local store",
		Long: `Import contacts from a file whose first row names the columns
Name, Surname, Number and Email (any order, extra columns ignored).
Files ending in .xlsx are read from their first sheet.
Rows that fail validation or clash with an existing contact are reported by row number.

Examples:
  phonebook import contacts.csv
  phonebook import contacts.xlsx --json
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(&importHandler{}),
	}

	addOutputFlags(cmd, "Minimal output (count of imported contacts)")
	return cmd
}

type importHandler struct{}

// Execute implements the Handler interface
func (h *importHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	path := args.Arg(0)

	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		res, err := c.App.ContactService.Import(ctx, path)
		if err != nil {
			return nil, err
		}
		return cli.NewBatchReport("Import", res), nil
	})
}
