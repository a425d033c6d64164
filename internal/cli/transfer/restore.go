package transfer

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// RestoreCmd returns the restore command
func RestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Merge the persistent store into the local store",
		Long: `Merge every persistent contact into the local store. Contacts already present
are left alone; rows that clash with a different local contact, or no longer
pass validation, are reported.

Examples:
  phonebook restore
  phonebook restore --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&restoreHandler{}),
	}

	addOutputFlags(cmd, "Minimal output (count of restored contacts)")
	return cmd
}

type restoreHandler struct{}

// Execute implements the Handler interface
func (h *restoreHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		res, err := c.App.ContactService.Restore(ctx)
		if err != nil {
			return nil, err
		}
		return cli.NewBatchReport("Restore", res), nil
	})
}
