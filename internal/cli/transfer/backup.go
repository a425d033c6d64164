package transfer

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// BackupCmd returns the backup command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the local store to the persistent store",
		Long: `Copy every local contact to the persistent store. Contacts whose number or
email is already stored are reported and skipped; the rest are still copied.

Examples:
  phonebook backup
  phonebook backup --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&backupHandler{}),
	}

	addOutputFlags(cmd, "Minimal output (count of copied contacts)")
	return cmd
}

type backupHandler struct{}

// Execute implements the Handler interface
func (h *backupHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		res, err := c.App.ContactService.Backup(ctx)
		if err != nil {
			return nil, err
		}
		return cli.NewBatchReport("Backup", res), nil
	})
}
