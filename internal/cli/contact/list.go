package contact

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// ListCmd returns the contact list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts",
		Long: `List every contact of a store. Persistent rows that no longer pass
validation are skipped and reported.

Examples:
  phonebook contact list
  phonebook contact list --cloud --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	addCloudFlag(cmd)
	addOutputFlags(cmd, "Minimal output (one number per line)")

	return cmd
}

type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	target := cli.TargetFor(args.GetBool("cloud"))

	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		res, err := c.App.ContactService.List(ctx, target)
		if err != nil {
			return nil, err
		}
		return cli.NewContactListResult(target, res.Succeeded, res.Failed), nil
	})
}
