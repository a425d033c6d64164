package transfer

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// DiffCmd returns the diff command
func DiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Compare the local store with the persistent store",
		Long: `Show the contacts only in the local store, only in the persistent store,
and the conflicts: contacts sharing a number or email but differing in a field.

Examples:
  phonebook diff
  phonebook diff --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&diffHandler{}),
	}

	addOutputFlags(cmd, "Minimal output (count of differences)")
	return cmd
}

type diffHandler struct{}

// Execute implements the Handler interface
func (h *diffHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		d, err := c.App.ContactService.Diff(ctx)
		if err != nil {
			return nil, err
		}
		return cli.NewDiffReport(d), nil
	})
}
