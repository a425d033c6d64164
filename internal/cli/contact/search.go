package contact

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// SearchCmd returns the contact search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <keyword>",
		Short: "Search contacts by keyword",
		Long: `Search contacts whose name or surname contains the keyword, ignoring case.
In the persistent store the number and email are searched too.

Examples:
  phonebook contact search doe
  phonebook contact search doe.com --cloud
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(&searchHandler{}),
	}

	addCloudFlag(cmd)
	addOutputFlags(cmd, "Minimal output (one number per line)")

	return cmd
}

type searchHandler struct{}

// Execute implements the Handler interface
func (h *searchHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	target := cli.TargetFor(args.GetBool("cloud"))
	keyword := args.Arg(0)

	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		found, err := c.App.ContactService.Search(ctx, target, keyword)
		if err != nil {
			return nil, err
		}
		return cli.NewContactListResult(target, found, nil), nil
	})
}
