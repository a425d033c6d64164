package contact

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
)

// FindCmd returns the contact find subcommand
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   `find "<name> <surname>"`,
		Short: "Find a contact by full name",
		Long: `Find the first contact matching a full name of exactly two words.
Unquoted words are joined, so find Jane Doe works too.
Locally each word may be part of the name and surname (case-sensitive);
in the persistent store both must match exactly.

Examples:
  phonebook contact find "Jane Doe"
  phonebook contact find "Ja Do"
  phonebook contact find "Jane Doe" --cloud --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: handler.SimpleCommand(&findHandler{}),
	}

	addCloudFlag(cmd)
	addOutputFlags(cmd, "Minimal output (number only)")

	return cmd
}

type findHandler struct{}

// Execute implements the Handler interface
func (h *findHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	target := cli.TargetFor(args.GetBool("cloud"))
	fullName := strings.Join(args.Args, " ")

	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		found, err := c.App.ContactService.FindByFullName(ctx, target, fullName)
		if err != nil {
			return nil, err
		}
		return cli.NewContactResult("found", target, found), nil
	})
}
