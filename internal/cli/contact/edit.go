package contact

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// EditCmd returns the contact edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a contact",
		Long: `Edit the contact that holds --number. Fields that are not given keep their value.

With --both the local contact is edited first, then the persistent row that
carried its previous email and number. A contact missing from the persistent
store is reported, not treated as a failure.

Examples:
  # Change the name only
  phonebook contact edit --number="0123456789" --name="Janet"

  # Move to a new number and clear the email
  phonebook contact edit --number="0123456789" --new-number="0987654321" --email=""

  # Edit the persistent store
  phonebook contact edit --number="0123456789" --surname="Roe" --cloud

  # Edit both stores
  phonebook contact edit --number="0123456789" --email="janet@doe.com" --both
`,
		RunE: handler.Command(&editHandler{}, parseEditFlags),
	}

	// Required flags
	cmd.Flags().String("number", "", "Current number of the contact (required)")
	markRequired(cmd, "number")

	// Optional flags (at least one required)
	cmd.Flags().String("name", "", "New first name")
	cmd.Flags().String("surname", "", "New surname")
	cmd.Flags().String("new-number", "", "New phone number")
	cmd.Flags().String("email", "", "New email (empty to clear)")

	addCloudFlag(cmd)
	cmd.Flags().Bool("both", false, "Edit the local store and the persistent store")
	addOutputFlags(cmd, "Minimal output (number only)")

	return cmd
}

// editHandler implements handler.Handler for contact edits
type editHandler struct{}

// Execute implements the Handler interface
func (h *editHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	number := args.GetString("number", "")
	req := contactservice.UpdateContactRequest{
		Name:    args.StringPtr("name"),
		Surname: args.StringPtr("surname"),
		Number:  args.StringPtr("new-number"),
		Email:   args.StringPtr("email"),
	}

	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		if args.GetBool("both") {
			res, err := c.App.ContactService.EditBoth(ctx, number, req)
			if err != nil {
				return nil, err
			}
			return cli.NewEditBothResult(res), nil
		}

		target := cli.TargetFor(args.GetBool("cloud"))
		edited, err := c.App.ContactService.Edit(ctx, target, number, req)
		if err != nil {
			return nil, err
		}
		return cli.NewContactResult("edited", target, edited), nil
	})
}

func parseEditFlags(cmd *cobra.Command) error {
	p := handler.NewFlagParser(cmd)
	if _, err := p.ParseString("number"); err != nil {
		return err
	}
	if err := p.Exclusive("cloud", "both"); err != nil {
		return err
	}
	return p.RequireOneOf("name", "surname", "new-number", "email")
}
