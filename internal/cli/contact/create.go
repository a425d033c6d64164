package contact

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// CreateCmd returns the contact create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new contact",
		Long: `Create a new contact. Numbers and emails must be unique within a store.

Examples:
  # Create in the local store (human-readable output)
  phonebook contact create --name="Jane" --surname="Doe" --number="0123456789" --email="jane@doe.com"

  # Create directly in the persistent store
  phonebook contact create --name="Jane" --surname="Doe" --number="0123456789" --cloud

  # JSON output for agents
  phonebook contact create --name="Jane" --surname="Doe" --number="0123456789" --json

  # Quiet mode for bash capture (prints the number)
  NUMBER=$(phonebook contact create --name="Jane" --surname="Doe" --number="0123456789" --quiet)
`,
		RunE: handler.SimpleCommand(&createHandler{}),
	}

	// Required flags
	cmd.Flags().String("name", "", "First name, letters and spaces (required)")
	cmd.Flags().String("surname", "", "Surname, letters and spaces (required)")
	cmd.Flags().String("number", "", "Phone number, digits only (required)")
	markRequired(cmd, "name", "surname", "number")

	cmd.Flags().String("email", "", "Email address")
	addCloudFlag(cmd)
	addOutputFlags(cmd, "Minimal output (number only)")

	return cmd
}

// createHandler implements handler.Handler for contact creation
type createHandler struct{}

// Execute implements the Handler interface
func (h *createHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	target := cli.TargetFor(args.GetBool("cloud"))
	req := contactservice.CreateContactRequest{
		Name:    args.GetString("name", ""),
		Surname: args.GetString("surname", ""),
		Number:  args.GetString("number", ""),
		Email:   args.GetString("email", ""),
	}

	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		created, err := c.App.ContactService.Create(ctx, target, req)
		if err != nil {
			return nil, err
		}
		return cli.NewContactResult("created", target, created), nil
	})
}
