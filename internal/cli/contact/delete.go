package contact

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/handler"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// ConfirmPhrase must be typed to confirm a deletion
const ConfirmPhrase = "CONFIRM DELETE"

// DeleteCmd returns the contact delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a contact",
		Long: `Delete the contact that holds --number from one store.
Requires typing CONFIRM DELETE unless --force or --quiet.

Examples:
  # Delete with confirmation
  phonebook contact delete --number="0123456789"

  # Delete from the persistent store without confirmation
  phonebook contact delete --number="0123456789" --cloud --force
`,
		RunE: handler.Command(&deleteHandler{}, parseDeleteFlags),
	}

	// Required flags
	cmd.Flags().String("number", "", "Number of the contact (required)")
	markRequired(cmd, "number")

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")
	addCloudFlag(cmd)
	addOutputFlags(cmd, "Minimal output (no confirmation)")

	return cmd
}

// deleteHandler implements handler.Handler for contact deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	number := args.GetString("number", "")
	target := cli.TargetFor(args.GetBool("cloud"))
	confirm := !args.GetBool("force") && !args.GetBool("quiet")

	return handler.WithCLI(ctx, func(c *cli.CLI) (any, error) {
		if confirm {
			existing, err := findByNumber(ctx, c, target, number)
			if err != nil {
				return nil, err
			}
			view := cli.NewContactView(existing)
			if !askConfirmation(args.GetCmd().InOrStdin(), existing) {
				return &cli.DeleteResult{Store: target, Contact: view, Cancelled: true}, nil
			}
		}

		deleted, err := c.App.ContactService.Delete(ctx, target, number)
		if err != nil {
			return nil, err
		}
		return &cli.DeleteResult{Store: target, Contact: cli.NewContactView(deleted)}, nil
	})
}

// findByNumber looks a contact up without changing either store
func findByNumber(ctx context.Context, c *cli.CLI, target models.Target, number string) (*models.Contact, error) {
	if target == models.TargetCloud {
		return c.App.Repo().FindByNumber(ctx, number)
	}
	return c.App.Local.FindByNumber(number)
}

func askConfirmation(in io.Reader, contact *models.Contact) bool {
	fmt.Printf("Delete contact '%s' (%s)? Type %s to confirm: ",
		contact.FullName(), contact.Number(), styles.PromptStyle.Render(ConfirmPhrase))

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		slog.Error("failed to read user input", "error", err)
	}
	return strings.TrimSpace(response) == ConfirmPhrase
}

func parseDeleteFlags(cmd *cobra.Command) error {
	_, err := handler.NewFlagParser(cmd).ParseString("number")
	return err
}
