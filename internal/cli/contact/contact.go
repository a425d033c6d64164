// Package contact holds all cli commands related to contacts
// e.g., phonebook contact ...
package contact

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// ContactCmd returns the contact parent command
func ContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage contacts",
		Long: `Manage contacts in the local store or, with --cloud, in the persistent store.

The local store lives for one command, or for a whole session with 'phonebook shell'.
Configure local.seed_file to start it from a CSV file and local.autosave to write it back.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(FindCmd())

	return cmd
}

// addOutputFlags adds the agent-friendly flags shared by every command
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}

func addCloudFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("cloud", false, "Act on the persistent store instead of the local store")
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}
}
