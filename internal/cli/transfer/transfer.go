// Package transfer holds the commands that move contacts between the local store,
// the persistent store and files
// e.g., phonebook backup, phonebook import ...
package transfer

import (
	"github.com/spf13/cobra"
)

// Commands returns every transfer command, registered at the top level
func Commands() []*cobra.Command {
	return []*cobra.Command{
		BackupCmd(),
		RestoreCmd(),
		DiffCmd(),
		ImportCmd(),
		ExportCmd(),
	}
}

// addOutputFlags adds the agent-friendly flags shared by every command
func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, quietHelp)
}
