// Package cmd assembles the phonebook command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/contact"
	"github.com/thenoetrevino/phonebook/internal/cli/shell"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/cli/transfer"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/logging"
)

// NewRootCmd builds the full command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonebook",
		Short: "Phonebook - contacts in memory, backed up to SQLite",
		Long: `Phonebook keeps contacts in a local in-memory store and backs them up to a
persistent SQLite store. Contacts move between the stores with backup and
restore, and between the local store and CSV or XLSX files with import and export.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/phonebook/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "Persistent store path (default ~/.phonebook/contacts.db)")

	rootCmd.AddCommand(contact.ContactCmd())
	rootCmd.AddCommand(transfer.Commands()...)
	rootCmd.AddCommand(shell.ShellCmd(NewRootCmd))

	return rootCmd
}

// setup loads the configuration and initializes logging and styles, unless the
// command runs inside a session that already did
func setup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if cli.HasCLI(ctx) {
		return nil
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return cli.Report(&cli.OutputFormatter{JSON: jsonOutput}, err)
	}

	if _, err := logging.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		// Logging is best effort; commands still run without a log file
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
		slog.SetDefault(logging.Discard())
	}
	styles.Init(cfg.Theme)

	cmd.SetContext(cli.WithConfig(ctx, cfg))
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Database.Path = db
	}
	return cfg, nil
}

// Execute runs the command tree and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err == nil {
		return cli.ExitSuccess
	}

	var reported *cli.ReportedError
	if errors.As(err, &reported) {
		return cli.ExitCodeFor(err)
	}

	// Errors from cobra itself: unknown commands, bad or missing flags
	fmt.Fprintf(os.Stderr, "Error: %v\nRun 'phonebook --help' for usage.\n", err)
	if code := cli.ExitCodeFor(err); code != cli.ExitError {
		return code
	}
	return cli.ExitUsage
}
