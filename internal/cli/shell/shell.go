// Package shell implements an interactive session that runs phonebook commands
// against one live local store
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
)

const prompt = "phonebook> "

// ShellCmd returns the shell command. newRoot builds a fresh command tree for
// every line so flag values never leak between commands.
func ShellCmd(newRoot func() *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: `Start an interactive session. Every line is a phonebook command without the
leading "phonebook"; the local store is kept between lines and the database
stays open until the session ends. Type exit or quit, or send EOF, to leave.

Example session:
  phonebook> contact create --name Jane --surname Doe --number 0123456789
  phonebook> contact find "Jane Doe"
  phonebook> backup
  phonebook> exit
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, newRoot)
		},
	}
}

func run(cmd *cobra.Command, newRoot func() *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.Report(&cli.OutputFormatter{}, fmt.Errorf("initialization error: %w", err))
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()
	ctx = cli.WithCLI(ctx, cliInstance)

	in := bufio.NewReader(cmd.InOrStdin())
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Print(styles.TitleStyle.Render(prompt))
		line, readErr := in.ReadString('\n')

		if stop := runLine(ctx, newRoot, in, line); stop {
			return nil
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				fmt.Println()
				return nil
			}
			return fmt.Errorf("failed to read input: %w", readErr)
		}
	}
}

// runLine executes one line and reports whether the session should end
func runLine(ctx context.Context, newRoot func() *cobra.Command, in io.Reader, line string) bool {
	words, err := shlex.Split(line)
	if err != nil {
		printError(fmt.Errorf("could not parse line: %w", err))
		return false
	}
	if len(words) == 0 {
		return false
	}

	switch strings.ToLower(words[0]) {
	case "exit", "quit":
		return true
	case "shell":
		printError(errors.New("already in a shell"))
		return false
	}

	root := newRoot()
	root.SetArgs(words)
	root.SetIn(in)
	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.ExecuteContext(ctx); err != nil {
		var reported *cli.ReportedError
		if !errors.As(err, &reported) {
			printError(err)
		}
		slog.Debug("shell command failed", "line", strings.TrimSpace(line), "error", err)
	}
	return false
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", styles.ErrorStyle.Render("Error:"), err)
}
