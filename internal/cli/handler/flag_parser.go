package handler

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
)

// FlagParser provides common flag extraction patterns
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", cli.UsageError("--%s is required", flagName)
	}
	return value, nil
}

// ParseBool extracts a boolean flag
func (p *FlagParser) ParseBool(flagName string) (bool, error) {
	return p.cmd.Flags().GetBool(flagName)
}

// RequireOneOf fails unless at least one of the flags was set
func (p *FlagParser) RequireOneOf(flagNames ...string) error {
	for _, name := range flagNames {
		if p.cmd.Flags().Changed(name) {
			return nil
		}
	}
	return cli.UsageError("at least one of --%s must be provided", strings.Join(flagNames, ", --"))
}

// Exclusive fails when more than one of the boolean flags is true
func (p *FlagParser) Exclusive(flagNames ...string) error {
	var set []string
	for _, name := range flagNames {
		if v, _ := p.cmd.Flags().GetBool(name); v {
			set = append(set, "--"+name)
		}
	}
	if len(set) > 1 {
		return cli.UsageError("%s cannot be combined", strings.Join(set, " and "))
	}
	return nil
}

// OutputFormats extracts JSON and Quiet output flags
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	jsonOutput, err = p.cmd.Flags().GetBool("json")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse json flag: %w", err)
	}

	quietMode, err = p.cmd.Flags().GetBool("quiet")
	if err != nil {
		return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
	}

	return jsonOutput, quietMode, nil
}
