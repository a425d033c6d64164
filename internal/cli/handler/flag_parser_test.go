package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
)

// ============================================================================
// Test Helpers
// ============================================================================

// createTestCommand creates a mock cobra.Command with the flags contact commands use
func createTestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use: "test",
		Run: func(cmd *cobra.Command, args []string) {},
	}
	cmd.Flags().String("number", "", "")
	cmd.Flags().String("name", "", "")
	cmd.Flags().String("email", "", "")
	cmd.Flags().Bool("cloud", false, "")
	cmd.Flags().Bool("both", false, "")
	cmd.Flags().Bool("json", false, "")
	cmd.Flags().Bool("quiet", false, "")
	return cmd
}

// ============================================================================
// ParseString Tests
// ============================================================================

func TestParseString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "value", args: []string{"--number", "0123"}, want: "0123"},
		{name: "trimmed", args: []string{"--number", "  42 "}, want: "42"},
		{name: "missing", args: nil, wantErr: true},
		{name: "blank", args: []string{"--number", "   "}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := createTestCommand()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}

			got, err := NewFlagParser(cmd).ParseString("number")
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, cli.ErrUsage) {
					t.Errorf("ParseString() error = %v, want ErrUsage", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseString_UnknownFlag(t *testing.T) {
	t.Parallel()
	_, err := NewFlagParser(createTestCommand()).ParseString("missing")
	if err == nil || !strings.Contains(err.Error(), "failed to parse missing flag") {
		t.Errorf("ParseString() error = %v, want parse failure", err)
	}
}

// ============================================================================
// Flag Combination Tests
// ============================================================================

func TestRequireOneOf(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	p := NewFlagParser(cmd)
	if err := p.RequireOneOf("name", "email"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("RequireOneOf() with no flags = %v, want ErrUsage", err)
	}

	// An empty value still counts as provided
	if err := cmd.ParseFlags([]string{"--email="}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}
	if err := p.RequireOneOf("name", "email"); err != nil {
		t.Errorf("RequireOneOf() = %v, want nil", err)
	}
}

func TestExclusive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "none", args: nil},
		{name: "cloud only", args: []string{"--cloud"}},
		{name: "both only", args: []string{"--both"}},
		{name: "cloud and both", args: []string{"--cloud", "--both"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cmd := createTestCommand()
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}
			err := NewFlagParser(cmd).Exclusive("cloud", "both")
			if (err != nil) != tt.wantErr {
				t.Errorf("Exclusive() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// ============================================================================
// OutputFormats Tests
// ============================================================================

func TestOutputFormats(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	if err := cmd.ParseFlags([]string{"--json"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	jsonOutput, quietMode, err := NewFlagParser(cmd).OutputFormats()
	if err != nil {
		t.Fatalf("OutputFormats() error = %v", err)
	}
	if !jsonOutput || quietMode {
		t.Errorf("OutputFormats() = %v, %v, want true, false", jsonOutput, quietMode)
	}

	bare := &cobra.Command{Use: "bare"}
	if _, _, err := NewFlagParser(bare).OutputFormats(); err == nil {
		t.Error("OutputFormats() on a command without output flags should fail")
	}
}

// ============================================================================
// Arguments Tests
// ============================================================================

func TestParseFlagsToMap_OnlyChangedFlags(t *testing.T) {
	t.Parallel()

	cmd := createTestCommand()
	if err := cmd.ParseFlags([]string{"--name", "Jane", "--email=", "--cloud"}); err != nil {
		t.Fatalf("ParseFlags() error = %v", err)
	}

	args := &Arguments{Flags: parseFlagsToMap(cmd), Args: []string{"kw"}, cmd: cmd}

	if got := args.GetString("name", ""); got != "Jane" {
		t.Errorf("GetString(name) = %q, want Jane", got)
	}
	if p := args.StringPtr("email"); p == nil || *p != "" {
		t.Errorf("StringPtr(email) = %v, want pointer to empty string", p)
	}
	if p := args.StringPtr("number"); p != nil {
		t.Errorf("StringPtr(number) = %q, want nil for unset flag", *p)
	}
	if !args.GetBool("cloud") || args.GetBool("both") {
		t.Error("GetBool() should report only the flags that were set")
	}
	if args.Arg(0) != "kw" || args.Arg(1) != "" {
		t.Errorf("Arg() = %q, %q", args.Arg(0), args.Arg(1))
	}
}
