package cli

import (
	"testing"

	"github.com/thenoetrevino/phonebook/internal/testutil"
)

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()
	return testutil.ParseJSON(t, output)
}

// JSONData returns the "data" object of a successful JSON response
func JSONData(t *testing.T, output string) map[string]any {
	t.Helper()
	result := testutil.ParseJSON(t, output)
	if result["success"] != true {
		t.Fatalf("Expected success response, got: %s", output)
	}
	data, ok := result["data"].(map[string]any)
	if !ok {
		t.Fatalf("Expected data object in response, got: %s", output)
	}
	return data
}

// JSONErrorCode returns the error code of a failed JSON response
func JSONErrorCode(t *testing.T, output string) string {
	t.Helper()
	result := testutil.ParseJSON(t, output)
	if result["success"] != false {
		t.Fatalf("Expected error response, got: %s", output)
	}
	errData, ok := result["error"].(map[string]any)
	if !ok {
		t.Fatalf("Expected error object in response, got: %s", output)
	}
	code, _ := errData["code"].(string)
	return code
}
