package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

func mustContact(t *testing.T) *models.Contact {
	t.Helper()
	return testutil.MustContact(t, "Jane", "Doe", "0123456789", "jane@doe.com")
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	c := mustContact(t)
	c.ID = uuid.New()
	result := NewContactResult("created", models.TargetLocal, c)

	output := testutil.CaptureOutput(t, func() {
		if err := f.Success(result); err != nil {
			t.Errorf("Success() error = %v", err)
		}
	})

	var decoded map[string]any
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, output)
	}
	if decoded["success"] != true {
		t.Error("Expected success to be true")
	}
	data := decoded["data"].(map[string]any)
	if data["store"] != "local" {
		t.Errorf("data.store = %v, want local", data["store"])
	}
	contact := data["contact"].(map[string]any)
	if contact["id"] == "" || contact["id"] == nil {
		t.Error("Local contacts should carry an id")
	}
}

func TestOutputFormatter_Success_JSON_CloudOmitsID(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Success(NewContactResult("created", models.TargetCloud, mustContact(t)))
	})
	if strings.Contains(output, `"id"`) {
		t.Errorf("Cloud contacts should not carry an id: %s", output)
	}
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"contact prints number", NewContactResult("created", models.TargetLocal, mustContact(t)), "0123456789\n"},
		{"export prints count", &ExportResult{Path: "a.csv", Count: 3}, "3\n"},
		{"delete prints nothing", &DeleteResult{Store: models.TargetLocal}, ""},
		{"empty list prints nothing", NewContactListResult(models.TargetLocal, nil, nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &OutputFormatter{Quiet: true}
			output := testutil.CaptureOutput(t, func() {
				_ = f.Success(tt.data)
			})
			if output != tt.want {
				t.Errorf("quiet output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestOutputFormatter_Success_Quiet_FallsBackWithoutQuieter(t *testing.T) {
	f := &OutputFormatter{Quiet: true, JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Success(map[string]string{"key": "value"})
	})
	if !strings.Contains(output, `"success":true`) {
		t.Errorf("Expected JSON fallback, got %q", output)
	}
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	f := &OutputFormatter{}
	list := NewContactListResult(models.TargetCloud, []*models.Contact{mustContact(t)}, []models.ItemError{
		{Fields: models.Fields{Name: "B4d", Surname: "Row", Number: "1"}, Err: models.ErrInvalidField},
	})

	output := testutil.CaptureOutput(t, func() {
		_ = f.Success(list)
	})

	for _, want := range []string{"Contacts in cloud store (1)", "Jane", "jane@doe.com", "1 invalid row(s) skipped", "B4d Row"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, output)
		}
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_ErrorWithSuggestion_JSON(t *testing.T) {
	f := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		if err := f.ErrorWithSuggestion("NOT_FOUND", "contact not found", "List contacts"); err != nil {
			t.Errorf("ErrorWithSuggestion() error = %v", err)
		}
	})

	var decoded map[string]any
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded["success"] != false {
		t.Error("Expected success to be false")
	}
	errData := decoded["error"].(map[string]any)
	if errData["code"] != "NOT_FOUND" || errData["message"] != "contact not found" || errData["suggestion"] != "List contacts" {
		t.Errorf("Unexpected error payload: %v", errData)
	}
}

func TestOutputFormatter_Error_JSON_OmitsEmptySuggestion(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Error("USAGE", "bad flag")
	})
	if strings.Contains(output, "suggestion") {
		t.Errorf("Expected no suggestion field, got %s", output)
	}
}

func TestOutputFormatter_Error_HumanReadableGoesToStderr(t *testing.T) {
	f := &OutputFormatter{}
	output := testutil.CaptureOutput(t, func() {
		_ = f.Error("NOT_FOUND", "contact not found")
	})
	if output != "" {
		t.Errorf("Human-readable errors should not be written to stdout, got %q", output)
	}
}

func TestReport(t *testing.T) {
	f := &OutputFormatter{JSON: true}
	var reported error
	output := testutil.CaptureOutput(t, func() {
		reported = Report(f, models.ErrDuplicateEmail)
	})

	if _, ok := reported.(*ReportedError); !ok {
		t.Fatalf("Report() = %T, want *ReportedError", reported)
	}
	if !strings.Contains(output, "DUPLICATE_EMAIL") {
		t.Errorf("Expected code in output, got %s", output)
	}
}
