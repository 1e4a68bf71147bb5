package validator

import (
	"errors"
	"strings"
	"testing"

	scerrors "github.com/thoreinstein/shardcfg/internal/errors"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityError, "error"},
		{SeverityWarning, "warning"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestIssue_Error(t *testing.T) {
	tests := []struct {
		name  string
		issue Issue
		want  string
	}{
		{
			name:  "with field and value",
			issue: Issue{Severity: SeverityError, Field: "inputs.a.size", Message: "must be a positive number", Value: -1},
			want:  "error: inputs.a.size must be a positive number (got -1)",
		},
		{
			name:  "without field",
			issue: Issue{Severity: SeverityWarning, Message: "document is empty"},
			want:  "warning: document is empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.Error(); got != tt.want {
				t.Errorf("Issue.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResult_Helpers(t *testing.T) {
	r := &Result{}
	if r.HasErrors() || r.HasWarnings() {
		t.Fatal("empty result should have no issues")
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() on empty result = %v, want nil", err)
	}

	r.AddWarning("groups.g1", "has no inputs", nil)
	if !r.HasWarnings() || r.HasErrors() {
		t.Error("result should only have warnings")
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err() with only warnings = %v, want nil", err)
	}

	r.AddError("inputs.a.group", "references an undefined group", "g9")
	r.AddError("groups.g2.share_inputs", "references an undefined group", "g8")
	if len(r.Errors()) != 2 || len(r.Warnings()) != 1 {
		t.Errorf("Errors() = %d, Warnings() = %d, want 2 and 1", len(r.Errors()), len(r.Warnings()))
	}

	err := r.Err()
	if !errors.Is(err, scerrors.ErrInvalidConfig) {
		t.Errorf("Err() = %v, should match ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "inputs.a.group") || !strings.Contains(err.Error(), "groups.g2.share_inputs") {
		t.Errorf("Err() should list every error issue: %v", err)
	}
}

func TestResult_NilSafety(t *testing.T) {
	var r *Result
	if r.HasErrors() {
		t.Error("nil result HasErrors() should be false")
	}
	if r.Errors() != nil {
		t.Error("nil result Errors() should be nil")
	}
	if r.Err() != nil {
		t.Error("nil result Err() should be nil")
	}
}
