package validation

import (
	"testing"
)

func TestFormatValidationErrors(t *testing.T) {
	type input struct {
		TaskName string `validate:"required"`
		Status   string `validate:"oneof=pending done"`
	}

	err := NewValidator().ValidateStruct(input{Status: "bogus"})
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	fields := FormatValidationErrors(err)
	if fields["taskname"] != "TaskName is required" {
		t.Errorf("taskname message = %q", fields["taskname"])
	}
	if fields["status"] != "Status must be one of: pending done" {
		t.Errorf("status message = %q", fields["status"])
	}
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	fields := FormatValidationErrors(errPlain{})
	if len(fields) != 0 {
		t.Errorf("expected no fields for a plain error, got %v", fields)
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain" }

func TestSanitizeString(t *testing.T) {
	got := SanitizeString("  task\x00name  ")
	if got != "taskname" {
		t.Errorf("SanitizeString = %q, want %q", got, "taskname")
	}
}
