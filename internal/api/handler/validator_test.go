package handler

import (
	"strings"
	"testing"
)

type sampleRequest struct {
	CoverLetter string `json:"cover_letter" validate:"required"`
	Status      string `json:"status"       validate:"omitempty,oneof=pending reviewed"`
}

func TestValidator_UsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sampleRequest{Status: "hired"})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "cover_letter is required") {
		t.Fatalf("expected json field name in %q", msg)
	}
	if !strings.Contains(msg, "status must be one of: pending reviewed") {
		t.Fatalf("expected oneof message in %q", msg)
	}

	if err := v.Validate(&sampleRequest{CoverLetter: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
