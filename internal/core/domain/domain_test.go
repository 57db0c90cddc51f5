package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, in := range []string{"applicant", "employer", "admin", " Admin "} {
		if _, err := ParseRole(in); err != nil {
			t.Fatalf("ParseRole(%q) returned error: %v", in, err)
		}
	}
	if _, err := ParseRole("superuser"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestRole_SelfRegistrable(t *testing.T) {
	if !RoleApplicant.SelfRegistrable() || !RoleEmployer.SelfRegistrable() {
		t.Fatalf("applicant and employer must be self-registrable")
	}
	if RoleAdmin.SelfRegistrable() {
		t.Fatalf("admin must not be self-registrable")
	}
}

func TestActor_Owns(t *testing.T) {
	employer := Actor{UserID: 7, Role: RoleEmployer}
	if !employer.Owns(7) {
		t.Fatalf("expected owner to pass")
	}
	if employer.Owns(8) {
		t.Fatalf("expected non-owner to fail")
	}
	if !(Actor{UserID: 1, Role: RoleAdmin}).Owns(8) {
		t.Fatalf("expected admin bypass")
	}
	if (Actor{}).Owns(0) {
		t.Fatalf("anonymous actor must not own unowned resources")
	}
}

func TestJobListing_VisibleTo(t *testing.T) {
	l := JobListing{Job: Job{IsActive: true}, EmployerUserID: 7}
	if !l.VisibleTo(Actor{}) {
		t.Fatalf("active jobs are public")
	}
	l.IsActive = false
	if l.VisibleTo(Actor{UserID: 20, Role: RoleApplicant}) {
		t.Fatalf("inactive job visible to applicant")
	}
	if !l.VisibleTo(Actor{UserID: 7, Role: RoleEmployer}) || !l.VisibleTo(Actor{UserID: 1, Role: RoleAdmin}) {
		t.Fatalf("inactive job must stay visible to its employer and admins")
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		first, last, username, want string
	}{
		{"Ada", "Lovelace", "ada", "Ada Lovelace"},
		{"Ada", "", "ada", "Ada"},
		{"", "Lovelace", "ada", "ada"},
		{"", "", "ada", "ada"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.first, tc.last, tc.username); got != tc.want {
			t.Fatalf("DisplayName(%q, %q, %q) = %q, want %q", tc.first, tc.last, tc.username, got, tc.want)
		}
	}
}

func TestParseEnums(t *testing.T) {
	if _, err := ParseJobType("gig"); err != nil {
		t.Fatalf("gig should parse: %v", err)
	}
	if _, err := ParseJobType("freelance"); err != ErrInvalidJobType {
		t.Fatalf("expected ErrInvalidJobType, got %v", err)
	}
	if _, err := ParseApplicationStatus("accepted"); err != nil {
		t.Fatalf("accepted should parse: %v", err)
	}
	if _, err := ParseApplicationStatus("hired"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := ParseResourceType("invest"); err != nil {
		t.Fatalf("invest should parse: %v", err)
	}
	if _, err := ParseResourceType("crypto"); err != ErrInvalidResourceType {
		t.Fatalf("expected ErrInvalidResourceType, got %v", err)
	}
}

func TestError_UnwrapsToKind(t *testing.T) {
	if !errors.Is(ErrAlreadyApplied, ErrConflict) {
		t.Fatalf("ErrAlreadyApplied should be a conflict")
	}
	if !errors.Is(ErrCannotDeleteAdmin, ErrForbidden) {
		t.Fatalf("ErrCannotDeleteAdmin should be forbidden")
	}
	if ErrNotLiked.Error() != "not liked" {
		t.Fatalf("unexpected message %q", ErrNotLiked.Error())
	}
}
