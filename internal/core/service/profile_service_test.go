package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hustlehub/hustlehub-api/internal/core/domain"
	"github.com/hustlehub/hustlehub-api/internal/core/ports"
)

type profileFixture struct {
	*appFixture
	users     *stubUserRepo
	files     *stubFileStore
	svc       *ProfileService
	applicant domain.Actor
}

func newProfileFixture(t *testing.T) *profileFixture {
	t.Helper()
	af := newAppFixture(t)
	f := &profileFixture{appFixture: af, users: newStubUserRepo(), files: newStubFileStore()}

	hash, _ := newTestHasher().Hash("old-pw")
	// Seed ids so the applicant lands on 20, matching appFixture.applicant.
	f.users.nextID = 20
	id := f.users.seed(domain.User{Username: "amy", Email: "amy@x.io", Role: domain.RoleApplicant, PasswordHash: hash})
	f.applicant = domain.Actor{UserID: id, Role: domain.RoleApplicant}

	f.svc = NewProfileService(f.users, af.applications, f.files, newTestHasher(), af.audit, 1024, zerolog.Nop())
	return f
}

func upload(name string, body string) ports.ResumeUpload {
	return ports.ResumeUpload{Filename: name, ContentType: "application/pdf", Size: int64(len(body)), Body: strings.NewReader(body)}
}

func TestProfileService_Update(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	f.users.seed(domain.User{Username: "taken", Email: "taken@x.io", Role: domain.RoleApplicant})

	first, empty := "Amy", ""
	u, err := f.svc.Update(ctx, f.applicant, ports.ProfileUpdate{FirstName: &first, Username: &empty})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if u.FirstName != "Amy" || u.Username != "amy" {
		t.Fatalf("unexpected profile %+v", u)
	}

	taken := "taken"
	if _, err := f.svc.Update(ctx, f.applicant, ports.ProfileUpdate{Username: &taken}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestProfileService_ChangePassword(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	if err := f.svc.ChangePassword(ctx, f.applicant, "bad", "new-pw"); err != domain.ErrWrongPassword {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
	if err := f.svc.ChangePassword(ctx, f.applicant, "old-pw", ""); err != domain.ErrNewPasswordRequired {
		t.Fatalf("expected ErrNewPasswordRequired, got %v", err)
	}
	if err := f.svc.ChangePassword(ctx, f.applicant, "old-pw", "new-pw"); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if !newTestHasher().Verify("new-pw", f.users.users[f.applicant.UserID].PasswordHash) {
		t.Fatalf("new password not stored")
	}
}

func TestProfileService_UploadResume(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	key, err := f.svc.UploadResume(ctx, f.applicant, upload("CV.PDF", "%PDF-1.4"))
	if err != nil {
		t.Fatalf("UploadResume: %v", err)
	}
	if key != "resume_20.pdf" {
		t.Fatalf("unexpected key %q", key)
	}
	if f.users.users[20].ResumeKey != key {
		t.Fatalf("resume key not recorded")
	}

	// replacing with a different extension removes the old object
	key2, err := f.svc.UploadResume(ctx, f.applicant, upload("cv.docx", "PK"))
	if err != nil {
		t.Fatalf("second upload: %v", err)
	}
	if _, ok := f.files.objects["resume_20.pdf"]; ok {
		t.Fatalf("old resume should be deleted")
	}
	if _, ok := f.files.objects[key2]; !ok {
		t.Fatalf("new resume missing")
	}

	if _, err := f.svc.UploadResume(ctx, f.applicant, upload("cv.exe", "MZ")); err != domain.ErrInvalidResumeFormat {
		t.Fatalf("expected ErrInvalidResumeFormat, got %v", err)
	}
	if _, err := f.svc.UploadResume(ctx, f.applicant, upload("cv.pdf", strings.Repeat("x", 2048))); err != domain.ErrResumeTooLarge {
		t.Fatalf("expected ErrResumeTooLarge, got %v", err)
	}
	if _, err := f.svc.UploadResume(ctx, f.employer, upload("cv.pdf", "x")); err != domain.ErrApplicantsOnly {
		t.Fatalf("expected ErrApplicantsOnly, got %v", err)
	}
}

func TestProfileService_DeleteResume(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()

	if err := f.svc.DeleteResume(ctx, f.applicant); err != domain.ErrResumeNotFound {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
	key, _ := f.svc.UploadResume(ctx, f.applicant, upload("cv.pdf", "%PDF"))
	if err := f.svc.DeleteResume(ctx, f.applicant); err != nil {
		t.Fatalf("DeleteResume: %v", err)
	}
	if f.users.users[20].ResumeKey != "" {
		t.Fatalf("resume key should be cleared")
	}
	if _, ok := f.files.objects[key]; ok {
		t.Fatalf("resume object should be deleted")
	}
}

func TestProfileService_OpenResume_Access(t *testing.T) {
	f := newProfileFixture(t)
	ctx := context.Background()
	if _, err := f.svc.UploadResume(ctx, f.applicant, upload("cv.pdf", "%PDF-data")); err != nil {
		t.Fatalf("upload: %v", err)
	}

	// employer 10 has no application from user 20 yet
	if _, err := f.svc.OpenResume(ctx, f.employer, 20); err != domain.ErrResumeForbidden {
		t.Fatalf("expected ErrResumeForbidden, got %v", err)
	}

	if _, err := f.appFixture.svc.Apply(ctx, f.applicant, f.job.ID, "hire me"); err != nil {
		t.Fatalf("apply: %v", err)
	}
	file, err := f.svc.OpenResume(ctx, f.employer, 20)
	if err != nil {
		t.Fatalf("employer OpenResume: %v", err)
	}
	defer file.Body.Close()
	data, _ := io.ReadAll(file.Body)
	if string(data) != "%PDF-data" {
		t.Fatalf("unexpected body %q", data)
	}

	if _, err := f.svc.OpenResume(ctx, f.applicant, 20); err != nil {
		t.Fatalf("owner OpenResume: %v", err)
	}
	other := domain.Actor{UserID: 30, Role: domain.RoleApplicant}
	if _, err := f.svc.OpenResume(ctx, other, 20); err != domain.ErrResumeForbidden {
		t.Fatalf("expected other applicant to be forbidden, got %v", err)
	}

	delete(f.files.objects, file.Key)
	if _, err := f.svc.OpenResume(ctx, domain.Actor{UserID: 1, Role: domain.RoleAdmin}, 20); err != domain.ErrResumeNotFound {
		t.Fatalf("expected dangling key to read as not found, got %v", err)
	}
}
