package domain

import "errors"

// Error kinds. Every domain error unwraps to exactly one of these, which is
// what the transport layer maps to a status code.
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("access forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidInput    = errors.New("invalid input")
)

// Error is a client-facing failure carrying its kind and a stable message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Authentication.
var (
	ErrInvalidCredentials = newError(ErrInvalidInput, "invalid email or password")
	ErrMissingFields      = newError(ErrInvalidInput, "username, email and password are required")
	ErrInvalidToken       = newError(ErrUnauthenticated, "invalid token")
	ErrSessionRevoked     = newError(ErrUnauthenticated, "session has been revoked")
	ErrSessionUserGone    = newError(ErrUnauthenticated, "user not found")
	ErrWrongPassword      = newError(ErrInvalidInput, "current password is incorrect")
)

// Users and profiles.
var (
	ErrUserNotFound        = newError(ErrNotFound, "user not found")
	ErrEmailTaken          = newError(ErrConflict, "email already registered")
	ErrUsernameTaken       = newError(ErrConflict, "username already taken")
	ErrUserExists          = newError(ErrConflict, "username or email already exists")
	ErrInvalidRole         = newError(ErrInvalidInput, "invalid role selection")
	ErrCannotDeleteSelf    = newError(ErrInvalidInput, "cannot delete your own account")
	ErrCannotDeleteAdmin   = newError(ErrForbidden, "cannot delete admin accounts")
	ErrResumeNotFound      = newError(ErrNotFound, "no resume found")
	ErrInvalidResumeFormat = newError(ErrInvalidInput, "only PDF, DOC, DOCX allowed")
	ErrResumeTooLarge      = newError(ErrInvalidInput, "resume file is too large")
	ErrNewPasswordRequired = newError(ErrInvalidInput, "new password is required")
	ErrApplicantsOnly      = newError(ErrForbidden, "only applicants can manage resumes")
	ErrResumeForbidden     = newError(ErrForbidden, "not authorized to view this resume")
)

// Employers.
var (
	ErrEmployerNotFound        = newError(ErrNotFound, "employer profile not found")
	ErrEmployerExists          = newError(ErrConflict, "employer profile already exists")
	ErrEmployerProfileRequired = newError(ErrInvalidInput, "create an employer profile before posting jobs")
	ErrEmployerIDRequired      = newError(ErrInvalidInput, "employer_id is required")
	ErrCompanyNameRequired     = newError(ErrInvalidInput, "company_name is required")
)

// Jobs and applications.
var (
	ErrJobNotFound         = newError(ErrNotFound, "job not found")
	ErrInvalidJobType      = newError(ErrInvalidInput, "invalid job type")
	ErrAlreadyApplied      = newError(ErrConflict, "already applied to this job")
	ErrApplicationNotFound = newError(ErrNotFound, "application not found")
	ErrInvalidStatus       = newError(ErrInvalidInput, "invalid status")
	ErrJobFieldsRequired   = newError(ErrInvalidInput, "title and description are required")
	ErrCoverLetterRequired = newError(ErrInvalidInput, "cover_letter is required")
	ErrNotJobOwner         = newError(ErrForbidden, "not authorized to manage this application")
)

// Financial resources and notifications.
var (
	ErrResourceNotFound     = newError(ErrNotFound, "resource not found")
	ErrInvalidResourceType  = newError(ErrInvalidInput, "invalid resource type")
	ErrResourceFieldsReq    = newError(ErrInvalidInput, "name and website are required")
	ErrAlreadyLiked         = newError(ErrConflict, "already liked")
	ErrNotLiked             = newError(ErrConflict, "not liked")
	ErrNotificationNotFound = newError(ErrNotFound, "notification not found")
)
