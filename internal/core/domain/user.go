package domain

import (
	"strings"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleApplicant Role = "applicant"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// ParseRole converts s into a Role, rejecting anything outside the enum.
func ParseRole(s string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleApplicant, RoleEmployer, RoleAdmin:
		return r, nil
	}
	return "", ErrInvalidRole
}

// SelfRegistrable reports whether the role may be chosen at public sign-up.
func (r Role) SelfRegistrable() bool {
	return r == RoleApplicant || r == RoleEmployer
}

// User models an account.
type User struct {
	ID           int64     `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	ResumeKey    string    `json:"resume_key,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// DisplayName is "first last" when both are set, else the first name, else
// the username.
func DisplayName(first, last, username string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return username
	}
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID int64
	Role   Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// Owns reports whether the actor may act on a resource owned by ownerUserID.
// Admins pass every ownership gate.
func (a Actor) Owns(ownerUserID int64) bool {
	return a.IsAdmin() || (a.UserID != 0 && a.UserID == ownerUserID)
}
