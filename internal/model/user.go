package model

import (
	"errors"
	"strings"
)

// User is an account that can log in to the depot.
//
// Password holds the password as entered. Accounts created while the depot
// hashes passwords leave it empty and keep a bcrypt hash in PasswordHash.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	PasswordHash string `json:"passwordHash,omitempty"`
	UserType     string `json:"userType"`
}

// Session is the identity of a logged-in user.
type Session struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	UserType string `json:"userType"`
}

// Session returns the session view of the user (no password).
func (u User) Session() Session {
	return Session{ID: u.ID, Username: u.Username, UserType: u.UserType}
}

// User types.
const (
	UserTypeOwner  = "owner"
	UserTypeWorker = "worker"
)

// ValidUserType reports whether t is a known user type.
func ValidUserType(t string) bool {
	return t == UserTypeOwner || t == UserTypeWorker
}

// RoleAtLeast checks if userType meets or exceeds the minimum required type.
func RoleAtLeast(userType, minimum string) bool {
	levels := map[string]int{
		UserTypeOwner:  2,
		UserTypeWorker: 1,
	}
	return levels[userType] >= levels[minimum] && levels[minimum] > 0
}

// CanDelete reports whether the session may run destructive catalog operations.
func (s Session) CanDelete() bool {
	return RoleAtLeast(s.UserType, UserTypeOwner)
}

// ValidateCredentials checks that a username and password are usable.
func ValidateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username required")
	}
	if password == "" {
		return errors.New("password required")
	}
	return nil
}
