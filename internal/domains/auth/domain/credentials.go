package domain

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
)

var (
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
)

// CredentialChecker validates a presented username/password against one fixed pair.
type CredentialChecker struct {
	username []byte
	password []byte
}

// NewCredentialChecker builds a checker for the expected pair.
func NewCredentialChecker(username, password string) (*CredentialChecker, error) {
	if strings.TrimSpace(username) == "" {
		return nil, ErrEmptyUsername
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return &CredentialChecker{username: []byte(username), password: []byte(password)}, nil
}

// Check reports whether both fields match. Both comparisons always run in constant time
// so the caller cannot learn which field was wrong.
func (c *CredentialChecker) Check(username, password string) bool {
	if c == nil {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), c.username)
	passOK := subtle.ConstantTimeCompare([]byte(password), c.password)
	return userOK&passOK == 1
}

// VerifyPasswordHash reports whether hash is the hex SHA-512 digest of a non-empty password.
// The digest is unsalted and single-round.
func VerifyPasswordHash(password, hash string) bool {
	if password == "" {
		return false
	}
	sum := sha512.Sum512([]byte(password))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(strings.TrimSpace(hash)))) == 1
}
