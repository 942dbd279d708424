package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// SecretSize is the number of random bytes mixed into every token.
const SecretSize = 32

var ErrShortSecret = errors.New("token secret must be at least 16 bytes")

// NewSecret reads SecretSize bytes from entropy.
func NewSecret(entropy io.Reader) ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := io.ReadFull(entropy, secret); err != nil {
		return nil, fmt.Errorf("read token secret: %w", err)
	}
	return secret, nil
}

// DeriveToken hashes the authorization marker for ns, the accepted credentials and a fresh
// secret into an opaque hex token.
func DeriveToken(ns Namespace, username, password string, secret []byte) (string, error) {
	if len(secret) < 16 {
		return "", ErrShortSecret
	}
	h := sha256.New()
	h.Write([]byte("authorized:" + ns.String()))
	h.Write([]byte(username))
	h.Write([]byte(password))
	h.Write([]byte(hex.EncodeToString(secret)))
	return hex.EncodeToString(h.Sum(nil)), nil
}
