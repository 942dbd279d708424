package ports

import (
	"context"
	"errors"
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("token not found")
)

// TokenStore keeps the live tokens of one namespace.
type TokenStore interface {
	Insert(ctx context.Context, token string) error
	Contains(ctx context.Context, token string) (bool, error)
	// Remove deletes the first exact match, or returns ErrTokenNotFound.
	Remove(ctx context.Context, token string) error
	Len(ctx context.Context) (int, error)
	// Snapshot returns the live tokens, oldest first.
	Snapshot(ctx context.Context) ([]string, error)
}
