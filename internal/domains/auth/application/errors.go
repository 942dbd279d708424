package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/auth/ports"
)

var (
	// ErrAuthentication wraps rejected credentials and rejected tokens.
	ErrAuthentication = errors.New("authentication failed")
	// ErrUnknownNamespace signals a caller asked for a token pool that does not exist.
	ErrUnknownNamespace = errors.New("unknown token namespace")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ports.ErrInvalidCredentials) || errors.Is(err, ports.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}
	return err
}
