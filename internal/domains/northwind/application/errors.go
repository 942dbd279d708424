package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/northwind/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid northwind input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCategoryName) ||
		errors.Is(err, domain.ErrInvalidID) ||
		errors.Is(err, domain.ErrInvalidOrder) ||
		errors.Is(err, domain.ErrNegativePaging) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
