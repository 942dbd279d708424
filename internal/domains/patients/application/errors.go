package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/patients/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid patient input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) || errors.Is(err, domain.ErrEmptySurname) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
