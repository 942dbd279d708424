package ports

import (
	"context"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/auth/domain"
)

// Service exposes authentication use cases to adapters.
type Service interface {
	Login(ctx context.Context, ns domain.Namespace, username, password string) (string, error)
	Authorize(ctx context.Context, ns domain.Namespace, token string) error
	Logout(ctx context.Context, ns domain.Namespace, token string) error
	VerifyPasswordHash(ctx context.Context, password, hash string) bool
}
