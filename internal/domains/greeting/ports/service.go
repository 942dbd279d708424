package ports

import (
	"context"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/domain"
)

// Service exposes the stateless and counter endpoints.
type Service interface {
	Count(ctx context.Context) int64
	Hello(ctx context.Context) (string, error)
	CheckDay(ctx context.Context, name string, number int) error
	Format(ctx context.Context, selector, word string) domain.Message
}
