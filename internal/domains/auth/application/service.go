package application

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/auth/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/auth/ports"
)

// Service issues, checks and revokes tokens for the session and token namespaces.
type Service struct {
	checker *domain.CredentialChecker
	stores  map[domain.Namespace]ports.TokenStore
	entropy io.Reader
}

// Option configures optional collaborators.
type Option func(*Service)

// WithEntropy replaces crypto/rand as the source of token secrets.
func WithEntropy(r io.Reader) Option {
	return func(s *Service) {
		if r != nil {
			s.entropy = r
		}
	}
}

// NewService wires one store per namespace. The two stores must be distinct instances.
func NewService(checker *domain.CredentialChecker, sessions, tokens ports.TokenStore, opts ...Option) *Service {
	s := &Service{
		checker: checker,
		stores: map[domain.Namespace]ports.TokenStore{
			domain.NamespaceSession: sessions,
			domain.NamespaceToken:   tokens,
		},
		entropy: rand.Reader,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Login checks the credentials and, if accepted, mints and stores a fresh token in ns.
func (s *Service) Login(ctx context.Context, ns domain.Namespace, username, password string) (string, error) {
	store, err := s.store(ns)
	if err != nil {
		return "", err
	}
	if !s.checker.Check(username, password) {
		return "", mapError(ports.ErrInvalidCredentials)
	}
	secret, err := domain.NewSecret(s.entropy)
	if err != nil {
		return "", err
	}
	token, err := domain.DeriveToken(ns, username, password, secret)
	if err != nil {
		return "", err
	}
	if err := store.Insert(ctx, token); err != nil {
		return "", fmt.Errorf("store %s token: %w", ns, err)
	}
	return token, nil
}

// Authorize fails with ErrUnauthorized unless token is live in ns.
func (s *Service) Authorize(ctx context.Context, ns domain.Namespace, token string) error {
	store, err := s.store(ns)
	if err != nil {
		return err
	}
	if token == "" {
		return mapError(ports.ErrUnauthorized)
	}
	ok, err := store.Contains(ctx, token)
	if err != nil {
		return err
	}
	if !ok {
		return mapError(ports.ErrUnauthorized)
	}
	return nil
}

// Logout passes the gate and then removes token, so it never validates again.
func (s *Service) Logout(ctx context.Context, ns domain.Namespace, token string) error {
	if err := s.Authorize(ctx, ns, token); err != nil {
		return err
	}
	store, _ := s.store(ns)
	if err := store.Remove(ctx, token); err != nil {
		// Lost a race with eviction or a concurrent logout: the token is gone either way.
		return mapError(fmt.Errorf("%w: %w", ports.ErrUnauthorized, err))
	}
	return nil
}

// VerifyPasswordHash compares password against a hex SHA-512 digest.
func (s *Service) VerifyPasswordHash(_ context.Context, password, hash string) bool {
	return domain.VerifyPasswordHash(password, hash)
}

func (s *Service) store(ns domain.Namespace) (ports.TokenStore, error) {
	store, ok := s.stores[ns]
	if !ok || store == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
	}
	return store, nil
}

var _ ports.Service = (*Service)(nil)
