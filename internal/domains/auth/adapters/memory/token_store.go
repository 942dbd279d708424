package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/auth/ports"
)

// DefaultCapacity is the number of live tokens kept per namespace.
const DefaultCapacity = 3

var _ ports.TokenStore = (*BoundedTokenStore)(nil)

// BoundedTokenStore keeps at most DefaultCapacity tokens, evicting the oldest first.
type BoundedTokenStore struct {
	mu     sync.Mutex
	tokens []string
}

func NewBoundedTokenStore() *BoundedTokenStore {
	return &BoundedTokenStore{tokens: make([]string, 0, DefaultCapacity)}
}

func (s *BoundedTokenStore) Insert(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.tokens) >= DefaultCapacity {
		s.tokens = append(s.tokens[:0], s.tokens[1:]...)
	}
	s.tokens = append(s.tokens, token)
	return nil
}

func (s *BoundedTokenStore) Contains(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(token) >= 0, nil
}

func (s *BoundedTokenStore) Remove(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(token)
	if idx < 0 {
		return ports.ErrTokenNotFound
	}
	s.tokens = append(s.tokens[:idx], s.tokens[idx+1:]...)
	return nil
}

func (s *BoundedTokenStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens), nil
}

func (s *BoundedTokenStore) Snapshot(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out, nil
}

func (s *BoundedTokenStore) indexOf(token string) int {
	for i, t := range s.tokens {
		if t == token {
			return i
		}
	}
	return -1
}
