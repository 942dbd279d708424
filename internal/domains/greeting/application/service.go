package application

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"sync"
	"time"

	"github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/domain"
	"github.com/Apurer/go-gin-northwind-api/internal/domains/greeting/ports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var helloTemplate = template.Must(template.ParseFS(templateFS, "templates/hello.html.tmpl"))

// Service owns the request counter and renders the greeting pages.
type Service struct {
	mu      sync.Mutex
	counter int64
	now     func() time.Time
}

// Option configures optional collaborators.
type Option func(*Service)

// WithClock overrides time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Count increments the counter and returns the new value.
func (s *Service) Count(_ context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counter++
	return s.counter
}

// Hello renders the dated greeting page.
func (s *Service) Hello(_ context.Context) (string, error) {
	var buf bytes.Buffer
	data := struct{ Today string }{Today: s.now().Format(time.DateOnly)}
	if err := helloTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Service) CheckDay(_ context.Context, name string, number int) error {
	return domain.CheckWeekday(name, number)
}

func (s *Service) Format(_ context.Context, selector, word string) domain.Message {
	return domain.Format(selector, word)
}

var _ ports.Service = (*Service)(nil)
