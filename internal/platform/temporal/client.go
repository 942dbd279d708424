package temporal

import (
	"errors"
	"strings"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	platformobservability "github.com/Apurer/go-gin-northwind-api/internal/platform/observability"
)

// ErrDisabled is returned by Dial when Temporal is switched off by configuration.
var ErrDisabled = errors.New("temporal disabled via TEMPORAL_DISABLED")

// Settings selects the Temporal frontend to dial.
type Settings struct {
	Address   string
	Namespace string
	Disabled  bool
}

// Dial connects to Temporal with tracing and structured logging wired from instruments.
func Dial(settings Settings, instruments *platformobservability.Instruments, tracerName string) (client.Client, error) {
	if settings.Disabled {
		return nil, ErrDisabled
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(temporalotel.TracerOptions{
		Tracer: instruments.Tracer(tracerName),
	})
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  valueOr(settings.Address, client.DefaultHostPort),
		Namespace: valueOr(settings.Namespace, client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(instruments.EffectiveLogger()),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func valueOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
