package observability

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for input, want := range cases {
		assert.Equal(t, want, ParseLevel(input), "input %q", input)
	}
}

func TestNilInstrumentsFallBack(t *testing.T) {
	var instruments *Instruments
	assert.NotNil(t, instruments.Tracer("test"))
	assert.NotNil(t, instruments.Meter("test"))
	assert.NotNil(t, instruments.EffectiveLogger())
}

func TestInit_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	instruments, shutdown, err := Init(context.Background(), "northwind-api-test", WithWriter(&buf), WithLogLevel("debug"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	instruments.Logger.Debug("login",
		slog.String("namespace", "token"),
		slog.String("token", "14ee21fad3f557bf"),
		slog.Group("request", slog.String("Authorization", "Basic NGRtMW46")),
	)

	out := buf.String()
	assert.Contains(t, out, `"namespace":"token"`)
	assert.Contains(t, out, RedactedValue)
	assert.NotContains(t, out, "14ee21fad3f557bf")
	assert.NotContains(t, out, "NGRtMW46")
}

func TestInit_UsesProvidedMetricReader(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	instruments, shutdown, err := Init(context.Background(), "northwind-api-test", WithWriter(io.Discard), WithMetricReader(reader))
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })

	counter, err := instruments.Meter("test").Int64Counter("logins")
	require.NoError(t, err)
	counter.Add(context.Background(), 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	assert.Equal(t, "logins", rm.ScopeMetrics[0].Metrics[0].Name)
}
