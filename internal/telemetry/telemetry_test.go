package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	tr, err := Setup(context.Background())
	require.NoError(t, err)
	assert.False(t, tr.Enabled())
	assert.NoError(t, tr.Shutdown(context.Background()))
}

func TestInstall_RecordsSpans(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	rec := tracetest.NewSpanRecorder()
	tr := Install(sdktrace.WithSpanProcessor(rec))
	require.True(t, tr.Enabled())

	_, span := otel.Tracer("test").Start(context.Background(), "bundle.export")
	span.End()

	require.NoError(t, tr.Shutdown(context.Background()))
	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "bundle.export", ended[0].Name())
}
